package audio

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/skyfall/core"
)

// constStreamer emits a fixed sample value for a fixed length, so clip
// boundaries are visible in streamed output
type constStreamer struct {
	value float64
	left  int
}

func (s *constStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.left <= 0 {
			return i, i > 0
		}
		samples[i][0] = s.value
		samples[i][1] = s.value
		s.left--
	}
	return len(samples), true
}

func (s *constStreamer) Err() error { return nil }

func testFormat(rate beep.SampleRate) beep.Format {
	return beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
}

// makeClipPair builds a synthetic decoded track: intro at one constant
// level, loop at another
func makeClipPair(rate beep.SampleRate, introSamples, loopSamples int, introVal, loopVal float64) *ClipPair {
	intro := beep.NewBuffer(testFormat(rate))
	intro.Append(&constStreamer{value: introVal, left: introSamples})
	loop := beep.NewBuffer(testFormat(rate))
	loop.Append(&constStreamer{value: loopVal, left: loopSamples})
	return &ClipPair{Intro: intro, Loop: loop}
}

// fakeLoader is a controllable clip loader: per-track call counts, optional
// blocking until released, optional forced failure
type fakeLoader struct {
	mu    sync.Mutex
	calls map[core.TrackID]int
	block map[core.TrackID]chan struct{}
	fail  map[core.TrackID]error

	rate         beep.SampleRate
	introSamples int
	loopSamples  int
}

func newFakeLoader(rate beep.SampleRate) *fakeLoader {
	return &fakeLoader{
		calls:        make(map[core.TrackID]int),
		block:        make(map[core.TrackID]chan struct{}),
		fail:         make(map[core.TrackID]error),
		rate:         rate,
		introSamples: 200,
		loopSamples:  100,
	}
}

// holdTrack makes loads for id wait until the returned release func runs
func (f *fakeLoader) holdTrack(id core.TrackID) func() {
	ch := make(chan struct{})
	f.mu.Lock()
	f.block[id] = ch
	f.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { close(ch) })
	}
}

func (f *fakeLoader) failTrack(id core.TrackID, err error) {
	f.mu.Lock()
	f.fail[id] = err
	f.mu.Unlock()
}

func (f *fakeLoader) callCount(id core.TrackID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[id]
}

func (f *fakeLoader) load(ctx context.Context, def TrackDefinition, rate beep.SampleRate) (*ClipPair, error) {
	f.mu.Lock()
	f.calls[def.ID]++
	ch := f.block[def.ID]
	err := f.fail[def.ID]
	f.mu.Unlock()

	if ch != nil {
		select {
		case <-ch:
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrLoadTimeout, ctx.Err())
		}
	}
	if err != nil {
		return nil, err
	}
	return makeClipPair(f.rate, f.introSamples, f.loopSamples, 0.5, -0.5), nil
}

// newTestEngine wires an engine with a null device, mock clock and fake
// loader, already activated
func newTestEngine(t *testing.T) (*Engine, *fakeLoader, *MockClock) {
	t.Helper()

	cfg := DefaultConfig()
	clock := NewMockClock(time.Unix(1000, 0))
	e := NewEngine(cfg, WithDevice(NewNullDevice()), WithClock(clock))

	loader := newFakeLoader(e.rate)
	e.loader = loader.load

	e.Activate()
	return e, loader, clock
}

// waitFor polls cond until it holds or the deadline passes
func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return cond()
}

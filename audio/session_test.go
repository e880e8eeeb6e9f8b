package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func streamFrames(s *playbackSession, n int) [][2]float64 {
	out := make([][2]float64, n)
	filled := 0
	for filled < n {
		m, ok := s.Stream(out[filled:])
		filled += m
		if !ok {
			break
		}
	}
	return out[:filled]
}

func TestSessionGaplessHandoff(t *testing.T) {
	rate := beep.SampleRate(1000)
	pair := makeClipPair(rate, 100, 50, 0.25, -0.25)
	sess := newPlaybackSession("x", pair, rate)
	sess.rampTo(1, 0) // full gain immediately

	if got := sess.LoopStartOffset(); got != 100 {
		t.Fatalf("loop start offset = %d, want 100", got)
	}

	out := streamFrames(sess, 175)
	if len(out) != 175 {
		t.Fatalf("streamed %d frames, want 175", len(out))
	}

	const tol = 1e-3
	if got := out[99][0]; math.Abs(got-0.25) > tol {
		t.Errorf("last intro sample = %v, want 0.25", got)
	}
	// Sample 100 is the first loop sample; no gap, no stale intro tail
	if got := out[100][0]; math.Abs(got+0.25) > tol {
		t.Errorf("first loop sample = %v, want -0.25", got)
	}
	// Sample 150 is the loop's second iteration after rewind
	if got := out[150][0]; math.Abs(got+0.25) > tol {
		t.Errorf("loop rewind sample = %v, want -0.25", got)
	}
	if got := sess.Position(); got != 175 {
		t.Errorf("position = %d, want 175", got)
	}
}

func TestSessionLinearRamp(t *testing.T) {
	rate := beep.SampleRate(1000)
	pair := makeClipPair(rate, 1000, 100, 0.5, 0.5)
	sess := newPlaybackSession("x", pair, rate)

	// 100ms at 1000Hz: the ramp spans exactly 100 samples
	sess.rampTo(1, 100*time.Millisecond)

	out := streamFrames(sess, 50)
	if got := sess.Gain(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("gain after 50 samples = %v, want 0.5", got)
	}
	if out[0][0] >= out[49][0] {
		t.Error("amplitude not rising during fade-in")
	}

	streamFrames(sess, 50)
	if got := sess.Gain(); math.Abs(got-1) > 1e-2 {
		t.Errorf("gain at ramp end = %v, want 1", got)
	}

	// Past the ramp the gain clamps to the target exactly and holds
	streamFrames(sess, 100)
	if got := sess.Gain(); got != 1 {
		t.Errorf("gain after ramp = %v, want 1", got)
	}
}

func TestSessionFadeOutToZero(t *testing.T) {
	rate := beep.SampleRate(1000)
	pair := makeClipPair(rate, 1000, 100, 0.5, 0.5)
	sess := newPlaybackSession("x", pair, rate)
	sess.rampTo(1, 0)
	streamFrames(sess, 10)

	sess.rampTo(0, 100*time.Millisecond)
	streamFrames(sess, 110)
	if got := sess.Gain(); got != 0 {
		t.Errorf("gain after fade-out = %v, want 0", got)
	}

	out := streamFrames(sess, 10)
	for i, f := range out {
		if f[0] != 0 || f[1] != 0 {
			t.Fatalf("sample %d audible after fade-out: %v", i, f)
		}
	}
}

func TestSessionStopEndsStream(t *testing.T) {
	rate := beep.SampleRate(1000)
	pair := makeClipPair(rate, 100, 50, 0.25, -0.25)
	sess := newPlaybackSession("x", pair, rate)

	sess.stop()
	buf := make([][2]float64, 16)
	n, ok := sess.Stream(buf)
	if n != 0 || ok {
		t.Errorf("stopped session streamed n=%d ok=%v", n, ok)
	}
}

package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/skyfall/core"
)

// playbackSession is the audible form of one music track: the intro clip
// followed by the loop clip repeating forever, all on one sample clock so the
// handoff lands exactly at the intro's end. A linear per-session gain ramp
// carries both the crossfade-in and the fade-out.
//
// The engine mutates a live session only under the device lock, which is the
// same lock the render thread streams under.
type playbackSession struct {
	track core.TrackID
	rate  beep.SampleRate

	intro    beep.StreamSeeker
	loop     beep.StreamSeeker
	introLen int
	loopLen  int
	pos      int // absolute sample position since session start

	gain    float64
	target  float64
	step    float64 // per-sample gain delta while ramping

	stopped bool
}

func newPlaybackSession(track core.TrackID, pair *ClipPair, rate beep.SampleRate) *playbackSession {
	return &playbackSession{
		track:    track,
		rate:     rate,
		intro:    pair.Intro.Streamer(0, pair.Intro.Len()),
		loop:     pair.Loop.Streamer(0, pair.Loop.Len()),
		introLen: pair.Intro.Len(),
		loopLen:  pair.Loop.Len(),
	}
}

// LoopStartOffset returns the sample offset at which the loop clip begins,
// which is exactly the intro clip's length
func (s *playbackSession) LoopStartOffset() int {
	return s.introLen
}

// Position returns the absolute sample position since session start
func (s *playbackSession) Position() int {
	return s.pos
}

// Gain returns the current session gain
func (s *playbackSession) Gain() float64 {
	return s.gain
}

// rampTo starts a linear gain ramp toward target over d
func (s *playbackSession) rampTo(target float64, d time.Duration) {
	s.target = clampUnit(target)
	n := s.rate.N(d)
	if n <= 0 {
		s.gain = s.target
		s.step = 0
		return
	}
	s.step = (s.target - s.gain) / float64(n)
}

// stop silences the session permanently; the mixer drops it on next pull
func (s *playbackSession) stop() {
	s.stopped = true
}

func (s *playbackSession) Stream(samples [][2]float64) (n int, ok bool) {
	if s.stopped {
		return 0, false
	}

	for n < len(samples) {
		if s.pos < s.introLen {
			want := s.introLen - s.pos
			if rem := len(samples) - n; rem < want {
				want = rem
			}
			m, _ := s.intro.Stream(samples[n : n+want])
			if m == 0 {
				// Decoder came up short of its declared length
				s.pos = s.introLen
				continue
			}
			n += m
			s.pos += m
			continue
		}

		if s.loopLen <= 0 {
			break
		}
		m, streaming := s.loop.Stream(samples[n:])
		if !streaming || m == 0 {
			if err := s.loop.Seek(0); err != nil {
				break
			}
			continue
		}
		n += m
		s.pos += m
	}

	for i := 0; i < n; i++ {
		if s.step != 0 {
			s.gain += s.step
			if (s.step > 0 && s.gain >= s.target) || (s.step < 0 && s.gain <= s.target) {
				s.gain = s.target
				s.step = 0
			}
		}
		samples[i][0] *= s.gain
		samples[i][1] *= s.gain
	}

	if n == 0 {
		return 0, false
	}
	return n, true
}

func (s *playbackSession) Err() error { return nil }

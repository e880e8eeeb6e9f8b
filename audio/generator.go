package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

// RampCurve selects how a parameter approaches the next keyframe target
type RampCurve int

const (
	RampLinear RampCurve = iota
	RampExponential
)

// Keyframe is one point of a frequency or gain envelope: the parameter
// reaches Value at offset At, ramping from the previous keyframe via Curve
type Keyframe struct {
	At    time.Duration
	Value float64
	Curve RampCurve
}

// envelopeAt evaluates a keyframe envelope at sample position pos
// Before the first keyframe it holds the first value, after the last the last
func envelopeAt(keys []Keyframe, rate beep.SampleRate, pos int) float64 {
	if len(keys) == 0 {
		return 0
	}

	t := rate.D(pos)
	if t <= keys[0].At {
		return keys[0].Value
	}

	for i := 1; i < len(keys); i++ {
		if t > keys[i].At {
			continue
		}
		prev, cur := keys[i-1], keys[i]
		span := cur.At - prev.At
		if span <= 0 {
			return cur.Value
		}
		u := float64(t-prev.At) / float64(span)

		if cur.Curve == RampExponential && prev.Value > 0 && cur.Value > 0 {
			return prev.Value * math.Pow(cur.Value/prev.Value, u)
		}
		return prev.Value + (cur.Value-prev.Value)*u
	}

	return keys[len(keys)-1].Value
}

// sweepOsc generates a waveform whose frequency and gain each follow a
// keyframe envelope over a fixed duration
type sweepOsc struct {
	wave     WaveType
	freqEnv  []Keyframe
	gainEnv  []Keyframe
	rate     beep.SampleRate
	duration int
	position int
	phase    float64
}

// NewSweepOsc creates a finite oscillator streamer driven by envelopes
func NewSweepOsc(wave WaveType, freqEnv, gainEnv []Keyframe, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweepOsc{
		wave:     wave,
		freqEnv:  freqEnv,
		gainEnv:  gainEnv,
		rate:     rate,
		duration: rate.N(duration),
	}
}

func (o *sweepOsc) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 4.0*math.Abs(o.phase-0.5) - 1.0
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		val *= envelopeAt(o.gainEnv, o.rate, o.position)
		samples[i][0] = val
		samples[i][1] = val

		freq := envelopeAt(o.freqEnv, o.rate, o.position)
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *sweepOsc) Err() error { return nil }

// noiseSweep generates white noise through a one-pole lowpass whose cutoff
// follows a keyframe envelope, gain shaped the same way
type noiseSweep struct {
	cutoffEnv []Keyframe
	gainEnv   []Keyframe
	rate      beep.SampleRate
	duration  int
	position  int
	state     float64 // filter memory
}

// NewNoiseSweep creates a finite filtered-noise streamer
func NewNoiseSweep(cutoffEnv, gainEnv []Keyframe, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &noiseSweep{
		cutoffEnv: cutoffEnv,
		gainEnv:   gainEnv,
		rate:      rate,
		duration:  rate.N(duration),
	}
}

func (g *noiseSweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.position >= g.duration {
			return i, i > 0
		}

		noise := rand.Float64()*2 - 1

		cutoff := envelopeAt(g.cutoffEnv, g.rate, g.position)
		alpha := 1.0 - math.Exp(-2*math.Pi*cutoff/float64(g.rate))
		g.state += alpha * (noise - g.state)

		val := g.state * envelopeAt(g.gainEnv, g.rate, g.position)
		samples[i][0] = val
		samples[i][1] = val
		g.position++
	}
	return len(samples), true
}

func (g *noiseSweep) Err() error { return nil }

// newVolume wraps a streamer in a linear-volume effect
// math.Log2(0) is -Inf, so zero volume is handled by silencing instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

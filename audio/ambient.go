package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/skyfall/constant"
	"github.com/lixenwraith/skyfall/core"
)

// ambientGain maps weather severity to the tone level
func ambientGain(w core.WeatherLevel) float64 {
	switch w {
	case core.WeatherOvercast:
		return constant.AmbientGainOvercast
	case core.WeatherStorm:
		return constant.AmbientGainStorm
	case core.WeatherSevere:
		return constant.AmbientGainSevere
	default:
		return constant.AmbientGainCalm
	}
}

// ambientTone is the continuous low rumble under the weather layer
// It streams forever until halted; mute reaches it through the master bus
type ambientTone struct {
	rate    beep.SampleRate
	freq    float64
	level   float64
	phase   float64
	stopped bool
}

func (t *ambientTone) halt() {
	t.stopped = true
}

func (t *ambientTone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.stopped {
		return 0, false
	}
	for i := range samples {
		val := math.Sin(2*math.Pi*t.phase) * t.level
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase = t.phase - math.Floor(t.phase)
	}
	return len(samples), true
}

func (t *ambientTone) Err() error { return nil }

// StartAmbient replaces any running ambient tone with one at the level for
// the given weather severity. Silent no-op before activation.
func (e *Engine) StartAmbient(w core.WeatherLevel) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != stateActive {
		return
	}
	e.resumeIfSuspendedLocked()

	tone := &ambientTone{
		rate:  e.rate,
		freq:  constant.AmbientToneFreq,
		level: ambientGain(w),
	}

	e.device.Lock()
	if e.ambient != nil {
		e.ambient.halt()
	}
	e.graph.ambient.mixer.Add(tone)
	e.device.Unlock()

	e.ambient = tone
}

// StopAmbient halts the ambient tone; idempotent
func (e *Engine) StopAmbient() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ambient == nil {
		return
	}
	e.device.Lock()
	e.ambient.halt()
	e.device.Unlock()
	e.ambient = nil
}

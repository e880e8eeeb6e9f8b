package audio

import (
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// PanForX maps a world horizontal position to a stereo pan value in [-1, 1]
// Position 0 is hard left, worldWidth hard right; out-of-range positions clamp
func PanForX(x, worldWidth float64) float64 {
	if worldWidth <= 0 {
		return 0
	}
	pan := 2.0*(x/worldWidth) - 1.0
	if pan < -1 {
		return -1
	}
	if pan > 1 {
		return 1
	}
	return pan
}

// panned places a streamer in the stereo field
func panned(s beep.Streamer, pan float64) beep.Streamer {
	if pan == 0 {
		return s
	}
	return &effects.Pan{Streamer: s, Pan: pan}
}

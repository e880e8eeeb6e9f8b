package constant

import "time"

// Music Transition Timing
const (
	// MusicCrossfadeDuration is the linear ramp used both to fade out a
	// losing session and fade in a winning one
	MusicCrossfadeDuration = 1200 * time.Millisecond

	// MusicTeardownEpsilon pads the fade-out before a faded session's
	// nodes are stopped and detached
	MusicTeardownEpsilon = 100 * time.Millisecond

	// MusicLoadTimeout bounds a clip fetch+decode; a load that exceeds it
	// settles as a failure and the transition is abandoned
	MusicLoadTimeout = 10 * time.Second
)

// Ambient Tone
const (
	AmbientToneFreq = 55.0 // Hz

	AmbientGainCalm     = 0.0
	AmbientGainOvercast = 0.04
	AmbientGainStorm    = 0.09
	AmbientGainSevere   = 0.15
)

// Default Bus Levels
const (
	DefaultMasterVolume  = 0.8
	DefaultEffectsVolume = 1.0
	DefaultAmbientVolume = 1.0
	DefaultMusicVolume   = 0.7
)

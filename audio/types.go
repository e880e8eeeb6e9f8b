package audio

import (
	"errors"
)

// SoundType identifies a synthesized effect recipe
type SoundType int

const (
	SoundLaunch SoundType = iota
	SoundDetonation
	SoundCityDamage
	SoundWaveChime
	SoundMirvSplit
	SoundSonarPing
	SoundAlarm
	soundTypeCount
)

func (t SoundType) String() string {
	names := [...]string{"launch", "detonation", "city_damage", "wave_chime", "mirv_split", "sonar_ping", "alarm"}
	if int(t) < len(names) {
		return names[t]
	}
	return "unknown"
}

// Sentinel errors
var (
	ErrDeviceUnavailable = errors.New("audio device unavailable")
	ErrUnknownClipFormat = errors.New("unknown clip format")
	ErrLoadTimeout       = errors.New("clip load timed out")
)

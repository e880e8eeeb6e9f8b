package core

// Bus identifies a mixing channel in the fixed bus hierarchy
// master -> {effects, ambient, music}
type Bus int

const (
	BusMaster Bus = iota
	BusEffects
	BusAmbient
	BusMusic
	BusCount
)

func (b Bus) String() string {
	names := [...]string{"master", "effects", "ambient", "music"}
	if int(b) < len(names) {
		return names[b]
	}
	return "unknown"
}

// TrackID names one musical piece (an intro/loop clip pair)
type TrackID string

// TrackNone means silence; phases with no music resolve to it
const TrackNone TrackID = ""

// WeatherLevel is the severity signal driving the ambient tone level
type WeatherLevel int

const (
	WeatherCalm WeatherLevel = iota
	WeatherOvercast
	WeatherStorm
	WeatherSevere
	WeatherCount
)

func (w WeatherLevel) String() string {
	names := [...]string{"calm", "overcast", "storm", "severe"}
	if int(w) < len(names) {
		return names[w]
	}
	return "unknown"
}

package core

// SimEventType identifies a discrete simulation event variant
// Each variant maps to exactly one synthesized sound
type SimEventType int

const (
	EventLaunch SimEventType = iota
	EventDetonation
	EventCityDamage
	EventWaveStart
	EventWaveEnd
	EventMirvSplit
	EventSonarPing
	EventAlarm
	SimEventCount
)

func (t SimEventType) String() string {
	names := [...]string{"launch", "detonation", "city_damage", "wave_start", "wave_end", "mirv_split", "sonar_ping", "alarm"}
	if int(t) < len(names) {
		return names[t]
	}
	return "unknown"
}

// SimEvent is one record of the ordered batch delivered per simulation tick
// The producer guarantees exactly-once delivery; no deduplication happens here
type SimEvent struct {
	Type SimEventType

	// X is the world horizontal coordinate of the event, used for stereo
	// placement. Events without a position leave it at the world center.
	X float64

	// Intensity scales detonation-class effects (explosion yield)
	Intensity float64

	// HitTarget distinguishes interception from a miss on detonations
	HitTarget bool

	// Cleared distinguishes a survived wave from a lost one on wave end
	Cleared bool
}

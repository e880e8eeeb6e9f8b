package core

// GamePhase is the coarse game-state mode reported by the simulation bridge
// Music selection is keyed off this value plus a wave-level hint
type GamePhase int

const (
	PhaseMenu GamePhase = iota
	PhaseBriefing
	PhaseStrategic
	PhaseWaveActive
	PhaseIntermission
	PhaseGameOver
	PhasePaused
	PhaseCount
)

func (p GamePhase) String() string {
	names := [...]string{"menu", "briefing", "strategic", "wave_active", "intermission", "game_over", "paused"}
	if int(p) < len(names) {
		return names[p]
	}
	return "unknown"
}

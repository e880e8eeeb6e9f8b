package audio

import (
	"path/filepath"

	"github.com/lixenwraith/skyfall/core"
)

// Built-in track ids
const (
	TrackMenu        core.TrackID = "menu"
	TrackStrategic   core.TrackID = "strategic"
	TrackWave        core.TrackID = "wave"
	TrackWaveAssault core.TrackID = "wave_assault"
	TrackGameOver    core.TrackID = "game_over"
)

// assaultLevelThreshold is the wave level at which the heavier wave track
// takes over
const assaultLevelThreshold = 5

// TrackDefinition names the two addressable clips of one musical piece
// Static configuration, read-only at runtime
type TrackDefinition struct {
	ID    core.TrackID
	Intro string
	Loop  string
}

// TrackTable resolves phases to tracks and holds the clip references
type TrackTable struct {
	defs map[core.TrackID]TrackDefinition
}

// defaultTrackTable builds the built-in table with clips under dir
func defaultTrackTable(dir string) *TrackTable {
	t := &TrackTable{defs: make(map[core.TrackID]TrackDefinition)}
	for _, id := range []core.TrackID{TrackMenu, TrackStrategic, TrackWave, TrackWaveAssault, TrackGameOver} {
		t.defs[id] = TrackDefinition{
			ID:    id,
			Intro: filepath.Join(dir, string(id)+"_intro.ogg"),
			Loop:  filepath.Join(dir, string(id)+"_loop.ogg"),
		}
	}
	return t
}

// define inserts or replaces a track definition
func (t *TrackTable) define(def TrackDefinition) {
	t.defs[def.ID] = def
}

// Definition returns the clip references for a track id
func (t *TrackTable) Definition(id core.TrackID) (TrackDefinition, bool) {
	def, ok := t.defs[id]
	return def, ok
}

// Resolve maps a phase and wave-level hint to the track that should play
// ok=false means the phase is silent (paused, or no mapping)
func (t *TrackTable) Resolve(phase core.GamePhase, levelHint int) (core.TrackID, bool) {
	switch phase {
	case core.PhaseMenu, core.PhaseBriefing:
		return TrackMenu, true
	case core.PhaseStrategic, core.PhaseIntermission:
		return TrackStrategic, true
	case core.PhaseWaveActive:
		if levelHint >= assaultLevelThreshold {
			return TrackWaveAssault, true
		}
		return TrackWave, true
	case core.PhaseGameOver:
		return TrackGameOver, true
	default:
		return core.TrackNone, false
	}
}

// lookaheadPhase guesses the phase most likely entered next, so its track
// can be warmed while the current one plays
var lookaheadPhase = map[core.GamePhase]core.GamePhase{
	core.PhaseMenu:         core.PhaseStrategic,
	core.PhaseBriefing:     core.PhaseWaveActive,
	core.PhaseStrategic:    core.PhaseWaveActive,
	core.PhaseWaveActive:   core.PhaseIntermission,
	core.PhaseIntermission: core.PhaseWaveActive,
	core.PhaseGameOver:     core.PhaseMenu,
}

// Lookahead resolves the speculative next track for a phase just entered
func (t *TrackTable) Lookahead(phase core.GamePhase, levelHint int) (core.TrackID, bool) {
	next, ok := lookaheadPhase[phase]
	if !ok {
		return core.TrackNone, false
	}
	return t.Resolve(next, levelHint)
}

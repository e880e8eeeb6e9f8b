package audio

import (
	"path/filepath"
	"testing"

	"github.com/lixenwraith/skyfall/core"
)

func TestResolve(t *testing.T) {
	tbl := defaultTrackTable("music")
	tests := []struct {
		name  string
		phase core.GamePhase
		hint  int
		want  core.TrackID
		ok    bool
	}{
		{"menu", core.PhaseMenu, 0, TrackMenu, true},
		{"briefing shares menu track", core.PhaseBriefing, 0, TrackMenu, true},
		{"strategic", core.PhaseStrategic, 0, TrackStrategic, true},
		{"intermission shares strategic", core.PhaseIntermission, 3, TrackStrategic, true},
		{"early wave", core.PhaseWaveActive, 1, TrackWave, true},
		{"wave below threshold", core.PhaseWaveActive, assaultLevelThreshold - 1, TrackWave, true},
		{"wave at threshold", core.PhaseWaveActive, assaultLevelThreshold, TrackWaveAssault, true},
		{"wave past threshold", core.PhaseWaveActive, 20, TrackWaveAssault, true},
		{"game over", core.PhaseGameOver, 0, TrackGameOver, true},
		{"paused is silent", core.PhasePaused, 0, core.TrackNone, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tbl.Resolve(tc.phase, tc.hint)
			if got != tc.want || ok != tc.ok {
				t.Errorf("Resolve(%v, %d) = (%s, %v), want (%s, %v)", tc.phase, tc.hint, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestLookahead(t *testing.T) {
	tbl := defaultTrackTable("music")
	tests := []struct {
		phase core.GamePhase
		hint  int
		want  core.TrackID
		ok    bool
	}{
		{core.PhaseMenu, 0, TrackStrategic, true},
		{core.PhaseStrategic, 0, TrackWave, true},
		{core.PhaseStrategic, assaultLevelThreshold, TrackWaveAssault, true},
		{core.PhaseWaveActive, 0, TrackStrategic, true},
		{core.PhaseGameOver, 0, TrackMenu, true},
		{core.PhasePaused, 0, core.TrackNone, false},
	}
	for _, tc := range tests {
		got, ok := tbl.Lookahead(tc.phase, tc.hint)
		if got != tc.want || ok != tc.ok {
			t.Errorf("Lookahead(%v, %d) = (%s, %v), want (%s, %v)", tc.phase, tc.hint, got, ok, tc.want, tc.ok)
		}
	}
}

func TestDefaultTableClipPaths(t *testing.T) {
	tbl := defaultTrackTable("assets/music")

	def, ok := tbl.Definition(TrackWave)
	if !ok {
		t.Fatal("built-in wave track missing")
	}
	if want := filepath.Join("assets/music", "wave_intro.ogg"); def.Intro != want {
		t.Errorf("intro path = %s, want %s", def.Intro, want)
	}
	if want := filepath.Join("assets/music", "wave_loop.ogg"); def.Loop != want {
		t.Errorf("loop path = %s, want %s", def.Loop, want)
	}
}

func TestDefineReplacesDefinition(t *testing.T) {
	tbl := defaultTrackTable("music")
	tbl.define(TrackDefinition{ID: TrackMenu, Intro: "custom/a.wav", Loop: "custom/b.wav"})

	def, _ := tbl.Definition(TrackMenu)
	if def.Intro != "custom/a.wav" || def.Loop != "custom/b.wav" {
		t.Errorf("definition not replaced: %+v", def)
	}

	if _, ok := tbl.Definition("nonexistent"); ok {
		t.Error("unknown id resolved to a definition")
	}
}

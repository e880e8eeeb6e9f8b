package audio

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/skyfall/core"
)

// busNode is one mixing channel: a mixer feeding a volume stage
type busNode struct {
	mixer *beep.Mixer
	vol   *effects.Volume
	level float64 // linear gain in [0,1], remembered across mute
}

func newBusNode(level float64) *busNode {
	n := &busNode{
		mixer: &beep.Mixer{},
		level: level,
	}
	n.vol = &effects.Volume{Streamer: n.mixer, Base: 2}
	n.apply(level)
	return n
}

// apply writes a linear gain into the volume stage
// Callers mutating a live graph must hold the device lock
func (n *busNode) apply(level float64) {
	if level <= 0 {
		n.vol.Volume = 0
		n.vol.Silent = true
		return
	}
	n.vol.Volume = math.Log2(level)
	n.vol.Silent = false
}

// setLevel records and applies a new gain
func (n *busNode) setLevel(level float64) {
	n.level = clampUnit(level)
	n.apply(n.level)
}

// busGraph is the fixed hierarchy master -> {effects, ambient, music}
type busGraph struct {
	rate    beep.SampleRate
	master  *busNode
	effects *busNode
	ambient *busNode
	music   *busNode
}

func newBusGraph(rate beep.SampleRate, masterLevel, effectsLevel, ambientLevel, musicLevel float64) *busGraph {
	g := &busGraph{
		rate:    rate,
		master:  newBusNode(clampUnit(masterLevel)),
		effects: newBusNode(clampUnit(effectsLevel)),
		ambient: newBusNode(clampUnit(ambientLevel)),
		music:   newBusNode(clampUnit(musicLevel)),
	}
	g.master.mixer.Add(g.effects.vol, g.ambient.vol, g.music.vol)
	return g
}

// root is the streamer handed to the output device
func (g *busGraph) root() beep.Streamer {
	return g.master.vol
}

func (g *busGraph) node(bus core.Bus) *busNode {
	switch bus {
	case core.BusMaster:
		return g.master
	case core.BusEffects:
		return g.effects
	case core.BusAmbient:
		return g.ambient
	case core.BusMusic:
		return g.music
	default:
		return nil
	}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package audio

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/skyfall/constant"
	"github.com/lixenwraith/skyfall/core"
)

type engineState int

const (
	stateUninitialized engineState = iota
	stateActive
)

// Stats counts engine activity for diagnostics
type Stats struct {
	EffectsScheduled   uint64
	TransitionsStarted uint64
	TransitionsStale   uint64
	LoadFailures       uint64
}

// Engine is the audio subsystem: bus graph, synthesized effects, ambient
// tone and the music transition machinery. One instance is constructed by
// the application root and handed to whoever needs sound.
//
// Every public entry point absorbs failure internally; none of them return
// errors or panic. Before Activate, all sound triggers are silent no-ops.
type Engine struct {
	mu     sync.Mutex
	clock  Clock
	config *Config
	rate   beep.SampleRate

	device OutputDevice
	graph  *busGraph
	state  engineState
	silent bool // no real device; engine runs but renders nothing

	muted bool

	tracks *TrackTable
	cache  *clipCache
	loader clipLoader

	// generation orders music transitions; a load result is only made
	// audible if no later transition has started since
	generation atomic.Uint64

	current      *playbackSession
	currentTrack core.TrackID
	fading       []fadingSession
	pending      *pendingPhase

	ambient *ambientTone

	stats Stats
}

// fadingSession is a session already ruled non-current, kept only until its
// teardown deadline so the fade tail stays audible
type fadingSession struct {
	sess     *playbackSession
	deadline time.Time
}

// pendingPhase remembers the last phase request made while the device was
// not yet permitted to produce sound; consumed exactly once on activation
type pendingPhase struct {
	phase     core.GamePhase
	levelHint int
}

// Option customizes engine construction
type Option func(*Engine)

// WithClock substitutes the time source
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithDevice substitutes the output device
func WithDevice(d OutputDevice) Option {
	return func(e *Engine) { e.device = d }
}

// NewEngine creates an engine; the output device stays untouched until
// Activate is called after a genuine user interaction
func NewEngine(cfg *Config, opts ...Option) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	e := &Engine{
		clock:  SystemClock{},
		config: cfg,
		rate:   beep.SampleRate(cfg.SampleRate),
		device: NewSpeakerDevice(),
		tracks: defaultTrackTable(cfg.TrackDir),
		cache:  newClipCache(),
		loader: loadClipPair,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.graph = newBusGraph(e.rate, cfg.MasterVolume, cfg.EffectsVolume, cfg.AmbientVolume, cfg.MusicVolume)
	return e
}

// DefineTracks replaces or extends the built-in track table, typically from
// a manifest loaded at startup
func (e *Engine) DefineTracks(defs []TrackDefinition) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, def := range defs {
		e.tracks.define(def)
	}
}

// Activate opens the output device. Call it on the first genuine user
// interaction; platform autoplay restrictions forbid opening earlier.
// If a device cannot be opened the engine degrades to silent operation.
// A phase requested before activation starts playing now.
func (e *Engine) Activate() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == stateActive {
		e.resumeIfSuspendedLocked()
		return
	}

	if !e.config.Enabled {
		e.device = NewNullDevice()
		e.silent = true
	}

	bufSize := e.rate.N(constant.AudioBufferDuration)
	if err := e.device.Init(e.rate, bufSize); err != nil {
		log.Printf("audio: device init failed, running silent: %v", err)
		e.device = NewNullDevice()
		_ = e.device.Init(e.rate, bufSize)
		e.silent = true
	}

	e.device.Play(e.graph.root())
	e.state = stateActive

	if p := e.pending; p != nil {
		e.pending = nil
		e.setPhaseLocked(p.phase, p.levelHint)
	}
}

// Shutdown stops all playback and releases the device
func (e *Engine) Shutdown() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != stateActive {
		return
	}

	e.device.Lock()
	if e.current != nil {
		e.current.stop()
	}
	for _, f := range e.fading {
		f.sess.stop()
	}
	if e.ambient != nil {
		e.ambient.halt()
	}
	e.device.Unlock()

	e.device.Close()
	e.current = nil
	e.currentTrack = core.TrackNone
	e.fading = nil
	e.ambient = nil
	e.pending = nil
	e.state = stateUninitialized
}

// Suspend pauses the device, e.g. on window focus loss
func (e *Engine) Suspend() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == stateActive {
		if err := e.device.Suspend(); err != nil {
			log.Printf("audio: suspend failed: %v", err)
		}
	}
}

// Resume restarts a suspended device
func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == stateActive {
		e.resumeIfSuspendedLocked()
	}
}

// SetVolume sets a bus gain in [0,1]. A muted master remembers the new
// level but stays silent until unmute.
func (e *Engine) SetVolume(bus core.Bus, level float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := e.graph.node(bus)
	if n == nil {
		return
	}

	e.lockedGraph(func() {
		n.setLevel(level)
		if bus == core.BusMaster && e.muted {
			n.apply(0)
		}
	})
}

// Volume returns the stored gain of a bus
func (e *Engine) Volume(bus core.Bus) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if n := e.graph.node(bus); n != nil {
		return n.level
	}
	return 0
}

// ToggleMute flips the master mute and returns the new muted state
// Unmute restores the last explicitly set master volume
func (e *Engine) ToggleMute() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.muted = !e.muted
	e.lockedGraph(func() {
		if e.muted {
			e.graph.master.apply(0)
		} else {
			e.graph.master.apply(e.graph.master.level)
		}
	})
	return e.muted
}

// IsMuted returns the current mute state
func (e *Engine) IsMuted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.muted
}

// IsActive reports whether the device has been opened
func (e *Engine) IsActive() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state == stateActive
}

// IsSilent reports whether the engine degraded to a null device
func (e *Engine) IsSilent() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.silent
}

// Tick advances housekeeping: faded-out sessions past their teardown
// deadline are stopped and detached. The owning loop calls this once per
// frame; transition entry points sweep as well, so Tick is a latency
// optimization rather than a correctness requirement.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sweepFadedLocked()
}

// GetStats returns a snapshot of engine counters
func (e *Engine) GetStats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats
}

// playEffect schedules a synthesized one-shot on the effects bus
// Silent no-op before activation
func (e *Engine) playEffect(st SoundType, s beep.Streamer, pan float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != stateActive || s == nil {
		return
	}
	e.resumeIfSuspendedLocked()

	s = newVolume(s, e.config.EffectVolumes[st])
	s = panned(s, pan)

	e.device.Lock()
	e.graph.effects.mixer.Add(s)
	e.device.Unlock()
	e.stats.EffectsScheduled++
}

// lockedGraph runs f under the device lock so live streamers are not
// mutated while the render thread pulls them
func (e *Engine) lockedGraph(f func()) {
	if e.state == stateActive {
		e.device.Lock()
		f()
		e.device.Unlock()
		return
	}
	f()
}

func (e *Engine) resumeIfSuspendedLocked() {
	if e.device.Suspended() {
		if err := e.device.Resume(); err != nil {
			log.Printf("audio: resume failed: %v", err)
		}
	}
}

// fetchFunc binds a track definition to the loader with the load timeout
func (e *Engine) fetchFunc(def TrackDefinition) func() (*ClipPair, error) {
	loader, rate := e.loader, e.rate
	return func() (*ClipPair, error) {
		ctx, cancel := context.WithTimeout(context.Background(), constant.MusicLoadTimeout)
		defer cancel()
		return loader(ctx, def, rate)
	}
}

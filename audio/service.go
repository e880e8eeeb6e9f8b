package audio

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/skyfall/core"
	"github.com/lixenwraith/skyfall/service"
)

// Player is the narrow interface game systems consume
// Nil-safe to hand out: a disabled service returns nil and callers are
// expected to skip sound entirely in that case
type Player interface {
	Activate()
	SetPhase(phase core.GamePhase, levelHint int)
	ConsumeEvents(events []core.SimEvent)
	SetVolume(bus core.Bus, level float64)
	ToggleMute() bool
	IsMuted() bool
	StartAmbient(w core.WeatherLevel)
	StopAmbient()
	Preload(phase core.GamePhase, levelHint int)
	Tick()
}

// AudioService wraps the Engine as a Service
// Audio is non-critical: every failure path degrades instead of erroring
type AudioService struct {
	engine   *Engine
	disabled atomic.Bool
}

var _ service.Service = (*AudioService)(nil)

// NewService creates an unconfigured audio service
func NewService() *AudioService {
	return &AudioService{}
}

// Name implements Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: string - optional track manifest path ("" = built-in table)
func (s *AudioService) Init(args ...any) error {
	cfg := LoadConfig()
	s.engine = NewEngine(cfg)

	if len(args) > 0 {
		if path, ok := args[0].(string); ok && path != "" {
			defs, err := LoadTrackManifest(path)
			if err != nil {
				log.Printf("audio: track manifest %s unusable, using built-ins: %v", path, err)
			} else {
				s.engine.DefineTracks(defs)
			}
		}
	}
	return nil
}

// Start implements Service
// The device itself stays closed until the first user interaction reaches
// Engine.Activate; nothing to launch here
func (s *AudioService) Start() error {
	if s.engine == nil {
		s.disabled.Store(true)
	}
	return nil
}

// Stop implements Service
func (s *AudioService) Stop() error {
	if s.engine != nil {
		s.engine.Shutdown()
	}
	return nil
}

// IsDisabled returns true if audio is unavailable
func (s *AudioService) IsDisabled() bool {
	return s.disabled.Load()
}

// Engine returns the underlying engine (nil if disabled)
func (s *AudioService) Engine() *Engine {
	if s.disabled.Load() {
		return nil
	}
	return s.engine
}

// Player returns the game-facing audio interface, nil if disabled
func (s *AudioService) Player() Player {
	if s.disabled.Load() || s.engine == nil {
		return nil
	}
	return s.engine
}

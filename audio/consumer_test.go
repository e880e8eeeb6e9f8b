package audio

import (
	"testing"

	"github.com/lixenwraith/skyfall/core"
)

func TestConsumeEventsSchedulesOnePerEvent(t *testing.T) {
	e, _, _ := newTestEngine(t)
	defer e.Shutdown()

	events := []core.SimEvent{
		{Type: core.EventLaunch, X: 100},
		{Type: core.EventDetonation, X: 600, Intensity: 1.5, HitTarget: true},
		{Type: core.EventDetonation, X: 900, HitTarget: false},
		{Type: core.EventCityDamage, X: 300},
		{Type: core.EventWaveStart},
		{Type: core.EventWaveEnd, Cleared: true},
		{Type: core.EventMirvSplit, X: 450},
		{Type: core.EventSonarPing, X: 50},
		{Type: core.EventAlarm},
	}
	e.ConsumeEvents(events)

	if got := e.GetStats().EffectsScheduled; got != uint64(len(events)) {
		t.Errorf("scheduled %d effects for %d events", got, len(events))
	}
}

func TestConsumeEventsEmptyBatch(t *testing.T) {
	e, _, _ := newTestEngine(t)
	defer e.Shutdown()

	e.ConsumeEvents(nil)
	e.ConsumeEvents([]core.SimEvent{})
	if got := e.GetStats().EffectsScheduled; got != 0 {
		t.Errorf("empty batches scheduled %d effects", got)
	}
}

func TestConsumeEventsUnknownTypeIgnored(t *testing.T) {
	e, _, _ := newTestEngine(t)
	defer e.Shutdown()

	e.ConsumeEvents([]core.SimEvent{{Type: core.SimEventCount + 7}})
	if got := e.GetStats().EffectsScheduled; got != 0 {
		t.Errorf("unknown event type scheduled %d effects", got)
	}
}

func TestConsumeEventsBeforeActivation(t *testing.T) {
	e := NewEngine(DefaultConfig(), WithDevice(NewNullDevice()))
	defer e.Shutdown()

	e.ConsumeEvents([]core.SimEvent{
		{Type: core.EventLaunch, X: 100},
		{Type: core.EventAlarm},
	})
	if got := e.GetStats().EffectsScheduled; got != 0 {
		t.Errorf("pre-activation batch scheduled %d effects", got)
	}
}

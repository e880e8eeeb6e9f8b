package audio

import (
	"github.com/lixenwraith/skyfall/core"
)

// ConsumeEvents turns one simulation tick's ordered event batch into sound
// Events are independent of each other; the producer delivers each exactly
// once, so nothing is deduplicated here
func (e *Engine) ConsumeEvents(events []core.SimEvent) {
	for i := range events {
		e.dispatchEvent(&events[i])
	}
}

// dispatchEvent is the fixed event-to-recipe table
func (e *Engine) dispatchEvent(ev *core.SimEvent) {
	switch ev.Type {
	case core.EventLaunch:
		e.PlayLaunch(ev.X)
	case core.EventDetonation:
		if ev.HitTarget {
			e.PlayDetonation(ev.X, ev.Intensity)
		} else {
			// The warhead got through; ground rumble instead of a blast
			e.PlayCityDamage(ev.X)
		}
	case core.EventCityDamage:
		e.PlayCityDamage(ev.X)
	case core.EventWaveStart:
		e.PlayAlarm()
	case core.EventWaveEnd:
		e.PlayWaveChime(ev.Cleared)
	case core.EventMirvSplit:
		e.PlayMirvSplit(ev.X)
	case core.EventSonarPing:
		e.PlaySonarPing(ev.X)
	case core.EventAlarm:
		e.PlayAlarm()
	}
}

// PlayLaunch schedules an interceptor launch sweep at world position x
func (e *Engine) PlayLaunch(x float64) {
	e.playEffect(SoundLaunch, newLaunchSound(e.rate), e.panFor(x))
}

// PlayDetonation schedules an explosion scaled by yield intensity
func (e *Engine) PlayDetonation(x, intensity float64) {
	e.playEffect(SoundDetonation, newDetonationSound(e.rate, intensity), e.panFor(x))
}

// PlayCityDamage schedules the ground-impact rumble
func (e *Engine) PlayCityDamage(x float64) {
	e.playEffect(SoundCityDamage, newCityDamageSound(e.rate), e.panFor(x))
}

// PlayWaveChime schedules the three-note wave chime, ascending for a wave
// survived, descending otherwise. Not spatialized.
func (e *Engine) PlayWaveChime(ascending bool) {
	e.playEffect(SoundWaveChime, newWaveChimeSound(e.rate, ascending), 0)
}

// PlayMirvSplit schedules the warhead separation chirp
func (e *Engine) PlayMirvSplit(x float64) {
	e.playEffect(SoundMirvSplit, newMirvSplitSound(e.rate), e.panFor(x))
}

// PlaySonarPing schedules a radar contact blip
func (e *Engine) PlaySonarPing(x float64) {
	e.playEffect(SoundSonarPing, newSonarPingSound(e.rate), e.panFor(x))
}

// PlayAlarm schedules the incoming-wave siren. Not spatialized.
func (e *Engine) PlayAlarm() {
	e.playEffect(SoundAlarm, newAlarmSound(e.rate), 0)
}

func (e *Engine) panFor(x float64) float64 {
	return PanForX(x, e.config.WorldWidth)
}

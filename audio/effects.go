package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/skyfall/constant"
)

// Chime pitches: C5, E5, G5
var chimeNotes = [3]float64{523.25, 659.25, 783.99}

// clampIntensity bounds the caller-supplied yield scalar before it touches
// any envelope math
func clampIntensity(intensity float64) float64 {
	if intensity < constant.DetonationMinIntensity {
		return constant.DetonationMinIntensity
	}
	if intensity > constant.DetonationMaxIntensity {
		return constant.DetonationMaxIntensity
	}
	return intensity
}

// newLaunchSound is a rising sawtooth sweep for an interceptor launch
func newLaunchSound(rate beep.SampleRate) beep.Streamer {
	d := constant.LaunchSoundDuration
	return NewSweepOsc(WaveSaw,
		[]Keyframe{
			{At: 0, Value: constant.LaunchStartFreq},
			{At: d, Value: constant.LaunchEndFreq, Curve: RampExponential},
		},
		[]Keyframe{
			{At: 0, Value: constant.LaunchStartGain},
			{At: d, Value: constant.LaunchEndGain, Curve: RampExponential},
		},
		d, rate)
}

// newDetonationSound mixes a dropping sine body with a lowpass-swept noise
// burst. Intensity scales peak gain, steepens the attack, and stretches the
// tone tail.
func newDetonationSound(rate beep.SampleRate, intensity float64) beep.Streamer {
	ii := clampIntensity(intensity)

	peak := constant.DetonationBaseGain * ii
	if peak > 0.95 {
		peak = 0.95
	}
	attack := time.Duration(float64(constant.DetonationAttack) / ii)
	toneDur := time.Duration(float64(constant.DetonationSoundDuration) * math.Sqrt(ii))

	tone := NewSweepOsc(WaveSine,
		[]Keyframe{
			{At: 0, Value: constant.DetonationToneStartFreq},
			{At: toneDur, Value: constant.DetonationToneEndFreq, Curve: RampExponential},
		},
		[]Keyframe{
			{At: 0, Value: 0},
			{At: attack, Value: peak},
			{At: toneDur, Value: 0.001, Curve: RampExponential},
		},
		toneDur, rate)

	noise := NewNoiseSweep(
		[]Keyframe{
			{At: 0, Value: constant.DetonationNoiseCutHi},
			{At: constant.DetonationSoundDuration, Value: constant.DetonationNoiseCutLo, Curve: RampExponential},
		},
		[]Keyframe{
			{At: 0, Value: 0},
			{At: attack, Value: peak * 0.8},
			{At: constant.DetonationSoundDuration, Value: 0.001, Curve: RampExponential},
		},
		constant.DetonationSoundDuration, rate)

	return beep.Mix(tone, noise)
}

// newCityDamageSound is a dull rumble: noise through a fixed 400Hz lowpass
// with a linear die-off
func newCityDamageSound(rate beep.SampleRate) beep.Streamer {
	d := constant.CityDamageSoundDuration
	return NewNoiseSweep(
		[]Keyframe{
			{At: 0, Value: constant.CityDamageCutoff},
		},
		[]Keyframe{
			{At: 0, Value: constant.CityDamageStartGain},
			{At: d, Value: 0},
		},
		d, rate)
}

// newWaveChimeSound plays three fixed triangle notes, ascending for a wave
// survived and descending for one lost, notes overlapping at a fixed spacing
func newWaveChimeSound(rate beep.SampleRate, ascending bool) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(chimeNotes))
	for i := range chimeNotes {
		pitch := chimeNotes[i]
		if !ascending {
			pitch = chimeNotes[len(chimeNotes)-1-i]
		}

		note := NewSweepOsc(WaveTriangle,
			[]Keyframe{
				{At: 0, Value: pitch},
			},
			[]Keyframe{
				{At: 0, Value: 0},
				{At: constant.ChimeNoteAttack, Value: constant.ChimeNoteGain},
				{At: constant.ChimeNoteDuration - constant.ChimeNoteRelease, Value: constant.ChimeNoteGain},
				{At: constant.ChimeNoteDuration, Value: 0},
			},
			constant.ChimeNoteDuration, rate)

		offset := rate.N(time.Duration(i) * constant.ChimeNoteSpacing)
		if offset > 0 {
			note = beep.Seq(beep.Silence(offset), note)
		}
		parts = append(parts, note)
	}
	return beep.Mix(parts...)
}

// newMirvSplitSound is a fast square-wave drop marking a warhead separation
func newMirvSplitSound(rate beep.SampleRate) beep.Streamer {
	d := constant.MirvSoundDuration
	return NewSweepOsc(WaveSquare,
		[]Keyframe{
			{At: 0, Value: constant.MirvStartFreq},
			{At: d, Value: constant.MirvEndFreq, Curve: RampExponential},
		},
		[]Keyframe{
			{At: 0, Value: constant.MirvStartGain},
			{At: d, Value: constant.MirvEndGain, Curve: RampExponential},
		},
		d, rate)
}

// newSonarPingSound is a rising sine blip for a radar contact
func newSonarPingSound(rate beep.SampleRate) beep.Streamer {
	d := constant.SonarSoundDuration
	return NewSweepOsc(WaveSine,
		[]Keyframe{
			{At: 0, Value: constant.SonarStartFreq},
			{At: d, Value: constant.SonarEndFreq, Curve: RampExponential},
		},
		[]Keyframe{
			{At: 0, Value: constant.SonarStartGain},
			{At: d, Value: constant.SonarEndGain, Curve: RampExponential},
		},
		d, rate)
}

// newAlarmSound alternates two square-wave pitches over six short pulses
func newAlarmSound(rate beep.SampleRate) beep.Streamer {
	pulses := make([]beep.Streamer, 0, constant.AlarmPulseCount)
	for i := 0; i < constant.AlarmPulseCount; i++ {
		freq := constant.AlarmFreqLow
		if i%2 == 1 {
			freq = constant.AlarmFreqHigh
		}

		pulses = append(pulses, NewSweepOsc(WaveSquare,
			[]Keyframe{
				{At: 0, Value: freq},
			},
			[]Keyframe{
				{At: 0, Value: 0},
				{At: constant.AlarmPulseAttack, Value: constant.AlarmPulseGain},
				{At: constant.AlarmPulseDuration - constant.AlarmPulseRelease, Value: constant.AlarmPulseGain},
				{At: constant.AlarmPulseDuration, Value: 0},
			},
			constant.AlarmPulseDuration, rate))
	}
	return beep.Seq(pulses...)
}

// newSound dispatches to a recipe at its default parameters
// Detonation uses unit intensity here; callers with a yield go direct
func newSound(st SoundType, rate beep.SampleRate) beep.Streamer {
	switch st {
	case SoundLaunch:
		return newLaunchSound(rate)
	case SoundDetonation:
		return newDetonationSound(rate, 1.0)
	case SoundCityDamage:
		return newCityDamageSound(rate)
	case SoundWaveChime:
		return newWaveChimeSound(rate, true)
	case SoundMirvSplit:
		return newMirvSplitSound(rate)
	case SoundSonarPing:
		return newSonarPingSound(rate)
	case SoundAlarm:
		return newAlarmSound(rate)
	default:
		return nil
	}
}

package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100
	AudioChannels   = 2
	AudioBitDepth   = 16

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond
)

// World Geometry
const (
	// DefaultWorldWidth is the simulation's horizontal extent, used to map
	// event positions to stereo pan
	DefaultWorldWidth = 1280.0
)

// Launch Sound
const (
	LaunchSoundDuration = 200 * time.Millisecond
	LaunchStartFreq     = 200.0 // Hz
	LaunchEndFreq       = 800.0
	LaunchStartGain     = 0.3
	LaunchEndGain       = 0.01
)

// Detonation Sound
const (
	DetonationSoundDuration = 500 * time.Millisecond
	DetonationToneStartFreq = 60.0 // Hz
	DetonationToneEndFreq   = 20.0
	DetonationNoiseCutHi    = 2000.0 // lowpass sweep start
	DetonationNoiseCutLo    = 200.0
	DetonationBaseGain      = 0.35
	DetonationAttack        = 8 * time.Millisecond

	// Intensity clamp range for yield scaling
	DetonationMinIntensity = 0.25
	DetonationMaxIntensity = 4.0
)

// City Damage Sound
const (
	CityDamageSoundDuration = 600 * time.Millisecond
	CityDamageCutoff        = 400.0 // Hz, fixed lowpass
	CityDamageStartGain     = 0.2
)

// Wave Chime
const (
	ChimeNoteDuration = 200 * time.Millisecond
	ChimeNoteSpacing  = 120 * time.Millisecond
	ChimeNoteAttack   = 10 * time.Millisecond
	ChimeNoteRelease  = 120 * time.Millisecond
	ChimeNoteGain     = 0.22
)

// MIRV Split Sound
const (
	MirvSoundDuration = 100 * time.Millisecond
	MirvStartFreq     = 1200.0 // Hz
	MirvEndFreq       = 200.0
	MirvStartGain     = 0.25
	MirvEndGain       = 0.01
)

// Sonar Ping Sound
const (
	SonarSoundDuration = 250 * time.Millisecond
	SonarStartFreq     = 800.0 // Hz
	SonarEndFreq       = 1200.0
	SonarStartGain     = 0.4
	SonarEndGain       = 0.001
)

// Alarm Sound
const (
	AlarmPulseCount    = 6
	AlarmPulseDuration = 150 * time.Millisecond
	AlarmFreqLow       = 440.0 // Hz
	AlarmFreqHigh      = 660.0
	AlarmPulseGain     = 0.25
	AlarmPulseAttack   = 5 * time.Millisecond
	AlarmPulseRelease  = 30 * time.Millisecond
)

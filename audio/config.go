package audio

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/skyfall/constant"
	"github.com/lixenwraith/skyfall/core"
)

// Config carries the engine's tunable settings
type Config struct {
	Enabled    bool
	SampleRate int
	WorldWidth float64

	MasterVolume  float64
	EffectsVolume float64
	AmbientVolume float64
	MusicVolume   float64

	// EffectVolumes scales individual recipes on top of the effects bus
	EffectVolumes map[SoundType]float64

	// TrackDir is where the built-in track table looks for clips
	TrackDir string
}

// DefaultConfig returns the stock settings
func DefaultConfig() *Config {
	return &Config{
		Enabled:       true,
		SampleRate:    constant.AudioSampleRate,
		WorldWidth:    constant.DefaultWorldWidth,
		MasterVolume:  constant.DefaultMasterVolume,
		EffectsVolume: constant.DefaultEffectsVolume,
		AmbientVolume: constant.DefaultAmbientVolume,
		MusicVolume:   constant.DefaultMusicVolume,
		EffectVolumes: map[SoundType]float64{
			SoundLaunch:     1.0,
			SoundDetonation: 1.0,
			SoundCityDamage: 1.0,
			SoundWaveChime:  1.0,
			SoundMirvSplit:  1.0,
			SoundSonarPing:  1.0,
			SoundAlarm:      1.0,
		},
		TrackDir: "music",
	}
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("SKYFALL_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume as 0-100
	if volume := os.Getenv("SKYFALL_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}

	// Per-effect volumes as JSON, keyed by recipe name
	if effectVols := os.Getenv("SKYFALL_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for st := SoundType(0); st < soundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok {
					cfg.EffectVolumes[st] = clampUnit(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv("SKYFALL_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	if dir := os.Getenv("SKYFALL_TRACK_DIR"); dir != "" {
		cfg.TrackDir = dir
	}

	if width := os.Getenv("SKYFALL_WORLD_WIDTH"); width != "" {
		if val, err := strconv.ParseFloat(width, 64); err == nil && val > 0 {
			cfg.WorldWidth = val
		}
	}

	return cfg
}

// trackManifest is the on-disk shape of a track override file
type trackManifest struct {
	Tracks []struct {
		ID    string `yaml:"id"`
		Intro string `yaml:"intro"`
		Loop  string `yaml:"loop"`
	} `yaml:"tracks"`
}

// LoadTrackManifest reads track definitions from a YAML file
// Entries replace or extend the built-in table
func LoadTrackManifest(path string) ([]TrackDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTrackManifest(data)
}

// ParseTrackManifest decodes manifest bytes into track definitions
func ParseTrackManifest(data []byte) ([]TrackDefinition, error) {
	var m trackManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("track manifest: %w", err)
	}

	defs := make([]TrackDefinition, 0, len(m.Tracks))
	for _, t := range m.Tracks {
		if t.ID == "" || t.Intro == "" || t.Loop == "" {
			return nil, fmt.Errorf("track manifest: entry %q missing id, intro or loop", t.ID)
		}
		defs = append(defs, TrackDefinition{
			ID:    core.TrackID(t.ID),
			Intro: t.Intro,
			Loop:  t.Loop,
		})
	}
	return defs, nil
}

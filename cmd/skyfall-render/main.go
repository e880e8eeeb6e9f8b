// skyfall-render writes every synthesized effect recipe to a WAV file so
// the sound design can be auditioned or diffed outside the game.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/skyfall/audio"
	"github.com/lixenwraith/skyfall/constant"
)

var (
	outFlag  = flag.String("out", "render", "Output directory for WAV files")
	rateFlag = flag.Int("rate", constant.AudioSampleRate, "Sample rate")
)

func main() {
	flag.Parse()

	rate := beep.SampleRate(*rateFlag)
	if err := os.MkdirAll(*outFlag, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}

	effects := []audio.SoundType{
		audio.SoundLaunch,
		audio.SoundDetonation,
		audio.SoundCityDamage,
		audio.SoundWaveChime,
		audio.SoundMirvSplit,
		audio.SoundSonarPing,
		audio.SoundAlarm,
	}

	for _, st := range effects {
		frames := audio.RenderEffect(st, rate)
		if len(frames) == 0 {
			fmt.Fprintf(os.Stderr, "render: %s produced no samples\n", st)
			continue
		}

		path := filepath.Join(*outFlag, st.String()+".wav")
		if err := writeFile(path, rate, frames); err != nil {
			fmt.Fprintf(os.Stderr, "render: %s: %v\n", st, err)
			os.Exit(1)
		}
		fmt.Printf("%s  %d frames  %s\n", path, len(frames), rate.D(len(frames)).Round(1e6))
	}
}

func writeFile(path string, rate beep.SampleRate, frames [][2]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return audio.WriteWAV(f, rate, frames)
}

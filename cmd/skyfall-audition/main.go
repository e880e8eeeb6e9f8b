package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/skyfall/audio"
	"github.com/lixenwraith/skyfall/constant"
	"github.com/lixenwraith/skyfall/core"
)

var (
	manifestFlag = flag.String("manifest", "", "Track manifest YAML (empty = built-in table)")
	debugFlag    = flag.Bool("debug", false, "Write a debug log under ./logs")
)

var helpLines = []string{
	"skyfall audition -- press any key to unlock the audio device",
	"",
	"effects   l launch   d detonation(hit)   D detonation(x4)   x miss",
	"          c city damage   v mirv split   s sonar ping   a alarm",
	"          w wave chime up   W wave chime down",
	"phases    1 menu   2 strategic   3 wave   4 wave(assault)   5 game over   0 paused",
	"ambient   o cycle weather   O stop ambient",
	"mixer     m mute   + / - master volume",
	"          q quit",
}

func main() {
	// Terminal must be restored even if we crash
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\naudition crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}

	engine := audio.NewEngine(audio.LoadConfig())
	defer engine.Shutdown()

	if *manifestFlag != "" {
		defs, err := audio.LoadTrackManifest(*manifestFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "manifest: %v\n", err)
			os.Exit(1)
		}
		engine.DefineTracks(defs)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault)

	drawHelp(screen, "")

	// Housekeeping independent of input: faded sessions get torn down even
	// while we sit in PollEvent
	stopTick := make(chan struct{})
	go func() {
		ticker := time.NewTicker(250 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				engine.Tick()
			case <-stopTick:
				return
			}
		}
	}()
	defer close(stopTick)

	// Effect positions cycle across the world so panning is audible
	positions := []float64{0, constant.DefaultWorldWidth / 2, constant.DefaultWorldWidth}
	posIdx := 0
	nextX := func() float64 {
		x := positions[posIdx]
		posIdx = (posIdx + 1) % len(positions)
		return x
	}

	weather := core.WeatherCalm
	masterVol := engine.Volume(core.BusMaster)

	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
			drawHelp(screen, "")

		case *tcell.EventKey:
			// Any key counts as the gating user interaction
			engine.Activate()

			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return
			}

			status := ""
			switch ev.Rune() {
			case 'q':
				return
			case 'l':
				engine.PlayLaunch(nextX())
				status = "launch"
			case 'd':
				engine.ConsumeEvents([]core.SimEvent{{Type: core.EventDetonation, X: nextX(), Intensity: 1.0, HitTarget: true}})
				status = "detonation"
			case 'D':
				engine.PlayDetonation(nextX(), 4.0)
				status = "detonation x4"
			case 'x':
				engine.ConsumeEvents([]core.SimEvent{{Type: core.EventDetonation, X: nextX(), Intensity: 1.0}})
				status = "detonation (miss)"
			case 'c':
				engine.PlayCityDamage(nextX())
				status = "city damage"
			case 'v':
				engine.PlayMirvSplit(nextX())
				status = "mirv split"
			case 's':
				engine.PlaySonarPing(nextX())
				status = "sonar ping"
			case 'a':
				engine.PlayAlarm()
				status = "alarm"
			case 'w':
				engine.PlayWaveChime(true)
				status = "wave chime up"
			case 'W':
				engine.PlayWaveChime(false)
				status = "wave chime down"
			case '1':
				engine.SetPhase(core.PhaseMenu, 0)
				status = "phase: menu"
			case '2':
				engine.SetPhase(core.PhaseStrategic, 0)
				status = "phase: strategic"
			case '3':
				engine.SetPhase(core.PhaseWaveActive, 1)
				status = "phase: wave (level 1)"
			case '4':
				engine.SetPhase(core.PhaseWaveActive, 8)
				status = "phase: wave (level 8)"
			case '5':
				engine.SetPhase(core.PhaseGameOver, 0)
				status = "phase: game over"
			case '0':
				engine.SetPhase(core.PhasePaused, 0)
				status = "phase: paused (silence)"
			case 'o':
				weather = (weather + 1) % core.WeatherCount
				engine.StartAmbient(weather)
				status = "weather: " + weather.String()
			case 'O':
				engine.StopAmbient()
				status = "ambient stopped"
			case 'm':
				if engine.ToggleMute() {
					status = "muted"
				} else {
					status = "unmuted"
				}
			case '+', '=':
				masterVol += 0.1
				if masterVol > 1 {
					masterVol = 1
				}
				engine.SetVolume(core.BusMaster, masterVol)
				status = fmt.Sprintf("master %.0f%%", masterVol*100)
			case '-':
				masterVol -= 0.1
				if masterVol < 0 {
					masterVol = 0
				}
				engine.SetVolume(core.BusMaster, masterVol)
				status = fmt.Sprintf("master %.0f%%", masterVol*100)
			}

			if status != "" {
				log.Printf("audition: %s", status)
			}
			drawHelp(screen, statusLine(engine, status))
		}
	}
}

func statusLine(engine *audio.Engine, action string) string {
	track := string(engine.CurrentTrack())
	if track == "" {
		track = "-"
	}
	stats := engine.GetStats()
	return fmt.Sprintf("track: %-14s effects: %-5d %s", track, stats.EffectsScheduled, action)
}

func drawHelp(screen tcell.Screen, status string) {
	screen.Clear()
	for y, line := range helpLines {
		drawText(screen, 1, y+1, line)
	}
	if status != "" {
		drawText(screen, 1, len(helpLines)+2, status)
	}
	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

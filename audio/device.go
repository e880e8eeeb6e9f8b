package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// OutputDevice abstracts the platform audio output
// The engine only ever schedules streamers on it and toggles its run state;
// actual rendering happens on a platform-owned thread
type OutputDevice interface {
	// Init opens the device. Must be called before Play.
	Init(rate beep.SampleRate, bufferSize int) error

	// Play attaches a root streamer the device pulls from
	Play(s beep.Streamer)

	// Lock/Unlock guard mutation of streamers the device is pulling
	Lock()
	Unlock()

	// Suspend pauses rendering without releasing the device
	Suspend() error

	// Resume restarts rendering after a suspend
	Resume() error

	// Suspended reports whether the device is currently paused
	Suspended() bool

	// Close releases the device
	Close()
}

// speakerDevice renders through the process-wide beep speaker
type speakerDevice struct {
	opened    atomic.Bool
	suspended atomic.Bool
}

// NewSpeakerDevice creates the default output device
func NewSpeakerDevice() OutputDevice {
	return &speakerDevice{}
}

func (d *speakerDevice) Init(rate beep.SampleRate, bufferSize int) error {
	if err := speaker.Init(rate, bufferSize); err != nil {
		return fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}
	d.opened.Store(true)
	return nil
}

func (d *speakerDevice) Play(s beep.Streamer) {
	if d.opened.Load() {
		speaker.Play(s)
	}
}

func (d *speakerDevice) Lock()   { speaker.Lock() }
func (d *speakerDevice) Unlock() { speaker.Unlock() }

func (d *speakerDevice) Suspend() error {
	if !d.opened.Load() {
		return ErrDeviceUnavailable
	}
	if err := speaker.Suspend(); err != nil {
		return err
	}
	d.suspended.Store(true)
	return nil
}

func (d *speakerDevice) Resume() error {
	if !d.opened.Load() {
		return ErrDeviceUnavailable
	}
	if err := speaker.Resume(); err != nil {
		return err
	}
	d.suspended.Store(false)
	return nil
}

func (d *speakerDevice) Suspended() bool {
	return d.suspended.Load()
}

func (d *speakerDevice) Close() {
	if d.opened.CompareAndSwap(true, false) {
		speaker.Clear()
		speaker.Close()
	}
}

// nullDevice swallows all output. It backs silent-mode degradation when no
// real device can be opened, and tests that drive the engine directly.
type nullDevice struct {
	mu        sync.Mutex
	suspended bool
	roots     []beep.Streamer
}

// NewNullDevice creates a device that renders nothing
func NewNullDevice() OutputDevice {
	return &nullDevice{}
}

func (d *nullDevice) Init(rate beep.SampleRate, bufferSize int) error { return nil }

func (d *nullDevice) Play(s beep.Streamer) {
	d.mu.Lock()
	d.roots = append(d.roots, s)
	d.mu.Unlock()
}

func (d *nullDevice) Lock()   { d.mu.Lock() }
func (d *nullDevice) Unlock() { d.mu.Unlock() }

func (d *nullDevice) Suspend() error {
	d.mu.Lock()
	d.suspended = true
	d.mu.Unlock()
	return nil
}

func (d *nullDevice) Resume() error {
	d.mu.Lock()
	d.suspended = false
	d.mu.Unlock()
	return nil
}

func (d *nullDevice) Suspended() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.suspended
}

func (d *nullDevice) Close() {}

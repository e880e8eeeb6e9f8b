package audio

import (
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/gopxl/beep"
)

// renderCap bounds offline rendering so a misbehaving streamer cannot run
// away; every recipe is far shorter than this
const renderCap = 10 // seconds

// RenderStreamer drains a finite streamer into stereo float frames
func RenderStreamer(s beep.Streamer, rate beep.SampleRate) [][2]float64 {
	maxFrames := int(rate) * renderCap
	out := make([][2]float64, 0, 4096)
	buf := make([][2]float64, 512)

	for len(out) < maxFrames {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			break
		}
	}
	return out
}

// RenderEffect renders one recipe at default parameters
func RenderEffect(st SoundType, rate beep.SampleRate) [][2]float64 {
	s := newSound(st, rate)
	if s == nil {
		return nil
	}
	return RenderStreamer(s, rate)
}

// WriteWAV writes stereo frames as 16-bit PCM WAV
func WriteWAV(w io.WriteSeeker, rate beep.SampleRate, frames [][2]float64) error {
	enc := gowav.NewEncoder(w, int(rate), 16, 2, 1)

	data := make([]int, 0, len(frames)*2)
	for _, f := range frames {
		data = append(data, pcm16(f[0]), pcm16(f[1]))
	}

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 2, SampleRate: int(rate)},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}

func pcm16(v float64) int {
	if v > 1.0 {
		v = 1.0
	} else if v < -1.0 {
		v = -1.0
	}
	return int(v * 32767)
}

package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

// clipLoader fetches and decodes a track's two clips into engine-rate buffers
// Swapped out by tests for a controllable fake
type clipLoader func(ctx context.Context, def TrackDefinition, rate beep.SampleRate) (*ClipPair, error)

// loadClipPair is the production loader: local files, format picked by
// extension, resampled to the engine rate. The context bounds the whole
// fetch; it is checked between clips, not mid-decode.
func loadClipPair(ctx context.Context, def TrackDefinition, rate beep.SampleRate) (*ClipPair, error) {
	intro, err := decodeClip(ctx, def.Intro, rate)
	if err != nil {
		return nil, fmt.Errorf("track %s intro: %w", def.ID, err)
	}
	loop, err := decodeClip(ctx, def.Loop, rate)
	if err != nil {
		return nil, fmt.Errorf("track %s loop: %w", def.ID, err)
	}
	return &ClipPair{Intro: intro, Loop: loop}, nil
}

func decodeClip(ctx context.Context, path string, rate beep.SampleRate) (*beep.Buffer, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrLoadTimeout, ctx.Err())
	default:
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownClipFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(beep.Format{
		SampleRate:  rate,
		NumChannels: 2,
		Precision:   2,
	})
	if format.SampleRate == rate {
		buf.Append(streamer)
	} else {
		buf.Append(beep.Resample(4, format.SampleRate, rate, streamer))
	}
	return buf, nil
}

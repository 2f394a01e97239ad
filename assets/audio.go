package assets

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	sfxCache map[string][]byte // Cache decoded audio bytes for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(path string) error {
	_, err := l.decodedSFX(path)
	return err
}

// LoadSFX returns a new player for a cached sound effect.
func (l *AudioLoader) LoadSFX(path string) (*audio.Player, error) {
	decoded, err := l.decodedSFX(path)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(decoded))
}

func (l *AudioLoader) decodedSFX(path string) ([]byte, error) {
	if cached, ok := l.sfxCache[path]; ok {
		return cached, nil
	}

	data, err := ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	stream, err := l.decode(path, data)
	if err != nil {
		return nil, err
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}

	l.sfxCache[path] = decoded
	return decoded, nil
}

type lengthStream interface {
	io.ReadSeeker
	Length() int64
}

func (l *AudioLoader) decode(path string, data []byte) (lengthStream, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", path, err)
		}
		return stream, nil
	case ".wav":
		stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
		}
		return stream, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
}

// LoadMusic returns a looping player for a music track. Music is streamed,
// not cached.
func (l *AudioLoader) LoadMusic(path string) (*audio.Player, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read music file %s: %w", path, err)
	}

	stream, err := l.decode(path, data)
	if err != nil {
		return nil, err
	}

	loop := audio.NewInfiniteLoop(stream, stream.Length())
	return l.context.NewPlayer(loop)
}

// Package sound decodes and caches sound effects for the ebiten audio
// context.
package sound

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// Loader handles loading and caching of sound effects
type Loader struct {
	fsys     fs.FS
	context  *audio.Context
	sfxCache map[string][]byte // decoded PCM per path
}

// NewLoader creates a loader reading from fsys with the given context
func NewLoader(ctx *audio.Context, fsys fs.FS) *Loader {
	return &Loader{
		fsys:     fsys,
		context:  ctx,
		sfxCache: make(map[string][]byte),
	}
}

// Preload decodes a sound effect and caches it without creating a player.
func (l *Loader) Preload(name string) error {
	_, err := l.decoded(name)
	return err
}

// Player returns a new player for the sound effect at name. Decoded bytes are
// cached so only the first call pays for decoding.
func (l *Loader) Player(name string) (*audio.Player, error) {
	pcm, err := l.decoded(name)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(pcm))
}

func (l *Loader) decoded(name string) ([]byte, error) {
	if pcm, ok := l.sfxCache[name]; ok {
		return pcm, nil
	}

	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read sound %s: %w", name, err)
	}

	var stream io.Reader
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read decoded audio %s: %w", name, err)
	}
	l.sfxCache[name] = pcm
	return pcm, nil
}

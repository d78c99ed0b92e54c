// Package assets produces the game's sound effects.
package assets

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"path/filepath"
	"strings"

	cfg "github.com/automoto/riposte/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader handles loading and caching of audio assets. A sound is read
// from the override directory when present there, otherwise synthesized.
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // Cache decoded audio bytes for SFX
	context  *audio.Context
	fsys     fs.FS
}

// NewAudioLoader creates a new audio loader with the given context. fsys may be nil.
func NewAudioLoader(ctx *audio.Context, fsys fs.FS) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
		fsys:     fsys,
	}
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
// Call this at startup to avoid decode lag on first play.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	_, err := l.decoded(id)
	return err
}

// LoadSFX returns a new player for a sound effect each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	data, err := l.decoded(id)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(data))
}

func (l *AudioLoader) decoded(id cfg.SoundID) ([]byte, error) {
	if cached, ok := l.sfxCache[id]; ok {
		return cached, nil
	}

	data, err := l.readOverride(id)
	if err != nil {
		return nil, err
	}
	if data == nil {
		tone, ok := cfg.Sound.Tones[id]
		if !ok {
			return nil, fmt.Errorf("no sound for id %d", id)
		}
		data = SynthesizeTone(l.context.SampleRate(), tone)
	}

	l.sfxCache[id] = data
	return data, nil
}

// readOverride returns nil without an error when no override file exists.
func (l *AudioLoader) readOverride(id cfg.SoundID) ([]byte, error) {
	name, ok := cfg.Sound.SFXFiles[id]
	if l.fsys == nil || !ok {
		return nil, nil
	}

	data, err := fs.ReadFile(l.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", name, err)
	}
	return decode(l.context.SampleRate(), name, data)
}

// decode turns a wav or ogg file into 16-bit stereo PCM at sampleRate.
func decode(sampleRate int, name string, data []byte) ([]byte, error) {
	var stream io.Reader

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", name, err)
		}
		stream = s

	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", name, err)
		}
		stream = s

	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", name, err)
	}
	return decoded, nil
}

// SynthesizeTone renders a tone as 16-bit little-endian stereo PCM, the
// format audio.Context players expect.
func SynthesizeTone(sampleRate int, tone cfg.Tone) []byte {
	n := int(tone.Duration * float64(sampleRate))
	out := make([]byte, n*4)

	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		freq := tone.StartHz + (tone.EndHz-tone.StartHz)*p
		v := uint16(int16(math.Sin(phase) * (1 - p) * 0.5 * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*4:], v)
		binary.LittleEndian.PutUint16(out[i*4+2:], v)
		phase += 2 * math.Pi * freq / float64(sampleRate)
	}
	return out
}

package assets

import (
	"encoding/binary"
	"testing"

	cfg "github.com/automoto/riposte/config"
)

func TestSynthesizeTone(t *testing.T) {
	const rate = 8000
	tone := cfg.Tone{StartHz: 440, EndHz: 220, Duration: 0.25}

	pcm := SynthesizeTone(rate, tone)
	if want := 2000 * 4; len(pcm) != want {
		t.Fatalf("got %d bytes, want %d", len(pcm), want)
	}

	peak := 0
	for i := 0; i < len(pcm); i += 4 {
		left := int16(binary.LittleEndian.Uint16(pcm[i:]))
		right := int16(binary.LittleEndian.Uint16(pcm[i+2:]))
		if left != right {
			t.Fatalf("frame %d: channels differ (%d, %d)", i/4, left, right)
		}
		if a := int(left); a > peak {
			peak = a
		} else if -a > peak {
			peak = -a
		}
	}
	if peak == 0 || peak > 1<<14 {
		t.Fatalf("peak amplitude %d outside (0, %d]", peak, 1<<14)
	}

	// The tone fades out, so the last frame is near silence.
	last := int16(binary.LittleEndian.Uint16(pcm[len(pcm)-4:]))
	if last > 100 || last < -100 {
		t.Fatalf("tone does not fade out, last sample %d", last)
	}
}

func TestSynthesizeToneEmpty(t *testing.T) {
	if pcm := SynthesizeTone(44100, cfg.Tone{StartHz: 440}); len(pcm) != 0 {
		t.Fatalf("zero duration produced %d bytes", len(pcm))
	}
}

func TestDecodeRejects(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"touch.mp3", []byte("ID3")},
		{"touch.wav", []byte("not a riff file")},
		{"touch.ogg", []byte("OggS")},
	}
	for _, c := range cases {
		if _, err := decode(44100, c.name, c.data); err == nil {
			t.Fatalf("%s: expected an error", c.name)
		}
	}
}

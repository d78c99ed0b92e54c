package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Referee calls
	SoundAllez
	SoundHalt
	// Blade contact
	SoundTouch
	SoundParry
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// Tone is the synthesized fallback of a sound effect: a sine sweep that fades out linearly.
type Tone struct {
	StartHz  float64
	EndHz    float64
	Duration float64 // seconds
}

// SoundConfig maps sound IDs to override files and their synthesized tones
type SoundConfig struct {
	// Looked up in the directory given with -sounds; .wav or .ogg
	SFXFiles          map[SoundID]string
	Tones             map[SoundID]Tone
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		SFXFiles: map[SoundID]string{
			SoundAllez: "allez.wav",
			SoundHalt:  "halt.wav",
			SoundTouch: "touch.wav",
			SoundParry: "parry.wav",
		},
		Tones: map[SoundID]Tone{
			SoundAllez: {StartHz: 660, EndHz: 880, Duration: 0.25},
			SoundHalt:  {StartHz: 1200, EndHz: 1100, Duration: 0.5},
			SoundTouch: {StartHz: 440, EndHz: 220, Duration: 0.35},
			SoundParry: {StartHz: 2400, EndHz: 1800, Duration: 0.08},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundParry: 0.7,
		},
	}
}

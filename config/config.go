package config

import "image/color"

// MovementConfig contains the step and dash tuning for a fencer.
// Distances are in pixels, speeds in pixels per second, times in seconds.
type MovementConfig struct {
	StepDistance        float64 `yaml:"step_distance"`
	FastStepDistance    float64 `yaml:"fast_step_distance"`
	DashDistance        float64 `yaml:"dash_distance"`
	StepCooldown        float64 `yaml:"step_cooldown"`
	DashCooldown        float64 `yaml:"dash_cooldown"`
	MinDashDuration     float64 `yaml:"min_dash_duration"`
	FastStepMinDuration float64 `yaml:"fast_step_min_duration"`
	FullStickThreshold  float64 `yaml:"full_stick_threshold"`
	Deadzone            float64 `yaml:"deadzone"`
	ModerateSpeed       float64 `yaml:"moderate_speed"`
	FastSpeed           float64 `yaml:"fast_speed"`
	DashSpeed           float64 `yaml:"dash_speed"`

	SpeedTier SpeedTierPolicy `yaml:"speed_tier"`
}

// CombatConfig contains parry and stun tuning.
type CombatConfig struct {
	ParryWindow       float64 `yaml:"parry_window"`   // seconds the parry deflects hits
	ParryCooldown     float64 `yaml:"parry_cooldown"` // measured from the parry trigger
	ParryStunDuration float64 `yaml:"parry_stun_duration"`
	ParryPushback     float64 `yaml:"parry_pushback"` // px/s applied to a parried attacker
	Friction          float64 `yaml:"friction"`       // px/s² velocity decay

	Parry ParryPolicy `yaml:"parry_policy"`
}

// BladeConfig contains the thrust geometry and timing.
type BladeConfig struct {
	RestOffsetX    float64 `yaml:"rest_offset_x"`
	ThrustOffsetX  float64 `yaml:"thrust_offset_x"`
	OffsetY        float64 `yaml:"offset_y"` // above the fencer's feet
	ThrustOutTime  float64 `yaml:"thrust_out_time"`
	ThrustBackTime float64 `yaml:"thrust_back_time"`
	HitboxWidth    float64 `yaml:"hitbox_width"`
	HitboxHeight   float64 `yaml:"hitbox_height"`
}

// BoutConfig contains the waits of the three timed bout sequences.
type BoutConfig struct {
	// Countdown
	SettleDelay  float64 `yaml:"settle_delay"`
	OnGuardDelay float64 `yaml:"on_guard_delay"`
	ReadyDelay   float64 `yaml:"ready_delay"`
	GoGrace      float64 `yaml:"go_grace"`

	// False start
	HaltDelay              float64 `yaml:"halt_delay"`
	FalseStartMessageDelay float64 `yaml:"false_start_message_delay"`
	FalseStartResetDelay   float64 `yaml:"false_start_reset_delay"`

	// Halt and score
	ScoreHaltDelay    float64 `yaml:"score_halt_delay"`
	ScoreDisplayDelay float64 `yaml:"score_display_delay"`
	ScoreResetDelay   float64 `yaml:"score_reset_delay"`

	CueFadeIn float64 `yaml:"cue_fade_in"`
}

// FencerConfig contains body dimensions and presentation tints.
type FencerConfig struct {
	BodyWidth  float64
	BodyHeight float64

	SlotColors    [2]color.RGBA
	ParryingColor color.RGBA
	StunnedColor  color.RGBA
	BladeColor    color.RGBA
}

// ArenaConfig contains the fallback piste used when no map is loaded.
type ArenaConfig struct {
	MapPath     string
	Width       int
	Height      int
	MinX        float64
	MaxX        float64
	FloorY      float64
	LeftSpawnX  float64
	RightSpawnX float64
	CellSize    int
}

// CueConfig contains the text shown for each bout cue.
type CueConfig struct {
	Text      map[CueID]string
	SideNames [2]string
	Color     color.RGBA
	HaltColor color.RGBA
}

// CameraConfig contains camera framing configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows the fencers (0.0-1.0)

	TouchShakeIntensity float64
	TouchShakeDuration  int // frames
	ParryShakeIntensity float64
	ParryShakeDuration  int
}

// EffectsConfig contains hit flash and spark timings, in frames
type EffectsConfig struct {
	TouchFlashFrames int
	ParryFlashFrames int
	SparkFrames      int
	SparkSize        float64 // arm length of a spark at its largest

	TouchFlashColor color.RGBA
	ParryFlashColor color.RGBA
	TouchSparkColor color.RGBA
	ParrySparkColor color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHitboxes bool
	Verbose      bool
}

// Global configuration instances
var C *Config
var Movement MovementConfig
var Combat CombatConfig
var Blade BladeConfig
var Bout BoutConfig
var Fencer FencerConfig
var Arena ArenaConfig
var Cues CueConfig
var Camera CameraConfig
var Effects EffectsConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Gray         = color.RGBA{R: 140, G: 140, B: 140, A: 255}
	PisteColor   = color.RGBA{R: 70, G: 80, B: 95, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for fencer facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Movement = MovementConfig{
		StepDistance:        16,
		FastStepDistance:    24,
		DashDistance:        100,
		StepCooldown:        0.12,
		DashCooldown:        0.2,
		MinDashDuration:     0.08,
		FastStepMinDuration: 0.1,
		FullStickThreshold:  0.85,
		Deadzone:            0.2,
		ModerateSpeed:       140,
		FastSpeed:           220,
		DashSpeed:           500,
		SpeedTier:           SpeedTierThreshold,
	}

	Combat = CombatConfig{
		ParryWindow:       0.25,
		ParryCooldown:     0.75,
		ParryStunDuration: 1.0,
		ParryPushback:     240,
		Friction:          960,
		Parry:             ParryStunsAttacker,
	}

	Blade = BladeConfig{
		RestOffsetX:    60,
		ThrustOffsetX:  120,
		OffsetY:        60,
		ThrustOutTime:  0.08,
		ThrustBackTime: 0.06,
		HitboxWidth:    24,
		HitboxHeight:   6,
	}

	Bout = BoutConfig{
		SettleDelay:  0.5,
		OnGuardDelay: 1.0,
		ReadyDelay:   1.0,
		GoGrace:      0.75,

		HaltDelay:              0.75,
		FalseStartMessageDelay: 1.5,
		FalseStartResetDelay:   0.5,

		ScoreHaltDelay:    0.5,
		ScoreDisplayDelay: 1.5,
		ScoreResetDelay:   0.5,

		CueFadeIn: 0.15,
	}

	Fencer = FencerConfig{
		BodyWidth:  32,
		BodyHeight: 96,
		SlotColors: [2]color.RGBA{
			{R: 230, G: 230, B: 240, A: 255},
			{R: 255, G: 200, B: 120, A: 255},
		},
		ParryingColor: LightBlue,
		StunnedColor:  Gray,
		BladeColor:    White,
	}

	Arena = ArenaConfig{
		MapPath:     "maps/piste.tmx",
		Width:       640,
		Height:      360,
		MinX:        40,
		MaxX:        600,
		FloorY:      280,
		LeftSpawnX:  80,
		RightSpawnX: 560,
		CellSize:    16,
	}

	Cues = CueConfig{
		Text: map[CueID]string{
			CueOnGuard:    "EN GARDE",
			CueReady:      "PRETS?",
			CueGo:         "ALLEZ!",
			CueHalt:       "HALTE!",
			CueFalseStart: "FALSE START: %s",
			CueTouch:      "TOUCH: %s",
		},
		SideNames: [2]string{"LEFT", "RIGHT"},
		Color:     BrightOrange,
		HaltColor: LightRed,
	}

	Camera = CameraConfig{
		FollowSmoothing:     0.1,
		TouchShakeIntensity: 4,
		TouchShakeDuration:  12,
		ParryShakeIntensity: 2,
		ParryShakeDuration:  8,
	}

	Effects = EffectsConfig{
		TouchFlashFrames: 18,
		ParryFlashFrames: 10,
		SparkFrames:      14,
		SparkSize:        12,
		TouchFlashColor:  White,
		ParryFlashColor:  LightBlue,
		TouchSparkColor:  Yellow,
		ParrySparkColor:  White,
	}
}

package components

import (
	cfg "github.com/automoto/riposte/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CueData is the match-phase message display.
type CueData struct {
	Cue     cfg.CueID
	Text    string
	Visible bool
	Alpha   float64
	Fade    *gween.Tween
}

var Cue = donburi.NewComponentType[CueData]()

// ScoreDisplayData shows the score of one slot.
type ScoreDisplayData struct {
	Slot int
	Text string
}

var ScoreDisplay = donburi.NewComponentType[ScoreDisplayData]()

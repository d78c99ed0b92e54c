package components

import (
	cfg "github.com/automoto/riposte/config"
	"github.com/automoto/riposte/sequence"
	"github.com/yohamta/donburi"
)

// BoutData stores the phase, registrations and score of the current bout.
// This is a singleton component, mutated only by the bout systems.
type BoutData struct {
	Phase   cfg.BoutPhase
	Fencers []*donburi.Entry // registration order, at most two
	Scores  [2]int           // indexed by fencer slot

	Sequence     *sequence.Task // at most one running sequence
	SequenceKind cfg.SequenceKind
	FalseStartBy *donburi.Entry

	CountdownWindow int // incremented every time a countdown starts
	LastTouch       int // slot of the last scorer, -1 before the first touch
}

var Bout = donburi.NewComponentType[BoutData]()

// IsRegistered reports whether e already takes part in the bout.
func (b *BoutData) IsRegistered(e *donburi.Entry) bool {
	for _, f := range b.Fencers {
		if f == e {
			return true
		}
	}
	return false
}

// Running reports whether a sequence of the given kind is in progress.
func (b *BoutData) Running(kind cfg.SequenceKind) bool {
	return b.Sequence != nil && !b.Sequence.Done() && b.SequenceKind == kind
}

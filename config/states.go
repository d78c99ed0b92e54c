package config

// BoutPhase is the top-level state of a bout.
type BoutPhase int

const (
	PhaseWaitingForPlayers BoutPhase = iota
	PhaseSettling
	PhaseCountdown
	PhaseFencing
	PhaseResolving
)

func (p BoutPhase) String() string {
	switch p {
	case PhaseWaitingForPlayers:
		return "waiting"
	case PhaseSettling:
		return "settling"
	case PhaseCountdown:
		return "countdown"
	case PhaseFencing:
		return "fencing"
	case PhaseResolving:
		return "resolving"
	}
	return "unknown"
}

// SequenceKind identifies which timed bout sequence is running.
type SequenceKind int

const (
	SequenceNone SequenceKind = iota
	SequenceCountdown
	SequenceFalseStart
	SequenceHaltAndScore
)

func (k SequenceKind) String() string {
	switch k {
	case SequenceCountdown:
		return "countdown"
	case SequenceFalseStart:
		return "false_start"
	case SequenceHaltAndScore:
		return "halt_and_score"
	}
	return "none"
}

// BladeState is the thrust state of a fencer's weapon.
type BladeState int

const (
	BladeResting BladeState = iota
	BladeExtending
	BladeRetracting
)

// PresentationState is the visual stance the renderer tints a fencer with.
type PresentationState int

const (
	PresentationNormal PresentationState = iota
	PresentationParrying
	PresentationStunned
)

// CueID identifies a match-phase message.
type CueID int

const (
	CueNone CueID = iota
	CueOnGuard
	CueReady
	CueGo
	CueHalt
	CueFalseStart
	CueTouch
)

// SpeedTierPolicy selects how a step picks between the moderate and fast tier.
type SpeedTierPolicy int

const (
	// SpeedTierThreshold compares the stick against the full-stick threshold at every step start.
	SpeedTierThreshold SpeedTierPolicy = iota
	// SpeedTierLatched keeps the fast tier once a full-stick step started, until the stick
	// returns inside the deadzone.
	SpeedTierLatched
)

func (p SpeedTierPolicy) String() string {
	if p == SpeedTierLatched {
		return "latched"
	}
	return "threshold"
}

// ParryPolicy selects who is punished when a hit lands inside a parry window.
type ParryPolicy int

const (
	ParryStunsAttacker ParryPolicy = iota
	ParryNoEffect
)

func (p ParryPolicy) String() string {
	if p == ParryNoEffect {
		return "none"
	}
	return "stun_attacker"
}

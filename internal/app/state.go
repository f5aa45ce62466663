package app

// State is the frame driver's lifecycle state
type State int

const (
	StateRunning State = iota
	StateExiting // terminal
)

// Event classifies one wake-up of the frame loop
type Event int

const (
	EventInitialized Event = iota
	EventTimerElapsed
	EventCloseRequested
	EventIgnored // any window-system event the loop does not care about
)

// Effect is a side effect requested by a state transition, applied by the
// loop in order
type Effect int

const (
	EffectArmTimer Effect = iota
	EffectRenderFrame
	EffectStopLoop
)

// Step is the frame driver's transition function. It is pure: the loop owns
// applying the effects.
func Step(s State, ev Event) (State, []Effect) {
	if s == StateExiting {
		return StateExiting, nil
	}
	switch ev {
	case EventInitialized:
		return StateRunning, []Effect{EffectArmTimer}
	case EventTimerElapsed:
		return StateRunning, []Effect{EffectRenderFrame, EffectArmTimer}
	case EventCloseRequested:
		return StateExiting, []Effect{EffectStopLoop}
	default:
		return StateRunning, nil
	}
}

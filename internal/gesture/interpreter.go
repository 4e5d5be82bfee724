// Package gesture turns a stream of pointer positions into discrete
// navigation commands. Mouse and touch feed the same Interpreter.
package gesture

import "math"

// Command is the navigation a completed gesture asks for
type Command int

const (
	None Command = iota
	Advance
	Retreat
)

func (c Command) String() string {
	switch c {
	case Advance:
		return "advance"
	case Retreat:
		return "retreat"
	default:
		return "none"
	}
}

// Phase is the interpreter's tracking state
type Phase int

const (
	Idle Phase = iota
	Tracking
)

// EventKind identifies a raw pointer event
type EventKind int

const (
	Down EventKind = iota
	Move
	Up
)

// Event is one raw pointer sample from any source
type Event struct {
	Kind EventKind
	X, Y float64
}

// Resolution is the result of handling an event. Command is set only when an
// Up completes a swipe; Tap is set when an Up completes a gesture that never
// moved past the jitter threshold.
type Resolution struct {
	Command Command
	Tap     bool
	Offset  float64
}

// Interpreter tracks one gesture at a time for a single input source.
// Starting a new gesture while one is tracked discards the old one.
type Interpreter struct {
	cfg     Config
	phase   Phase
	originX float64
	originY float64
	moved   bool
	offset  float64
}

// New creates an idle interpreter
func New(cfg Config) *Interpreter {
	return &Interpreter{cfg: cfg}
}

// Config returns the thresholds in use
func (in *Interpreter) Config() Config {
	return in.cfg
}

// Start begins tracking from (x, y)
func (in *Interpreter) Start(x, y float64) {
	in.phase = Tracking
	in.originX = x
	in.originY = y
	in.moved = false
	in.offset = 0
}

// Move updates the gesture and returns the clamped visual offset. Moves that
// drift vertically past the tolerance are ignored.
func (in *Interpreter) Move(x, y float64) float64 {
	if in.phase != Tracking {
		return in.offset
	}

	dx := x - in.originX
	dy := math.Abs(y - in.originY)
	if dy > in.cfg.VerticalTolerance {
		return in.offset
	}
	if math.Abs(dx) > in.cfg.JitterThreshold {
		in.moved = true
	}

	in.offset = math.Max(-in.cfg.MaxVisualOffset, math.Min(in.cfg.MaxVisualOffset, dx))
	return in.offset
}

// End finishes the gesture at (x, y). Leftward swipes advance, rightward
// swipes retreat.
func (in *Interpreter) End(x, y float64) Resolution {
	if in.phase != Tracking {
		return Resolution{}
	}

	moved := in.moved
	dx := x - in.originX
	in.reset()

	if !moved {
		return Resolution{Tap: true}
	}
	switch {
	case dx <= -in.cfg.HorizontalThreshold:
		return Resolution{Command: Advance}
	case dx >= in.cfg.HorizontalThreshold:
		return Resolution{Command: Retreat}
	}
	return Resolution{}
}

// Cancel drops the tracked gesture without a command
func (in *Interpreter) Cancel() {
	in.reset()
}

// Handle dispatches a raw event
func (in *Interpreter) Handle(ev Event) Resolution {
	switch ev.Kind {
	case Down:
		in.Start(ev.X, ev.Y)
		return Resolution{}
	case Move:
		return Resolution{Offset: in.Move(ev.X, ev.Y)}
	case Up:
		return in.End(ev.X, ev.Y)
	}
	return Resolution{Offset: in.offset}
}

// Offset returns the current visual offset
func (in *Interpreter) Offset() float64 {
	return in.offset
}

// Tracking reports whether a gesture is in progress
func (in *Interpreter) Tracking() bool {
	return in.phase == Tracking
}

func (in *Interpreter) reset() {
	in.phase = Idle
	in.moved = false
	in.offset = 0
}

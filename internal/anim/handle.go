// Package anim holds the frame-driven animation primitives used by the
// circular view: cancellation handles, tweens, the highlight sweep and the
// per-marker bounce. Nothing here starts a goroutine or reads the clock;
// the host advances every animation explicitly with the frame delta.
package anim

// State is the lifecycle state of an animation run.
type State int

const (
	Idle State = iota
	Running
	Finished
	Canceled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Finished:
		return "finished"
	case Canceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Handle is the token of one animation run. Once it leaves Running it is
// terminal, so a canceled run can never later report completion.
type Handle struct {
	state State
}

// NewHandle returns a handle in the Running state.
func NewHandle() *Handle {
	return &Handle{state: Running}
}

// State returns the current state. A nil handle is Idle.
func (h *Handle) State() State {
	if h == nil {
		return Idle
	}
	return h.state
}

func (h *Handle) Running() bool { return h.State() == Running }

// Cancel moves a running handle to Canceled and reports whether it did.
func (h *Handle) Cancel() bool {
	if !h.Running() {
		return false
	}
	h.state = Canceled
	return true
}

// Finish moves a running handle to Finished and reports whether it did.
func (h *Handle) Finish() bool {
	if !h.Running() {
		return false
	}
	h.state = Finished
	return true
}

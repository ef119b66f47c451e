package types

import (
	"math"
	"strconv"
	"strings"
)

// Observation is the state vector an environment exposes after each step
type Observation []float64

// Hash returns a deterministic key for the observation, used by policies
// that tabulate values per state
func (o Observation) Hash() string {
	parts := make([]string, len(o))
	for i, v := range o {
		// round to limit the key space for near identical states
		parts[i] = strconv.FormatFloat(math.Round(v*1000)/1000, 'f', 3, 64)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// Copy returns a value copy with no aliasing to the original
func (o Observation) Copy() Observation {
	c := make(Observation, len(o))
	copy(c, o)
	return c
}

// Frame is a rendered view of the environment
type Frame string

// Outcome of a single primitive step on a raw environment. Terminated and
// Truncated are kept separate here, the game layer merges them
type Outcome struct {
	Observation Observation
	Reward      float64
	Terminated  bool
	Truncated   bool
}

// Env is the raw environment contract implemented by the concrete
// environments (pendulum, cartpole). Implementations own all their state as
// plain value fields so that Copy can produce a fully independent instance
type Env interface {
	// Reset reinitializes the environment, seeding any randomness in the
	// initial state draw
	Reset(seed int64) (Observation, error)
	// Step applies one primitive action
	Step(action Action) (Outcome, error)
	// Render produces a frame of the current state
	Render(mode string) (Frame, error)
	// Close releases the environment
	Close() error
	// Copy returns a deep value copy with no retained aliasing. A failure to
	// copy must surface as an error, never degrade to sharing state
	Copy() (Env, error)
	// ActionSpace describes the legal primitive actions
	ActionSpace() ActionSpace
}

package types

import (
	"fmt"
	"strconv"
	"strings"
)

// An Action that a game accepts in Step
type Action interface {
	// Index of the action
	// Should be deterministic
	Hash() string
}

// DiscreteAction is an index into a finite primitive action set. In simulation
// mode on macro action games the same type indexes the macro action table
type DiscreteAction int

var _ Action = DiscreteAction(0)

func (a DiscreteAction) Hash() string {
	return strconv.Itoa(int(a))
}

// ContinuousAction is a bounded control vector
type ContinuousAction []float64

var _ Action = ContinuousAction{}

func (a ContinuousAction) Hash() string {
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = strconv.FormatFloat(v, 'f', 4, 64)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// MacroAction is an ordered sequence of primitive actions executed
// consecutively as one planning level decision
type MacroAction []Action

func (m MacroAction) String() string {
	parts := make([]string, len(m))
	for i, a := range m {
		parts[i] = a.Hash()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// RepeatAction builds a macro action of n repetitions of the same primitive
func RepeatAction(a Action, n int) MacroAction {
	m := make(MacroAction, n)
	for i := range m {
		m[i] = a
	}
	return m
}

// ActionSpace describes the legal primitive actions of an environment
type ActionSpace interface {
	// Valid reports whether the descriptor is usable
	Valid() bool
}

// DiscreteSpace is an enumerable index set 0..N-1
type DiscreteSpace struct {
	N int
}

var _ ActionSpace = DiscreteSpace{}

func (s DiscreteSpace) Valid() bool {
	return s.N > 0
}

// BoxSpace is a bounded continuous range with per dimension bounds.
// Low and High are clamping bounds, not an enumerable set
type BoxSpace struct {
	Low  []float64
	High []float64
}

var _ ActionSpace = BoxSpace{}

func (s BoxSpace) Valid() bool {
	if len(s.Low) == 0 || len(s.Low) != len(s.High) {
		return false
	}
	for i := range s.Low {
		if s.Low[i] > s.High[i] {
			return false
		}
	}
	return true
}

func (s BoxSpace) String() string {
	return fmt.Sprintf("Box[%v, %v]", s.Low, s.High)
}

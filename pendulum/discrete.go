package pendulum

import (
	"fmt"

	"github.com/zeu5/mcts-sim/types"
)

// Discrete exposes the pendulum through a finite torque grid: action index i
// maps to the i-th of NumActions evenly spaced torques over [-2, 2], scaled
// by a damping factor. The index to torque mapping is a pure function of the
// index
type Discrete struct {
	Pendulum
	NumActions int
	Damping    float64
	torques    []float64
}

var _ types.Env = &Discrete{}

func NewDiscrete(numActions int, damping float64, stepLimit int) (*Discrete, error) {
	if numActions < 2 {
		return nil, fmt.Errorf("torque grid needs at least 2 actions, got %d", numActions)
	}
	torques := make([]float64, numActions)
	for i := range torques {
		torques[i] = (-maxTorque + 2*maxTorque*float64(i)/float64(numActions-1)) * damping
	}
	return &Discrete{
		Pendulum:   Pendulum{StepLimit: stepLimit},
		NumActions: numActions,
		Damping:    damping,
		torques:    torques,
	}, nil
}

func (d *Discrete) ActionSpace() types.ActionSpace {
	return types.DiscreteSpace{N: d.NumActions}
}

func (d *Discrete) Step(action types.Action) (types.Outcome, error) {
	idx, ok := action.(types.DiscreteAction)
	if !ok {
		return types.Outcome{}, fmt.Errorf("discrete pendulum expects an action index, got %v", action)
	}
	if int(idx) < 0 || int(idx) >= len(d.torques) {
		return types.Outcome{}, fmt.Errorf("action index %d out of range [0, %d)", idx, len(d.torques))
	}
	return d.apply(d.torques[idx]), nil
}

func (d *Discrete) Copy() (types.Env, error) {
	c := *d
	c.torques = make([]float64, len(d.torques))
	copy(c.torques, d.torques)
	return &c, nil
}

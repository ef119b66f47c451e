package game

import (
	"fmt"

	"github.com/zeu5/mcts-sim/types"
)

// Adapter wraps a raw environment and normalizes it for the game layer. It
// merges the two termination signals into a single done flag, guards against
// use after Close and produces fully independent copies of itself
type Adapter struct {
	env    types.Env
	space  types.ActionSpace
	closed bool
}

// NewAdapter validates the environment's action space descriptor and wraps
// the environment
func NewAdapter(env types.Env) (*Adapter, error) {
	if env == nil {
		return nil, types.ErrInvalidEnvironment
	}
	space := env.ActionSpace()
	if space == nil || !space.Valid() {
		return nil, types.ErrInvalidEnvironment
	}
	return &Adapter{
		env:   env,
		space: space,
	}, nil
}

func (a *Adapter) ActionSpace() types.ActionSpace {
	return a.space
}

func (a *Adapter) Reset(seed int64) (types.Observation, error) {
	if a.closed {
		return nil, types.ErrEnvironmentClosed
	}
	return a.env.Reset(seed)
}

// Step applies one primitive action. Natural termination and truncation both
// end the episode identically for planning, callers never see them apart
func (a *Adapter) Step(action types.Action) (types.StepResult, error) {
	if a.closed {
		return types.StepResult{}, types.ErrEnvironmentClosed
	}
	outcome, err := a.env.Step(action)
	if err != nil {
		return types.StepResult{}, err
	}
	return types.StepResult{
		Observation: outcome.Observation,
		Reward:      outcome.Reward,
		Done:        outcome.Terminated || outcome.Truncated,
	}, nil
}

func (a *Adapter) Render(mode string) (types.Frame, error) {
	if a.closed {
		return "", types.ErrEnvironmentClosed
	}
	return a.env.Render(mode)
}

// Copy returns an adapter around a deep copy of the environment. A copy
// failure surfaces as an error, the adapter never falls back to sharing the
// underlying state
func (a *Adapter) Copy() (*Adapter, error) {
	if a.closed {
		return nil, types.ErrEnvironmentClosed
	}
	envCopy, err := a.env.Copy()
	if err != nil {
		return nil, fmt.Errorf("copying environment: %w", err)
	}
	if envCopy == nil {
		return nil, fmt.Errorf("copying environment: copy is nil")
	}
	return &Adapter{
		env:   envCopy,
		space: a.space,
	}, nil
}

func (a *Adapter) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	return a.env.Close()
}

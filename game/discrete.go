package game

import (
	"github.com/zeu5/mcts-sim/types"
)

// DiscreteGame is the plain variant over an enumerable action space. It
// behaves identically in simulation and real mode
type DiscreteGame struct {
	baseGame
}

var _ types.Game = &DiscreteGame{}

// NewDiscrete wraps an environment with a discrete action space
func NewDiscrete(env types.Env, seed int64) (*DiscreteGame, error) {
	adapter, err := NewAdapter(env)
	if err != nil {
		return nil, err
	}
	space, ok := adapter.ActionSpace().(types.DiscreteSpace)
	if !ok {
		return nil, types.ErrInvalidEnvironment
	}
	return &DiscreteGame{
		baseGame: newBaseGame(adapter, newDiscretePolicy(space), seed),
	}, nil
}

func (g *DiscreteGame) LegalActions(simulation bool) ([]types.Action, error) {
	return g.policy.legalActions(), nil
}

func (g *DiscreteGame) SampleAction(simulation bool) (types.Action, error) {
	return g.policy.sample(g.rng), nil
}

func (g *DiscreteGame) Step(action types.Action, simulation bool) (types.StepResult, error) {
	return g.adapter.Step(action)
}

func (g *DiscreteGame) Render(mode string) (types.Frame, error) {
	return g.renderShadow(mode, func() (types.Game, error) {
		c, err := g.copy()
		if err != nil {
			return nil, err
		}
		return c, nil
	})
}

func (g *DiscreteGame) Copy() (types.Game, error) {
	return g.copy()
}

func (g *DiscreteGame) copy() (*DiscreteGame, error) {
	adapterCopy, err := g.adapter.Copy()
	if err != nil {
		return nil, err
	}
	return &DiscreteGame{
		baseGame: newBaseGame(adapterCopy, g.policy, g.childSeed()),
	}, nil
}

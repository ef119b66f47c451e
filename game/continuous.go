package game

import (
	"github.com/zeu5/mcts-sim/types"
)

// ContinuousGame is the variant over a bounded continuous action space.
// Exploration draws from a Normal(mu, sigma) clamped into the space bounds
type ContinuousGame struct {
	baseGame
	mu    float64
	sigma float64
}

var _ types.Game = &ContinuousGame{}

// NewContinuous wraps an environment with a box action space. mu and sigma
// parameterize the sampling distribution used for exploration
func NewContinuous(env types.Env, seed int64, mu, sigma float64) (*ContinuousGame, error) {
	adapter, err := NewAdapter(env)
	if err != nil {
		return nil, err
	}
	space, ok := adapter.ActionSpace().(types.BoxSpace)
	if !ok {
		return nil, types.ErrInvalidEnvironment
	}
	return &ContinuousGame{
		baseGame: newBaseGame(adapter, newContinuousPolicy(space, mu, sigma), seed),
		mu:       mu,
		sigma:    sigma,
	}, nil
}

// LegalActions returns the [low, high] bounds pair. Callers must treat these
// as clamping bounds, not iterate them as a choice list
func (g *ContinuousGame) LegalActions(simulation bool) ([]types.Action, error) {
	return g.policy.legalActions(), nil
}

func (g *ContinuousGame) SampleAction(simulation bool) (types.Action, error) {
	return g.policy.sample(g.rng), nil
}

func (g *ContinuousGame) Step(action types.Action, simulation bool) (types.StepResult, error) {
	return g.adapter.Step(action)
}

func (g *ContinuousGame) Render(mode string) (types.Frame, error) {
	return g.renderShadow(mode, func() (types.Game, error) {
		c, err := g.copy()
		if err != nil {
			return nil, err
		}
		return c, nil
	})
}

func (g *ContinuousGame) Copy() (types.Game, error) {
	return g.copy()
}

func (g *ContinuousGame) copy() (*ContinuousGame, error) {
	adapterCopy, err := g.adapter.Copy()
	if err != nil {
		return nil, err
	}
	return &ContinuousGame{
		baseGame: newBaseGame(adapterCopy, g.policy, g.childSeed()),
		mu:       g.mu,
		sigma:    g.sigma,
	}, nil
}

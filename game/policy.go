package game

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/zeu5/mcts-sim/types"
)

// actionPolicy defines the legal primitive actions of an action space kind
// and how to sample one. All draws go through the owning game's generator so
// that seeding is reproducible end to end
type actionPolicy interface {
	legalActions() []types.Action
	sample(rng *rand.Rand) types.Action
}

type discretePolicy struct {
	n int
}

var _ actionPolicy = &discretePolicy{}

func newDiscretePolicy(space types.DiscreteSpace) *discretePolicy {
	return &discretePolicy{n: space.N}
}

func (p *discretePolicy) legalActions() []types.Action {
	actions := make([]types.Action, p.n)
	for i := 0; i < p.n; i++ {
		actions[i] = types.DiscreteAction(i)
	}
	return actions
}

func (p *discretePolicy) sample(rng *rand.Rand) types.Action {
	return types.DiscreteAction(rng.Intn(p.n))
}

type continuousPolicy struct {
	low   []float64
	high  []float64
	mu    float64
	sigma float64
}

var _ actionPolicy = &continuousPolicy{}

func newContinuousPolicy(space types.BoxSpace, mu, sigma float64) *continuousPolicy {
	return &continuousPolicy{
		low:   space.Low,
		high:  space.High,
		mu:    mu,
		sigma: sigma,
	}
}

// legalActions returns the [low, high] bounds pair. These are clamping
// bounds, not an enumerable choice list
func (p *continuousPolicy) legalActions() []types.Action {
	low := make(types.ContinuousAction, len(p.low))
	high := make(types.ContinuousAction, len(p.high))
	copy(low, p.low)
	copy(high, p.high)
	return []types.Action{low, high}
}

func (p *continuousPolicy) sample(rng *rand.Rand) types.Action {
	normal := distuv.Normal{
		Mu:    p.mu,
		Sigma: p.sigma,
		Src:   rng,
	}
	action := make(types.ContinuousAction, len(p.low))
	for i := range action {
		v := normal.Rand()
		if v < p.low[i] {
			v = p.low[i]
		}
		if v > p.high[i] {
			v = p.high[i]
		}
		action[i] = v
	}
	return action
}

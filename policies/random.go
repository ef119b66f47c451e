package policies

import (
	"golang.org/x/exp/rand"

	"github.com/zeu5/mcts-sim/types"
)

// RandomPolicy picks uniformly among the legal actions with its own seeded
// source. Unlike types.SamplingPolicy it does not consume the game's
// generator, so it can be shared across games
type RandomPolicy struct {
	rand *rand.Rand
}

var _ types.Policy = &RandomPolicy{}

func NewRandomPolicy(seed int64) *RandomPolicy {
	return &RandomPolicy{
		rand: rand.New(rand.NewSource(uint64(seed))),
	}
}

func (r *RandomPolicy) Reset() {}

func (r *RandomPolicy) NextAction(step int, obs types.Observation, actions []types.Action) (types.Action, bool) {
	if len(actions) == 0 {
		return nil, false
	}
	return actions[r.rand.Intn(len(actions))], true
}

func (r *RandomPolicy) Update(_ int, _ types.Observation, _ types.Action, _ types.StepResult) {}

func (r *RandomPolicy) UpdateIteration(_ int, _ *types.Trace) {}

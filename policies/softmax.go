package policies

import (
	"math"

	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/zeu5/mcts-sim/types"
)

// SoftMaxQPolicy is a tabular Q learner that samples actions with softmax
// weights over the Q values of the current observation. Observations are
// keyed by their rounded hash
type SoftMaxQPolicy struct {
	QTable map[string]map[string]float64
	alpha  float64
	gamma  float64
}

var _ types.Policy = &SoftMaxQPolicy{}

func NewSoftMaxQPolicy(alpha, gamma float64) *SoftMaxQPolicy {
	return &SoftMaxQPolicy{
		QTable: make(map[string]map[string]float64),
		alpha:  alpha,
		gamma:  gamma,
	}
}

func (s *SoftMaxQPolicy) Reset() {
	s.QTable = make(map[string]map[string]float64)
}

func (s *SoftMaxQPolicy) UpdateIteration(_ int, _ *types.Trace) {}

func (s *SoftMaxQPolicy) NextAction(step int, obs types.Observation, actions []types.Action) (types.Action, bool) {
	obsHash := obs.Hash()

	if _, ok := s.QTable[obsHash]; !ok {
		s.QTable[obsHash] = make(map[string]float64)
	}
	for _, a := range actions {
		aHash := a.Hash()
		if _, ok := s.QTable[obsHash][aHash]; !ok {
			s.QTable[obsHash][aHash] = 0
		}
	}

	sum := float64(0)
	weights := make([]float64, len(actions))
	vals := make([]float64, len(actions))
	for i, action := range actions {
		exp := math.Exp(s.QTable[obsHash][action.Hash()])
		vals[i] = exp
		sum += exp
	}
	for i, v := range vals {
		weights[i] = v / sum
	}
	i, ok := sampleuv.NewWeighted(weights, nil).Take()
	if !ok {
		return nil, false
	}
	return actions[i], true
}

func (s *SoftMaxQPolicy) Update(step int, obs types.Observation, action types.Action, result types.StepResult) {
	obsHash := obs.Hash()
	actionHash := action.Hash()
	if _, ok := s.QTable[obsHash]; !ok {
		return
	}
	if _, ok := s.QTable[obsHash][actionHash]; !ok {
		return
	}
	curVal := s.QTable[obsHash][actionHash]
	nextMax := float64(0)
	if vals, ok := s.QTable[result.Observation.Hash()]; ok {
		for _, val := range vals {
			if val > nextMax {
				nextMax = val
			}
		}
	}
	s.QTable[obsHash][actionHash] = (1-s.alpha)*curVal + s.alpha*(result.Reward+s.gamma*nextMax)
}

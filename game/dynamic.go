package game

import (
	"fmt"
	"math"

	"github.com/zeu5/mcts-sim/types"
)

// FeatureSelector extracts the scalar state feature whose sign reversal ends
// macro action discovery, e.g. the angular velocity of a pendulum
type FeatureSelector func(types.Observation) float64

// DynamicMacroGame discovers its macro action table on the fly instead of
// using a fixed one. For each primitive action it rolls out a disposable
// copy, repeating the primitive until the designated state feature changes
// sign, the length cap is hit or the episode ends. The discovered repetition
// counts depend on the current state, so the table is valid for one planning
// step only
type DynamicMacroGame struct {
	baseGame
	maxLen  int
	feature FeatureSelector
}

var _ types.Game = &DynamicMacroGame{}

// NewDynamicMacro wraps a discrete environment with a macro action generator
// capped at maxLen repetitions per primitive
func NewDynamicMacro(env types.Env, seed int64, maxLen int, feature FeatureSelector) (*DynamicMacroGame, error) {
	if maxLen < 1 {
		return nil, fmt.Errorf("macro action length cap must be positive, got %d", maxLen)
	}
	if feature == nil {
		return nil, fmt.Errorf("macro action discovery needs a feature selector")
	}
	adapter, err := NewAdapter(env)
	if err != nil {
		return nil, err
	}
	space, ok := adapter.ActionSpace().(types.DiscreteSpace)
	if !ok {
		return nil, types.ErrInvalidEnvironment
	}
	return &DynamicMacroGame{
		baseGame: newBaseGame(adapter, newDiscretePolicy(space), seed),
		maxLen:   maxLen,
		feature:  feature,
	}, nil
}

// MacroActions discovers the macro action table from the current state. The
// table is recomputed on every call rather than cached, the cost is visible
// at the call site
func (g *DynamicMacroGame) MacroActions() ([]types.MacroAction, error) {
	primitives := g.policy.legalActions()
	macros := make([]types.MacroAction, 0, len(primitives))
	for _, primitive := range primitives {
		probe, err := g.copy()
		if err != nil {
			return nil, err
		}
		count, err := discoverRepetitions(probe.adapter, primitive, g.feature, g.maxLen)
		probe.Close()
		if err != nil {
			return nil, err
		}
		macros = append(macros, types.RepeatAction(primitive, count))
	}
	return macros, nil
}

func (g *DynamicMacroGame) LegalActions(simulation bool) ([]types.Action, error) {
	if !simulation {
		return g.policy.legalActions(), nil
	}
	macros, err := g.MacroActions()
	if err != nil {
		return nil, err
	}
	return macroIndices(macros)
}

func (g *DynamicMacroGame) SampleAction(simulation bool) (types.Action, error) {
	actions, err := g.LegalActions(simulation)
	if err != nil {
		return nil, err
	}
	return actions[g.rng.Intn(len(actions))], nil
}

func (g *DynamicMacroGame) Step(action types.Action, simulation bool) (types.StepResult, error) {
	if !simulation {
		return g.adapter.Step(action)
	}
	macros, err := g.MacroActions()
	if err != nil {
		return types.StepResult{}, err
	}
	macro, err := lookupMacro(macros, action)
	if err != nil {
		return types.StepResult{}, err
	}
	return composeMacro(g.adapter, macro)
}

func (g *DynamicMacroGame) Render(mode string) (types.Frame, error) {
	return g.renderShadow(mode, func() (types.Game, error) {
		c, err := g.copy()
		if err != nil {
			return nil, err
		}
		return c, nil
	})
}

func (g *DynamicMacroGame) Copy() (types.Game, error) {
	return g.copy()
}

func (g *DynamicMacroGame) copy() (*DynamicMacroGame, error) {
	adapterCopy, err := g.adapter.Copy()
	if err != nil {
		return nil, err
	}
	return &DynamicMacroGame{
		baseGame: newBaseGame(adapterCopy, g.policy, g.childSeed()),
		maxLen:   g.maxLen,
		feature:  g.feature,
	}, nil
}

// discoverRepetitions executes the primitive on the probe until the feature
// sign reverses, the cap is reached or the episode ends. The first execution
// establishes the reference sign and counts as one repetition, the execution
// that flips the sign is excluded from the count
func discoverRepetitions(probe *Adapter, primitive types.Action, feature FeatureSelector, maxLen int) (int, error) {
	result, err := probe.Step(primitive)
	if err != nil {
		return 0, err
	}
	negative := math.Signbit(feature(result.Observation))
	count := 1
	for count < maxLen && !result.Done {
		result, err = probe.Step(primitive)
		if err != nil {
			return 0, err
		}
		if math.Signbit(feature(result.Observation)) != negative {
			break
		}
		count++
	}
	return count, nil
}

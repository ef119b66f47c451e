package game

import (
	"fmt"

	"github.com/zeu5/mcts-sim/types"
)

// MacroGame interprets simulation mode actions as indices into a fixed macro
// action table. In real mode it steps a single primitive, so planning can
// use a coarser time discretization than execution behind the same API
type MacroGame struct {
	baseGame
	macros []types.MacroAction
}

var _ types.Game = &MacroGame{}

// NewMacro wraps a discrete environment with an explicit macro action table.
// The planning level action id is the position in the table, insertion order
// is significant
func NewMacro(env types.Env, seed int64, macros []types.MacroAction) (*MacroGame, error) {
	adapter, err := NewAdapter(env)
	if err != nil {
		return nil, err
	}
	space, ok := adapter.ActionSpace().(types.DiscreteSpace)
	if !ok {
		return nil, types.ErrInvalidEnvironment
	}
	return &MacroGame{
		baseGame: newBaseGame(adapter, newDiscretePolicy(space), seed),
		macros:   macros,
	}, nil
}

// NewRepeated builds the macro action table as n repetitions of each
// primitive action, so one planning step covers n environment steps
func NewRepeated(env types.Env, seed int64, n int) (*MacroGame, error) {
	if n < 1 {
		return nil, fmt.Errorf("repeat count must be positive, got %d", n)
	}
	adapter, err := NewAdapter(env)
	if err != nil {
		return nil, err
	}
	space, ok := adapter.ActionSpace().(types.DiscreteSpace)
	if !ok {
		return nil, types.ErrInvalidEnvironment
	}
	macros := make([]types.MacroAction, space.N)
	for i := 0; i < space.N; i++ {
		macros[i] = types.RepeatAction(types.DiscreteAction(i), n)
	}
	return &MacroGame{
		baseGame: newBaseGame(adapter, newDiscretePolicy(space), seed),
		macros:   macros,
	}, nil
}

func (g *MacroGame) MacroActions() []types.MacroAction {
	return g.macros
}

func (g *MacroGame) LegalActions(simulation bool) ([]types.Action, error) {
	if !simulation {
		return g.policy.legalActions(), nil
	}
	return macroIndices(g.macros)
}

func (g *MacroGame) SampleAction(simulation bool) (types.Action, error) {
	actions, err := g.LegalActions(simulation)
	if err != nil {
		return nil, err
	}
	return actions[g.rng.Intn(len(actions))], nil
}

func (g *MacroGame) Step(action types.Action, simulation bool) (types.StepResult, error) {
	if !simulation {
		return g.adapter.Step(action)
	}
	macro, err := lookupMacro(g.macros, action)
	if err != nil {
		return types.StepResult{}, err
	}
	return composeMacro(g.adapter, macro)
}

func (g *MacroGame) Render(mode string) (types.Frame, error) {
	return g.renderShadow(mode, func() (types.Game, error) {
		c, err := g.copy()
		if err != nil {
			return nil, err
		}
		return c, nil
	})
}

func (g *MacroGame) Copy() (types.Game, error) {
	return g.copy()
}

func (g *MacroGame) copy() (*MacroGame, error) {
	adapterCopy, err := g.adapter.Copy()
	if err != nil {
		return nil, err
	}
	return &MacroGame{
		baseGame: newBaseGame(adapterCopy, g.policy, g.childSeed()),
		macros:   g.macros,
	}, nil
}

// macroIndices enumerates the planning level action ids of a macro table
func macroIndices(macros []types.MacroAction) ([]types.Action, error) {
	if len(macros) == 0 {
		return nil, types.ErrNoLegalActions
	}
	actions := make([]types.Action, len(macros))
	for i := range macros {
		actions[i] = types.DiscreteAction(i)
	}
	return actions, nil
}

// lookupMacro resolves a planning level action to its macro action
func lookupMacro(macros []types.MacroAction, action types.Action) (types.MacroAction, error) {
	idx, ok := action.(types.DiscreteAction)
	if !ok {
		return nil, fmt.Errorf("macro step expects a discrete index, got %s", action.Hash())
	}
	if int(idx) < 0 || int(idx) >= len(macros) {
		return nil, fmt.Errorf("macro action index %d out of range [0, %d)", idx, len(macros))
	}
	return macros[idx], nil
}

// composeMacro applies the primitives of a macro action in order on the same
// state, stopping the moment the episode ends. The reward is the mean over
// the primitives actually executed. A macro cut short by episode end is
// divided by the count actually run, not its nominal length
func composeMacro(adapter *Adapter, macro types.MacroAction) (types.StepResult, error) {
	if len(macro) == 0 {
		return types.StepResult{}, types.ErrNoLegalActions
	}
	var last types.StepResult
	total := float64(0)
	executed := 0
	for _, primitive := range macro {
		result, err := adapter.Step(primitive)
		if err != nil {
			return types.StepResult{}, err
		}
		total += result.Reward
		executed++
		last = result
		if result.Done {
			break
		}
	}
	last.Reward = total / float64(executed)
	return last, nil
}

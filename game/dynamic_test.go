package game

import (
	"testing"

	"github.com/zeu5/mcts-sim/types"
)

func newDynamicGame(t *testing.T, env *scriptedEnv, maxLen int) *DynamicMacroGame {
	t.Helper()
	g, err := NewDynamicMacro(env, 42, maxLen, scriptedFeature)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := g.Reset(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

func macroLengths(t *testing.T, g *DynamicMacroGame) []int {
	t.Helper()
	macros, err := g.MacroActions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lengths := make([]int, len(macros))
	for i, m := range macros {
		lengths[i] = len(m)
	}
	return lengths
}

func TestDynamicMacroSignFlip(t *testing.T) {
	env := newScriptedEnv(2)
	// the sign holds for 3 repetitions and flips on the 4th
	env.features = []float64{1, 1, 1, -1}
	g := newDynamicGame(t, env, 50)

	for i, l := range macroLengths(t, g) {
		if l != 3 {
			t.Errorf("macro %d has length %d, expected 3", i, l)
		}
	}
}

func TestDynamicMacroCap(t *testing.T) {
	env := newScriptedEnv(2)
	// the sign never flips, the cap alone bounds the length
	env.features = []float64{1}
	g := newDynamicGame(t, env, 2)

	for i, l := range macroLengths(t, g) {
		if l != 2 {
			t.Errorf("macro %d has length %d, expected the cap 2", i, l)
		}
	}
}

func TestDynamicMacroFirstRepetitionFlips(t *testing.T) {
	env := newScriptedEnv(2)
	env.features = []float64{1, -1}
	g := newDynamicGame(t, env, 50)

	for i, l := range macroLengths(t, g) {
		if l != 1 {
			t.Errorf("macro %d has length %d, expected 1", i, l)
		}
	}
}

func TestDynamicMacroDoneTruncates(t *testing.T) {
	env := newScriptedEnv(2)
	env.features = []float64{1}
	env.terminateAt = 2
	g := newDynamicGame(t, env, 50)

	for i, l := range macroLengths(t, g) {
		if l != 2 {
			t.Errorf("macro %d has length %d, expected 2 after episode end", i, l)
		}
	}
}

func TestDynamicMacroDiscoveryLeavesStateUntouched(t *testing.T) {
	env := newScriptedEnv(3)
	env.features = []float64{1, 1, -1}
	g := newDynamicGame(t, env, 50)

	if _, err := g.MacroActions(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := g.Step(types.DiscreteAction(1), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// discovery ran on probes only: this is still the first real step
	if result.Observation[0] != 1 || result.Observation[1] != 1 {
		t.Errorf("discovery mutated the canonical state: %v", result.Observation)
	}
}

func TestDynamicMacroRecomputedPerQuery(t *testing.T) {
	env := newScriptedEnv(2)
	// sign flips on the 3rd step after reset: discovery from the start sees
	// two same-sign repetitions, discovery after one real step sees one
	env.features = []float64{1, 1, -1, -1}
	g := newDynamicGame(t, env, 50)

	for i, l := range macroLengths(t, g) {
		if l != 2 {
			t.Errorf("macro %d has length %d before stepping, expected 2", i, l)
		}
	}
	if _, err := g.Step(types.DiscreteAction(0), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, l := range macroLengths(t, g) {
		if l != 1 {
			t.Errorf("macro %d has length %d after stepping, expected 1", i, l)
		}
	}
}

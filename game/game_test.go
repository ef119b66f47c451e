package game

import (
	"errors"
	"testing"

	"github.com/zeu5/mcts-sim/types"
)

func TestRenderIsolation(t *testing.T) {
	// scriptedEnv.Render is destructive on purpose: only the shadow copy
	// discipline keeps the canonical state intact
	g, err := NewDiscrete(newScriptedEnv(2), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	control, err := NewDiscrete(newScriptedEnv(2), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.Reset()
	control.Reset()

	for i := 0; i < 2; i++ {
		if _, err := g.Render("human"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	got, err := g.Step(types.DiscreteAction(1), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, err := control.Step(types.DiscreteAction(1), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Observation.Hash() != want.Observation.Hash() {
		t.Errorf("rendering disturbed the canonical state: %v != %v", got.Observation, want.Observation)
	}
}

func TestClosedGame(t *testing.T) {
	g, err := NewDiscrete(newScriptedEnv(2), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sibling, err := g.Copy()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := g.Step(types.DiscreteAction(0), false); !errors.Is(err, types.ErrEnvironmentClosed) {
		t.Errorf("expected ErrEnvironmentClosed, got %v", err)
	}
	if _, err := g.Render("human"); !errors.Is(err, types.ErrEnvironmentClosed) {
		t.Errorf("expected ErrEnvironmentClosed from Render, got %v", err)
	}
	if _, err := sibling.Step(types.DiscreteAction(0), false); err != nil {
		t.Errorf("sibling unusable after original closed: %v", err)
	}
}

func TestResetWithSeedReseeds(t *testing.T) {
	g, err := NewDiscrete(newScriptedEnv(9), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := g.ResetWithSeed(77); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Seed() != 77 {
		t.Errorf("expected seed 77 after ResetWithSeed, got %d", g.Seed())
	}
	first, _ := g.SampleAction(false)
	if _, err := g.ResetWithSeed(77); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _ := g.SampleAction(false)
	if first.Hash() != second.Hash() {
		t.Errorf("sampling differs after identical reseeded resets")
	}
}

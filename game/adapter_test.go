package game

import (
	"errors"
	"testing"

	"github.com/zeu5/mcts-sim/types"
)

func TestAdapterRejectsInvalidEnvironment(t *testing.T) {
	if _, err := NewAdapter(nil); !errors.Is(err, types.ErrInvalidEnvironment) {
		t.Errorf("expected ErrInvalidEnvironment for nil env, got %v", err)
	}

	env := newScriptedEnv(0)
	if _, err := NewAdapter(env); !errors.Is(err, types.ErrInvalidEnvironment) {
		t.Errorf("expected ErrInvalidEnvironment for empty action space, got %v", err)
	}

	env = newScriptedEnv(2)
	env.space = types.BoxSpace{Low: []float64{1}, High: []float64{-1}}
	if _, err := NewAdapter(env); !errors.Is(err, types.ErrInvalidEnvironment) {
		t.Errorf("expected ErrInvalidEnvironment for inverted bounds, got %v", err)
	}
}

func TestAdapterMergesTerminationSignals(t *testing.T) {
	terminating := newScriptedEnv(2)
	terminating.terminateAt = 1
	truncating := newScriptedEnv(2)
	truncating.truncateAt = 1

	for name, env := range map[string]*scriptedEnv{"terminated": terminating, "truncated": truncating} {
		adapter, err := NewAdapter(env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := adapter.Reset(0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		result, err := adapter.Step(types.DiscreteAction(0))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Done {
			t.Errorf("%s episode end not reported as done", name)
		}
	}
}

func TestAdapterClosed(t *testing.T) {
	adapter, err := NewAdapter(newScriptedEnv(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sibling, err := adapter.Copy()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := adapter.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := adapter.Step(types.DiscreteAction(0)); !errors.Is(err, types.ErrEnvironmentClosed) {
		t.Errorf("expected ErrEnvironmentClosed from Step, got %v", err)
	}
	if _, err := adapter.Reset(0); !errors.Is(err, types.ErrEnvironmentClosed) {
		t.Errorf("expected ErrEnvironmentClosed from Reset, got %v", err)
	}
	if _, err := adapter.Copy(); !errors.Is(err, types.ErrEnvironmentClosed) {
		t.Errorf("expected ErrEnvironmentClosed from Copy, got %v", err)
	}

	// closing one instance must not affect its copies
	if _, err := sibling.Step(types.DiscreteAction(1)); err != nil {
		t.Errorf("sibling copy unusable after original closed: %v", err)
	}
}

func TestAdapterCopyIndependence(t *testing.T) {
	adapter, err := NewAdapter(newScriptedEnv(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := adapter.Reset(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	branch, err := adapter.Copy()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		if _, err := branch.Step(types.DiscreteAction(2)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	result, err := adapter.Step(types.DiscreteAction(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// counter 1 and step 1: the branch's steps must not have leaked in
	if result.Observation[0] != 1 || result.Observation[1] != 1 {
		t.Errorf("original state polluted by branch: %v", result.Observation)
	}
}

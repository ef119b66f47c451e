package policies

import (
	"testing"

	"github.com/zeu5/mcts-sim/types"
)

func TestSoftMaxQPicksLegalAction(t *testing.T) {
	p := NewSoftMaxQPolicy(0.1, 0.99)
	obs := types.Observation{0.5}
	actions := []types.Action{types.DiscreteAction(0), types.DiscreteAction(1), types.DiscreteAction(2)}

	for i := 0; i < 100; i++ {
		a, ok := p.NextAction(0, obs, actions)
		if !ok {
			t.Fatalf("no action picked")
		}
		idx := int(a.(types.DiscreteAction))
		if idx < 0 || idx > 2 {
			t.Fatalf("illegal action %d", idx)
		}
	}
}

func TestSoftMaxQUpdate(t *testing.T) {
	p := NewSoftMaxQPolicy(0.5, 0.99)
	obs := types.Observation{0.5}
	actions := []types.Action{types.DiscreteAction(0), types.DiscreteAction(1)}

	// seed the table
	if _, ok := p.NextAction(0, obs, actions); !ok {
		t.Fatalf("no action picked")
	}
	p.Update(0, obs, types.DiscreteAction(0), types.StepResult{
		Observation: types.Observation{1.5},
		Reward:      2.0,
	})

	if got := p.QTable[obs.Hash()][types.DiscreteAction(0).Hash()]; got != 1.0 {
		t.Errorf("expected Q value 1.0 after update, got %f", got)
	}

	p.Reset()
	if len(p.QTable) != 0 {
		t.Errorf("reset did not clear the table")
	}
}

func TestRandomPolicyReproducible(t *testing.T) {
	obs := types.Observation{0}
	actions := []types.Action{types.DiscreteAction(0), types.DiscreteAction(1), types.DiscreteAction(2)}

	a := NewRandomPolicy(11)
	b := NewRandomPolicy(11)
	for i := 0; i < 50; i++ {
		x, _ := a.NextAction(i, obs, actions)
		y, _ := b.NextAction(i, obs, actions)
		if x.Hash() != y.Hash() {
			t.Fatalf("equally seeded policies diverged at pick %d", i)
		}
	}
}

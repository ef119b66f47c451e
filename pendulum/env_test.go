package pendulum

import (
	"math"
	"testing"

	"github.com/zeu5/mcts-sim/types"
)

func TestResetDeterministic(t *testing.T) {
	a := New(200)
	b := New(200)
	obsA, _ := a.Reset(13)
	obsB, _ := b.Reset(13)
	for i := range obsA {
		if obsA[i] != obsB[i] {
			t.Fatalf("resets with the same seed differ: %v != %v", obsA, obsB)
		}
	}

	torque := types.ContinuousAction{1.5}
	for i := 0; i < 20; i++ {
		outA, _ := a.Step(torque)
		outB, _ := b.Step(torque)
		if outA.Observation.Hash() != outB.Observation.Hash() {
			t.Fatalf("step %d diverged: %v != %v", i, outA.Observation, outB.Observation)
		}
	}
}

func TestCopyIndependence(t *testing.T) {
	p := New(200)
	p.Reset(13)
	c, err := p.Copy()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := p.Theta
	for i := 0; i < 10; i++ {
		c.Step(types.ContinuousAction{2})
	}
	if p.Theta != before {
		t.Errorf("stepping the copy moved the original")
	}
}

func TestTruncation(t *testing.T) {
	p := New(3)
	p.Reset(13)
	for i := 0; i < 2; i++ {
		out, _ := p.Step(types.ContinuousAction{0})
		if out.Truncated || out.Terminated {
			t.Fatalf("episode ended early at step %d", i+1)
		}
	}
	out, _ := p.Step(types.ContinuousAction{0})
	if !out.Truncated {
		t.Errorf("expected truncation at the step limit")
	}
	if out.Terminated {
		t.Errorf("pendulum must never terminate naturally")
	}
}

func TestTorqueClamped(t *testing.T) {
	a := New(0)
	b := New(0)
	a.Reset(13)
	b.Reset(13)
	outA, _ := a.Step(types.ContinuousAction{100})
	outB, _ := b.Step(types.ContinuousAction{maxTorque})
	if outA.Observation.Hash() != outB.Observation.Hash() {
		t.Errorf("torque beyond the bound not clamped")
	}
}

func TestAngleNormalize(t *testing.T) {
	for _, theta := range []float64{-9, -math.Pi, 0, 1, math.Pi, 9, 100} {
		n := angleNormalize(theta)
		if n < -math.Pi || n >= math.Pi {
			t.Errorf("angleNormalize(%f) = %f out of [-pi, pi)", theta, n)
		}
		if math.Abs(math.Sin(n)-math.Sin(theta)) > 1e-9 {
			t.Errorf("angleNormalize(%f) = %f changed the angle", theta, n)
		}
	}
}

func TestDiscreteTorqueGrid(t *testing.T) {
	d, err := NewDiscrete(5, 1.0, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if space, ok := d.ActionSpace().(types.DiscreteSpace); !ok || space.N != 5 {
		t.Fatalf("wrong action space: %v", d.ActionSpace())
	}
	if d.torques[0] != -maxTorque || d.torques[4] != maxTorque {
		t.Errorf("grid endpoints are %f, %f, expected the torque bounds", d.torques[0], d.torques[4])
	}
	if d.torques[2] != 0 {
		t.Errorf("odd grid should include 0, got %f", d.torques[2])
	}

	if _, err := NewDiscrete(1, 1.0, 200); err == nil {
		t.Errorf("expected an error for a single action grid")
	}
}

func TestDiscreteDamping(t *testing.T) {
	d, err := NewDiscrete(3, 0.5, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.torques[0] != -maxTorque*0.5 || d.torques[2] != maxTorque*0.5 {
		t.Errorf("damping not applied to the grid: %v", d.torques)
	}
}

func TestAngularVelocitySelector(t *testing.T) {
	p := New(0)
	p.Reset(13)
	out, _ := p.Step(types.ContinuousAction{1})
	if AngularVelocity(out.Observation) != p.ThetaDot {
		t.Errorf("selector does not pick theta_dot")
	}
}

package pendulum

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/zeu5/mcts-sim/types"
)

const (
	maxSpeed  = 8.0
	maxTorque = 2.0
	dt        = 0.05
	gravity   = 10.0
	mass      = 1.0
	length    = 1.0
)

// Pendulum is the classic inverted pendulum swing up task. The observation
// is [cos(theta), sin(theta), theta_dot] and the action a single torque
// value in [-2, 2]. The episode never terminates naturally, it is truncated
// after StepLimit steps.
//
// All state lives in plain value fields so Copy is an exact value copy
type Pendulum struct {
	Theta    float64
	ThetaDot float64
	Steps    int

	// StepLimit truncates the episode, 0 means no limit
	StepLimit int
}

var _ types.Env = &Pendulum{}

func New(stepLimit int) *Pendulum {
	return &Pendulum{
		StepLimit: stepLimit,
	}
}

func (p *Pendulum) ActionSpace() types.ActionSpace {
	return types.BoxSpace{
		Low:  []float64{-maxTorque},
		High: []float64{maxTorque},
	}
}

func (p *Pendulum) Reset(seed int64) (types.Observation, error) {
	rng := rand.New(rand.NewSource(uint64(seed)))
	p.Theta = -math.Pi + 2*math.Pi*rng.Float64()
	p.ThetaDot = -1 + 2*rng.Float64()
	p.Steps = 0
	return p.observation(), nil
}

func (p *Pendulum) Step(action types.Action) (types.Outcome, error) {
	torque, err := torqueOf(action)
	if err != nil {
		return types.Outcome{}, err
	}
	return p.apply(torque), nil
}

// apply advances the dynamics by one tick with the given torque
func (p *Pendulum) apply(torque float64) types.Outcome {
	torque = clamp(torque, -maxTorque, maxTorque)

	cost := angleNormalize(p.Theta)*angleNormalize(p.Theta) +
		0.1*p.ThetaDot*p.ThetaDot +
		0.001*torque*torque

	thetaDot := p.ThetaDot + (3*gravity/(2*length)*math.Sin(p.Theta)+3/(mass*length*length)*torque)*dt
	thetaDot = clamp(thetaDot, -maxSpeed, maxSpeed)
	p.Theta = p.Theta + thetaDot*dt
	p.ThetaDot = thetaDot
	p.Steps++

	return types.Outcome{
		Observation: p.observation(),
		Reward:      -cost,
		Terminated:  false,
		Truncated:   p.StepLimit > 0 && p.Steps >= p.StepLimit,
	}
}

func (p *Pendulum) observation() types.Observation {
	return types.Observation{math.Cos(p.Theta), math.Sin(p.Theta), p.ThetaDot}
}

func (p *Pendulum) Render(mode string) (types.Frame, error) {
	return types.Frame(fmt.Sprintf("theta: %+.3f theta_dot: %+.3f step: %d", angleNormalize(p.Theta), p.ThetaDot, p.Steps)), nil
}

func (p *Pendulum) Copy() (types.Env, error) {
	c := *p
	return &c, nil
}

func (p *Pendulum) Close() error {
	return nil
}

// AngularVelocity selects theta_dot from a pendulum observation. It is the
// stopping feature for dynamic macro action discovery: repeating a torque
// makes sense while the pendulum keeps swinging the same way
func AngularVelocity(obs types.Observation) float64 {
	if len(obs) < 3 {
		return 0
	}
	return obs[2]
}

func torqueOf(action types.Action) (float64, error) {
	a, ok := action.(types.ContinuousAction)
	if !ok || len(a) != 1 {
		return 0, fmt.Errorf("pendulum expects a 1-dimensional continuous action, got %v", action)
	}
	return a[0], nil
}

// angleNormalize maps theta into [-pi, pi)
func angleNormalize(theta float64) float64 {
	m := math.Mod(theta+math.Pi, 2*math.Pi)
	if m < 0 {
		m += 2 * math.Pi
	}
	return m - math.Pi
}

func clamp(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

package cartpole

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/rand"

	"github.com/zeu5/mcts-sim/types"
)

const (
	gravity        = 9.8
	massCart       = 1.0
	massPole       = 0.1
	totalMass      = massCart + massPole
	halfPoleLength = 0.5
	poleMassLength = massPole * halfPoleLength
	forceMag       = 10.0
	tau            = 0.02

	thetaThreshold = 12 * 2 * math.Pi / 360
	xThreshold     = 2.4
)

// CartPole is the classic pole balancing task with two primitive actions,
// push left and push right. The episode terminates naturally when the pole
// falls or the cart leaves the track, and is truncated at StepLimit steps.
// Both ends look identical to the game layer, which is the point: the
// adapter merges them into one done flag
type CartPole struct {
	X        float64
	XDot     float64
	Theta    float64
	ThetaDot float64
	Steps    int

	StepLimit int
}

var _ types.Env = &CartPole{}

func New(stepLimit int) *CartPole {
	return &CartPole{
		StepLimit: stepLimit,
	}
}

func (c *CartPole) ActionSpace() types.ActionSpace {
	return types.DiscreteSpace{N: 2}
}

func (c *CartPole) Reset(seed int64) (types.Observation, error) {
	rng := rand.New(rand.NewSource(uint64(seed)))
	c.X = -0.05 + 0.1*rng.Float64()
	c.XDot = -0.05 + 0.1*rng.Float64()
	c.Theta = -0.05 + 0.1*rng.Float64()
	c.ThetaDot = -0.05 + 0.1*rng.Float64()
	c.Steps = 0
	return c.observation(), nil
}

func (c *CartPole) Step(action types.Action) (types.Outcome, error) {
	idx, ok := action.(types.DiscreteAction)
	if !ok {
		return types.Outcome{}, fmt.Errorf("cartpole expects an action index, got %v", action)
	}
	var force float64
	switch idx {
	case 0:
		force = -forceMag
	case 1:
		force = forceMag
	default:
		return types.Outcome{}, fmt.Errorf("action index %d out of range [0, 2)", idx)
	}

	cosTheta := math.Cos(c.Theta)
	sinTheta := math.Sin(c.Theta)

	temp := (force + poleMassLength*c.ThetaDot*c.ThetaDot*sinTheta) / totalMass
	thetaAcc := (gravity*sinTheta - cosTheta*temp) /
		(halfPoleLength * (4.0/3.0 - massPole*cosTheta*cosTheta/totalMass))
	xAcc := temp - poleMassLength*thetaAcc*cosTheta/totalMass

	c.X += tau * c.XDot
	c.XDot += tau * xAcc
	c.Theta += tau * c.ThetaDot
	c.ThetaDot += tau * thetaAcc
	c.Steps++

	terminated := c.X < -xThreshold || c.X > xThreshold ||
		c.Theta < -thetaThreshold || c.Theta > thetaThreshold

	return types.Outcome{
		Observation: c.observation(),
		Reward:      1.0,
		Terminated:  terminated,
		Truncated:   c.StepLimit > 0 && c.Steps >= c.StepLimit,
	}, nil
}

func (c *CartPole) observation() types.Observation {
	return types.Observation{c.X, c.XDot, c.Theta, c.ThetaDot}
}

func (c *CartPole) Render(mode string) (types.Frame, error) {
	// one line track with the cart position marked
	width := 41
	pos := int((c.X + xThreshold) / (2 * xThreshold) * float64(width-1))
	if pos < 0 {
		pos = 0
	}
	if pos >= width {
		pos = width - 1
	}
	track := []byte(strings.Repeat("-", width))
	track[pos] = '#'
	return types.Frame(fmt.Sprintf("|%s| theta: %+.3f step: %d", track, c.Theta, c.Steps)), nil
}

func (c *CartPole) Copy() (types.Env, error) {
	cc := *c
	return &cc, nil
}

func (c *CartPole) Close() error {
	return nil
}

// PoleVelocity selects theta_dot from a cartpole observation
func PoleVelocity(obs types.Observation) float64 {
	if len(obs) < 4 {
		return 0
	}
	return obs[3]
}

package types

// Policy chooses actions for the experiment harness when running episodes
// over a game
type Policy interface {
	// NextAction picks among the legal actions of the current state
	NextAction(step int, obs Observation, actions []Action) (Action, bool)
	// Update is called after each transition
	Update(step int, obs Observation, action Action, result StepResult)
	// UpdateIteration is called at the end of each episode with its trace
	UpdateIteration(episode int, trace *Trace)
	Reset()
}

// SamplingPolicy defers every choice to the game's own seeded sampler. It is
// the reproducible baseline: two harness runs over games with the same seed
// pick the same actions
type SamplingPolicy struct {
	game       Game
	simulation bool
}

var _ Policy = &SamplingPolicy{}

func NewSamplingPolicy(game Game, simulation bool) *SamplingPolicy {
	return &SamplingPolicy{
		game:       game,
		simulation: simulation,
	}
}

func (p *SamplingPolicy) NextAction(step int, obs Observation, actions []Action) (Action, bool) {
	a, err := p.game.SampleAction(p.simulation)
	if err != nil {
		return nil, false
	}
	return a, true
}

func (p *SamplingPolicy) Update(_ int, _ Observation, _ Action, _ StepResult) {}

func (p *SamplingPolicy) UpdateIteration(_ int, _ *Trace) {}

func (p *SamplingPolicy) Reset() {}

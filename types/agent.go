package types

type AgentConfig struct {
	Episodes int
	Horizon  int
	// Simulation selects the mode the agent queries on every
	// LegalActions/Step call
	Simulation bool
	Policy     Policy
	Game       Game
}

// Agent runs episodes of a policy over a game and collects the traces
type Agent struct {
	config *AgentConfig
	// Only populated if Run or RunEpisode are invoked
	traces []*Trace
	policy Policy
	game   Game
}

// Instantiates a new Agent
func NewAgent(config *AgentConfig) *Agent {
	return &Agent{
		config: config,
		traces: make([]*Trace, config.Episodes),
		policy: config.Policy,
		game:   config.Game,
	}
}

// Run the agent for the specified number of episodes and horizon
func (a *Agent) Run() error {
	for i := 0; i < a.config.Episodes; i++ {
		if _, err := a.RunEpisode(i); err != nil {
			return err
		}
	}
	return nil
}

func (a *Agent) Traces() []*Trace {
	return a.traces
}

// RunEpisode runs a single episode and returns the resulting trace
func (a *Agent) RunEpisode(episode int) (*Trace, error) {
	obs, err := a.game.Reset()
	if err != nil {
		return nil, err
	}
	trace := NewTrace()

	for i := 0; i < a.config.Horizon; i++ {
		actions, err := a.game.LegalActions(a.config.Simulation)
		if err != nil {
			return nil, err
		}
		if len(actions) == 0 {
			break
		}
		action, ok := a.policy.NextAction(i, obs, actions)
		if !ok {
			break
		}
		result, err := a.game.Step(action, a.config.Simulation)
		if err != nil {
			return nil, err
		}
		a.policy.Update(i, obs, action, result)

		trace.Append(obs, action, result.Reward, result.Done)
		obs = result.Observation
		if result.Done {
			break
		}
	}
	a.policy.UpdateIteration(episode, trace)

	a.traces[episode] = trace
	return trace, nil
}

// SampledRollout advances a disposable copy of the game with sampled actions
// for up to horizon steps and returns the trace of the branch. The original
// game is left untouched, which is the branching discipline a planner uses
// for leaf evaluation
func SampledRollout(g Game, horizon int, simulation bool) (*Trace, error) {
	branch, err := g.Copy()
	if err != nil {
		return nil, err
	}
	defer branch.Close()

	// the trace records post step observations since the branch exposes no
	// observation before its first step
	trace := NewTrace()
	for i := 0; i < horizon; i++ {
		action, err := branch.SampleAction(simulation)
		if err != nil {
			return nil, err
		}
		result, err := branch.Step(action, simulation)
		if err != nil {
			return nil, err
		}
		trace.Append(result.Observation, action, result.Reward, result.Done)
		if result.Done {
			break
		}
	}
	return trace, nil
}

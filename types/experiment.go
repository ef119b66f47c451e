package types

import (
	"fmt"
	"time"

	"github.com/gosuri/uilive"
)

// Experiment encapsulates a named (policy, game) pair to run and analyze
type Experiment struct {
	Name   string
	policy Policy
	game   Game
}

// NewExperiment creates a new experiment instance
func NewExperiment(name string, policy Policy, game Game) *Experiment {
	return &Experiment{
		Name:   name,
		policy: policy,
		game:   game,
	}
}

type ComparisonConfig struct {
	Episodes int
	Horizon  int
	Runs     int
	// Simulation selects the mode the agents run their episodes in
	Simulation bool
	// Recorder, if set, receives every episode trace
	Recorder TraceRecorder
}

type analysis struct {
	analyzer   Analyzer
	comparator Comparator
}

// Comparison runs a set of experiments side by side and compares the
// resulting datasets
type Comparison struct {
	config      *ComparisonConfig
	experiments []*Experiment
	analyses    []analysis
}

func NewComparison(config *ComparisonConfig) *Comparison {
	return &Comparison{
		config:      config,
		experiments: make([]*Experiment, 0),
		analyses:    make([]analysis, 0),
	}
}

func (c *Comparison) AddExperiment(e *Experiment) {
	c.experiments = append(c.experiments, e)
}

// AddAnalysis registers an analyzer together with the comparator that
// consumes its datasets
func (c *Comparison) AddAnalysis(analyzer Analyzer, comparator Comparator) {
	c.analyses = append(c.analyses, analysis{analyzer: analyzer, comparator: comparator})
}

// Run executes every experiment for the configured number of runs, streaming
// progress to the terminal via a live updating writer
func (c *Comparison) Run() error {
	runs := c.config.Runs
	if runs < 1 {
		runs = 1
	}

	writer := uilive.New()
	writer.Start()
	defer writer.Stop()

	for run := 0; run < runs; run++ {
		names := make([]string, len(c.experiments))
		traces := make([][]*Trace, len(c.experiments))

		for i, e := range c.experiments {
			names[i] = e.Name
			agent := NewAgent(&AgentConfig{
				Episodes:   c.config.Episodes,
				Horizon:    c.config.Horizon,
				Simulation: c.config.Simulation,
				Policy:     e.policy,
				Game:       e.game,
			})

			start := time.Now()
			for ep := 0; ep < c.config.Episodes; ep++ {
				trace, err := agent.RunEpisode(ep)
				if err != nil {
					return fmt.Errorf("experiment %s episode %d: %w", e.Name, ep, err)
				}
				if c.config.Recorder != nil {
					if err := c.config.Recorder.Record(e.Name, run, trace); err != nil {
						return fmt.Errorf("recording trace of %s: %w", e.Name, err)
					}
				}
				fmt.Fprintf(writer, "Run %d/%d, Exp: %s, Episodes: %d/%d, Return: %.3f, Elapsed: %s\n",
					run+1, runs, e.Name, ep+1, c.config.Episodes, trace.Return(), time.Since(start).Round(time.Millisecond))
			}
			traces[i] = agent.Traces()
		}

		for _, a := range c.analyses {
			data := make([]DataSet, len(c.experiments))
			for i := range c.experiments {
				data[i] = a.analyzer(run, names[i], traces[i])
			}
			a.comparator(run, names, data)
		}
	}
	return nil
}

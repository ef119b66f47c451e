package benchmarks

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeu5/mcts-sim/cartpole"
	"github.com/zeu5/mcts-sim/game"
	"github.com/zeu5/mcts-sim/policies"
	"github.com/zeu5/mcts-sim/types"
)

// CartPoleBenchmark compares planning with single primitive steps against
// planning with repeated macro actions on the cart pole task
func CartPoleBenchmark(repeat int, stepLimit int) error {
	single, err := game.NewDiscrete(cartpole.New(stepLimit), seed)
	if err != nil {
		return err
	}
	repeated, err := game.NewRepeated(cartpole.New(stepLimit), seed, repeat)
	if err != nil {
		return err
	}
	learner, err := game.NewDiscrete(cartpole.New(stepLimit), seed)
	if err != nil {
		return err
	}
	defer single.Close()
	defer repeated.Close()
	defer learner.Close()

	recorder, err := traceRecorder()
	if err != nil {
		return err
	}
	if recorder != nil {
		defer recorder.Close()
	}

	c := types.NewComparison(&types.ComparisonConfig{
		Episodes:   episodes,
		Horizon:    horizon,
		Runs:       runs,
		Simulation: true,
		Recorder:   recorder,
	})
	c.AddExperiment(types.NewExperiment("Single-Step", policies.NewRandomPolicy(seed), single))
	c.AddExperiment(types.NewExperiment(fmt.Sprintf("Repeat-%d", repeat), policies.NewRandomPolicy(seed), repeated))
	c.AddExperiment(types.NewExperiment("SoftMax-Q", policies.NewSoftMaxQPolicy(0.1, 0.99), learner))

	c.AddAnalysis(types.EpisodeReturns(), types.ReturnPlotter(savePath))
	c.AddAnalysis(types.EpisodeReturns(), types.ReturnSummary())
	c.AddAnalysis(types.ObservationCoverage(), types.CoveragePlotter(savePath))

	return c.Run()
}

func CartPoleCommand() *cobra.Command {
	var repeat int
	var stepLimit int

	cmd := &cobra.Command{
		Use: "cartpole",
		RunE: func(cmd *cobra.Command, args []string) error {
			return CartPoleBenchmark(repeat, stepLimit)
		},
	}
	cmd.PersistentFlags().IntVar(&repeat, "repeat", 4, "Number of primitive steps per macro action")
	cmd.PersistentFlags().IntVar(&stepLimit, "step-limit", 500, "Episode truncation limit")
	return cmd
}

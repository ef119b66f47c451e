package benchmarks

import (
	"github.com/spf13/cobra"

	"github.com/zeu5/mcts-sim/game"
	"github.com/zeu5/mcts-sim/pendulum"
	"github.com/zeu5/mcts-sim/types"
)

// PendulumBenchmark runs the continuous pendulum with Normal(mu, sigma)
// exploration sampling
func PendulumBenchmark(mu, sigma float64, stepLimit int) error {
	g, err := game.NewContinuous(pendulum.New(stepLimit), seed, mu, sigma)
	if err != nil {
		return err
	}
	defer g.Close()

	recorder, err := traceRecorder()
	if err != nil {
		return err
	}
	if recorder != nil {
		defer recorder.Close()
	}

	c := types.NewComparison(&types.ComparisonConfig{
		Episodes: episodes,
		Horizon:  horizon,
		Runs:     runs,
		Recorder: recorder,
	})
	c.AddExperiment(types.NewExperiment("Normal-Sampling", types.NewSamplingPolicy(g, false), g))

	c.AddAnalysis(types.EpisodeReturns(), types.ReturnPlotter(savePath))
	c.AddAnalysis(types.EpisodeReturns(), types.ReturnSummary())

	return c.Run()
}

func PendulumCommand() *cobra.Command {
	var mu float64
	var sigma float64
	var stepLimit int

	cmd := &cobra.Command{
		Use: "pendulum",
		RunE: func(cmd *cobra.Command, args []string) error {
			return PendulumBenchmark(mu, sigma, stepLimit)
		},
	}
	cmd.PersistentFlags().Float64Var(&mu, "mu", 0, "Mean of the sampling distribution")
	cmd.PersistentFlags().Float64Var(&sigma, "sigma", 1, "Std dev of the sampling distribution")
	cmd.PersistentFlags().IntVar(&stepLimit, "step-limit", 200, "Episode truncation limit")
	return cmd
}

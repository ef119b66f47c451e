package benchmarks

import (
	"github.com/spf13/cobra"

	"github.com/zeu5/mcts-sim/game"
	"github.com/zeu5/mcts-sim/pendulum"
	"github.com/zeu5/mcts-sim/policies"
	"github.com/zeu5/mcts-sim/types"
)

// PendulumMacroBenchmark compares a fixed repetition macro table against
// dynamically discovered macro actions on the discretized pendulum. The
// dynamic variant repeats a torque while the pendulum keeps swinging the
// same way, so its planning steps stretch and shrink with the state
func PendulumMacroBenchmark(numActions int, damping float64, repeat, maxLen, stepLimit int) error {
	fixedEnv, err := pendulum.NewDiscrete(numActions, damping, stepLimit)
	if err != nil {
		return err
	}
	dynamicEnv, err := pendulum.NewDiscrete(numActions, damping, stepLimit)
	if err != nil {
		return err
	}

	fixed, err := game.NewRepeated(fixedEnv, seed, repeat)
	if err != nil {
		return err
	}
	dynamic, err := game.NewDynamicMacro(dynamicEnv, seed, maxLen, pendulum.AngularVelocity)
	if err != nil {
		return err
	}
	defer fixed.Close()
	defer dynamic.Close()

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
	c.AddExperiment(types.NewExperiment("Fixed-Macro", policies.NewRandomPolicy(seed), fixed))
	c.AddExperiment(types.NewExperiment("Dynamic-Macro", policies.NewRandomPolicy(seed), dynamic))

	c.AddAnalysis(types.EpisodeReturns(), types.ReturnPlotter(savePath))
	c.AddAnalysis(types.EpisodeReturns(), types.ReturnSummary())

	return c.Run()
}

func PendulumMacroCommand() *cobra.Command {
	var numActions int
	var damping float64
	var repeat int
	var maxLen int
	var stepLimit int

	cmd := &cobra.Command{
		Use: "pendulum-macro",
		RunE: func(cmd *cobra.Command, args []string) error {
			return PendulumMacroBenchmark(numActions, damping, repeat, maxLen, stepLimit)
		},
	}
	cmd.PersistentFlags().IntVar(&numActions, "num-actions", 5, "Size of the torque grid")
	cmd.PersistentFlags().Float64Var(&damping, "damping", 1.0, "Damping factor on the torque grid")
	cmd.PersistentFlags().IntVar(&repeat, "repeat", 4, "Repetitions per fixed macro action")
	cmd.PersistentFlags().IntVar(&maxLen, "max-macro-len", 50, "Length cap for discovered macro actions")
	cmd.PersistentFlags().IntVar(&stepLimit, "step-limit", 200, "Episode truncation limit")
	return cmd
}

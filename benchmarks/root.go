package benchmarks

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeu5/mcts-sim/types"
)

var (
	episodes  int
	horizon   int
	savePath  string
	runs      int
	seed      int64
	record    bool
	redisAddr string
)

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{}
	rootCommand.PersistentFlags().IntVarP(&episodes, "episodes", "e", 100, "Number of episodes to run")
	rootCommand.PersistentFlags().IntVar(&horizon, "horizon", 200, "Horizon of each episode")
	rootCommand.PersistentFlags().StringVarP(&savePath, "save", "s", "results", "Save the result data in the specified folder")
	rootCommand.PersistentFlags().IntVar(&runs, "runs", 1, "Number of experiment runs")
	rootCommand.PersistentFlags().Int64Var(&seed, "seed", 2023, "Seed of the canonical game")
	rootCommand.PersistentFlags().BoolVar(&record, "record", false, "Record episode traces")
	rootCommand.PersistentFlags().StringVar(&redisAddr, "redis", "", "Record traces to this redis address instead of files")
	// adding the subcommands here
	rootCommand.AddCommand(CartPoleCommand())
	rootCommand.AddCommand(PendulumCommand())
	rootCommand.AddCommand(PendulumMacroCommand())
	rootCommand.AddCommand(ExploreCommand())
	rootCommand.AddCommand(ServeCommand())
	return rootCommand
}

// traceRecorder builds the recorder selected by the record/redis flags, nil
// when recording is off
func traceRecorder() (types.TraceRecorder, error) {
	if !record {
		return nil, nil
	}
	if redisAddr != "" {
		return types.NewRedisRecorder(redisAddr, "mcts-sim"), nil
	}
	recorder, err := types.NewFileRecorder(savePath)
	if err != nil {
		return nil, fmt.Errorf("creating trace recorder: %w", err)
	}
	return recorder, nil
}

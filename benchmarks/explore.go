package benchmarks

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/zeu5/mcts-sim/cartpole"
	"github.com/zeu5/mcts-sim/explorer"
	"github.com/zeu5/mcts-sim/game"
	"github.com/zeu5/mcts-sim/pendulum"
	"github.com/zeu5/mcts-sim/types"
)

// buildGame constructs the game named by the env flag
func buildGame(env string, repeat int) (types.Game, error) {
	switch env {
	case "cartpole-repeat":
		return game.NewRepeated(cartpole.New(500), seed, repeat)
	case "pendulum-dynamic":
		d, err := pendulum.NewDiscrete(5, 1.0, 200)
		if err != nil {
			return nil, err
		}
		return game.NewDynamicMacro(d, seed, 50, pendulum.AngularVelocity)
	default:
		return game.NewDiscrete(cartpole.New(500), seed)
	}
}

func ExploreCommand() *cobra.Command {
	var env string
	var repeat int

	cmd := &cobra.Command{
		Use: "explore",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := buildGame(env, repeat)
			if err != nil {
				return err
			}
			explorer.NewExplorer(g).Interact()
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&env, "env", "cartpole", "Game to explore (cartpole, cartpole-repeat, pendulum-dynamic)")
	cmd.PersistentFlags().IntVar(&repeat, "repeat", 4, "Repetitions per macro action")
	return cmd
}

func ServeCommand() *cobra.Command {
	var env string
	var repeat int
	var addr string

	cmd := &cobra.Command{
		Use: "serve",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := buildGame(env, repeat)
			if err != nil {
				return err
			}
			defer g.Close()
			if _, err := g.Reset(); err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()
			return explorer.NewMonitor(g, addr).Run(ctx)
		},
	}
	cmd.PersistentFlags().StringVar(&env, "env", "cartpole", "Game to serve (cartpole, cartpole-repeat, pendulum-dynamic)")
	cmd.PersistentFlags().IntVar(&repeat, "repeat", 4, "Repetitions per macro action")
	cmd.PersistentFlags().StringVar(&addr, "addr", "127.0.0.1:7074", "Address to serve the monitor on")
	return cmd
}

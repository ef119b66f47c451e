package explorer

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/zeu5/mcts-sim/types"
)

// Explorer drives a live game interactively from the terminal. It is a
// debugging aid to poke at the two action modes, branching and rendering of
// a game without writing a planner
type Explorer struct {
	game types.Game
	// branches created during the session, released on quit
	branches []types.Game
}

func NewExplorer(game types.Game) *Explorer {
	return &Explorer{
		game:     game,
		branches: make([]types.Game, 0),
	}
}

// Interact runs the main interactive loop
func (e *Explorer) Interact() {
	fmt.Printf("%s", e.header())
	reader := bufio.NewReader(os.Stdin)
	if _, err := e.game.Reset(); err != nil {
		fmt.Printf("Failed to reset the game: %v\n", err)
		return
	}
	for {
		fmt.Printf("%s", e.prompt())

		optionS, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("Invalid input! Try again")
			continue
		}
		option, err := strconv.Atoi(strings.Replace(optionS, "\n", "", -1))
		if err != nil {
			fmt.Println("Invalid input! Try again")
			continue
		}
		fmt.Println("------------------------------------")
		switch option {
		case 1:
			fmt.Printf("%s", e.legalActions(false))
		case 2:
			fmt.Printf("%s", e.legalActions(true))
		case 3:
			fmt.Printf("Enter the action index: ")
			idxS, err := reader.ReadString('\n')
			if err != nil {
				fmt.Println("Invalid input! Try again")
				continue
			}
			idx, err := strconv.Atoi(strings.Replace(idxS, "\n", "", -1))
			if err != nil {
				fmt.Println("Invalid input! Not a number. Try again")
				continue
			}
			fmt.Printf("%s", e.step(types.DiscreteAction(idx), false))
		case 4:
			fmt.Printf("%s", e.sampleStep(true))
		case 5:
			frame, err := e.game.Render("human")
			if err != nil {
				fmt.Printf("Render failed: %v\n", err)
				continue
			}
			fmt.Printf("%s\n", frame)
		case 6:
			branch, err := e.game.Copy()
			if err != nil {
				fmt.Printf("Copy failed: %v\n", err)
				continue
			}
			e.branches = append(e.branches, branch)
			fmt.Printf("Created branch %d with seed %d\n", len(e.branches), branch.Seed())
		case 7:
			obs, err := e.game.Reset()
			if err != nil {
				fmt.Printf("Reset failed: %v\n", err)
				continue
			}
			fmt.Printf("Observation: %v\n", obs)
		case 8:
			fmt.Println("Quitting! Thank you")
			for _, b := range e.branches {
				b.Close()
			}
			e.game.Close()
			return
		default:
			fmt.Println("Wrong choice! Try again!")
		}
	}
}

func (e *Explorer) legalActions(simulation bool) string {
	actions, err := e.game.LegalActions(simulation)
	if err != nil {
		return fmt.Sprintf("No legal actions: %v\n", err)
	}
	hashes := make([]string, len(actions))
	for i, a := range actions {
		hashes[i] = a.Hash()
	}
	mode := "real"
	if simulation {
		mode = "simulation"
	}
	return fmt.Sprintf("Legal actions (%s): %s\n", mode, strings.Join(hashes, ", "))
}

func (e *Explorer) step(action types.Action, simulation bool) string {
	result, err := e.game.Step(action, simulation)
	if err != nil {
		return fmt.Sprintf("Step failed: %v\n", err)
	}
	return fmt.Sprintf("Observation: %v\nReward: %.4f\nDone: %v\n", result.Observation, result.Reward, result.Done)
}

func (e *Explorer) sampleStep(simulation bool) string {
	action, err := e.game.SampleAction(simulation)
	if err != nil {
		return fmt.Sprintf("Sampling failed: %v\n", err)
	}
	fmt.Printf("Sampled action: %s\n", action.Hash())
	return e.step(action, simulation)
}

func (e *Explorer) header() string {
	return `
Welcome to the game explorer!
	`
}

func (e *Explorer) prompt() string {
	return `
Please select an option:
1. Show legal actions (real mode)
2. Show legal actions (simulation mode)
3. Step with an action index (real mode)
4. Sample and step (simulation mode)
5. Render
6. Branch a copy
7. Reset
8. Quit
Option: `
}

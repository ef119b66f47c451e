package main

import (
	"fmt"

	"github.com/zeu5/mcts-sim/benchmarks"
)

// main entry point to all the benchmarks
func main() {
	rootCommand := benchmarks.GetRootCommand()
	if err := rootCommand.Execute(); err != nil {
		fmt.Println(err)
	}
}

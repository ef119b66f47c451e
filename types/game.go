package types

// StepResult is what a game reports after a step: the new observation, the
// reward collected and whether the episode ended. For macro actions the
// reward is the mean over the primitives actually executed
type StepResult struct {
	Observation Observation
	Reward      float64
	Done        bool
}

// Game is the simulation facing interface consumed by a tree search planner.
// It provides a forward simulator with deep copies of the game state for
// branching and seeded action sampling for exploration.
//
// Every operation takes a simulation flag. The flag is true during planner
// rollouts and false on the canonical trajectory, which lets a game behave
// differently during planning (e.g. coarser time discretization through
// macro actions) behind a single API
type Game interface {
	// LegalActions returns the planning level choices. Used in tree expansion.
	// In simulation mode macro action games return indices into their macro
	// action table, otherwise the primitive action space. For continuous
	// games the result is the [low, high] bounds pair, not an enumerable set
	LegalActions(simulation bool) ([]Action, error)
	// SampleAction draws one legal action for exploration. Used in roll outs.
	// All randomness comes from the game's own seeded generator
	SampleAction(simulation bool) (Action, error)
	// Reset reinitializes the environment and returns the new initial state
	Reset() (Observation, error)
	// ResetWithSeed reseeds the game first, then resets
	ResetWithSeed(seed int64) (Observation, error)
	// Step advances the game by one planning level action
	Step(action Action, simulation bool) (StepResult, error)
	// Render produces a frame without disturbing the game state
	Render(mode string) (Frame, error)
	// Copy returns a value independent copy, reseeded with a fresh draw from
	// this game's generator. Copies may be stepped, discarded and interleaved
	// freely without affecting each other or the original
	Copy() (Game, error)
	// Seed returns the seed governing this game's generator
	Seed() int64
	// SetSeed stores the seed and reseeds the generator atomically
	SetSeed(seed int64)
	// Close releases the game and its render shadow copy
	Close() error
}

package game

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/zeu5/mcts-sim/types"
)

// baseGame holds the pieces shared by every game variant: the environment
// adapter, the action policy, the seeded generator and the render shadow
// copy. Variants embed it and only differ in how they interpret planning
// level actions
type baseGame struct {
	adapter    *Adapter
	policy     actionPolicy
	seed       int64
	rng        *rand.Rand
	renderCopy types.Game
}

func newBaseGame(adapter *Adapter, policy actionPolicy, seed int64) baseGame {
	return baseGame{
		adapter: adapter,
		policy:  policy,
		seed:    seed,
		rng:     rand.New(rand.NewSource(uint64(seed))),
	}
}

func (b *baseGame) Seed() int64 {
	return b.seed
}

// SetSeed stores the seed and reseeds the generator together, there is no
// state where the two disagree
func (b *baseGame) SetSeed(seed int64) {
	b.seed = seed
	b.rng = rand.New(rand.NewSource(uint64(seed)))
}

// Reset passes the stored seed to the environment, so consecutive resets
// without an intervening SetSeed replay the same initial state. Callers that
// want a fresh start per episode reseed first, e.g. via ResetWithSeed
func (b *baseGame) Reset() (types.Observation, error) {
	return b.adapter.Reset(b.seed)
}

func (b *baseGame) ResetWithSeed(seed int64) (types.Observation, error) {
	b.SetSeed(seed)
	return b.Reset()
}

// childSeed draws the seed for a copy from this game's own generator, which
// gives branches distinct but reproducible-given-the-seed-chain randomness
func (b *baseGame) childSeed() int64 {
	return b.rng.Int63()
}

func (b *baseGame) frame(mode string) (types.Frame, error) {
	return b.adapter.Render(mode)
}

// renderShadow produces a frame on a fresh disposable copy. Producing a
// frame may be destructive to the environment, so it never happens on the
// canonical state. The previous shadow copy is released on every call
func (b *baseGame) renderShadow(mode string, mk func() (types.Game, error)) (types.Frame, error) {
	if b.adapter.closed {
		return "", types.ErrEnvironmentClosed
	}
	if b.renderCopy != nil {
		b.renderCopy.Close()
		b.renderCopy = nil
	}
	shadow, err := mk()
	if err != nil {
		return "", err
	}
	b.renderCopy = shadow
	f, ok := shadow.(interface {
		frame(mode string) (types.Frame, error)
	})
	if !ok {
		return "", fmt.Errorf("shadow copy cannot render")
	}
	return f.frame(mode)
}

func (b *baseGame) Close() error {
	if b.renderCopy != nil {
		b.renderCopy.Close()
		b.renderCopy = nil
	}
	return b.adapter.Close()
}

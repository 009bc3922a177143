package agent

import (
	"golang.org/x/exp/rand"

	"github.com/scottostler/tactician/game"
	"github.com/scottostler/tactician/searcher"
)

// Random plays the rollout policy directly: a floor opponent for
// calibration runs.
type Random struct {
	policy searcher.UniformRandom
	rng    *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (*Random) Name() string { return "Random" }

func (r *Random) ChooseMove(s *game.State) (game.Move, searcher.SearchMetric) {
	moves := s.LegalMoves()
	if len(moves) == 0 {
		panic(game.InvariantViolation{Detail: "random agent asked to move with no legal moves"})
	}
	return r.policy.Choose(s, moves, r.rng), searcher.SearchMetric{}
}

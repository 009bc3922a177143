package searcher

import (
	"golang.org/x/exp/rand"

	"github.com/scottostler/tactician/game"
)

// Policy chooses rollout moves. Implementations must be pure functions of
// (state, moves, rng) so that fixed seeds replay identically.
type Policy interface {
	Choose(s *game.State, moves []game.Move, rng *rand.Rand) game.Move
}

// UniformRandom picks uniformly among legal moves, with one bias: in the
// buy phase it never ends the phase while a buy remains for a
// nonzero-cost pile, so random playouts do not waste obvious spending
// power.
type UniformRandom struct{}

func (UniformRandom) Choose(s *game.State, moves []game.Move, rng *rand.Rand) game.Move {
	candidates := moves
	if s.Phase == game.PhaseBuy && s.Pending == nil && hasValuableBuy(moves) {
		candidates = withoutEndPhase(moves)
	}
	return candidates[rng.Intn(len(candidates))]
}

func hasValuableBuy(moves []game.Move) bool {
	for _, m := range moves {
		if m.Kind == game.MoveBuy && game.Lookup(m.Card).Cost > 0 {
			return true
		}
	}
	return false
}

func withoutEndPhase(moves []game.Move) []game.Move {
	out := make([]game.Move, 0, len(moves))
	for _, m := range moves {
		if m.Kind != game.MoveEndPhase {
			out = append(out, m)
		}
	}
	return out
}

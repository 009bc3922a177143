package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/scottostler/tactician/game"
)

func buyPhaseState(t *testing.T, coins int) *game.State {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	s := game.NewGame(game.FirstGameKingdom(), []string{"Alice", "Bob"}, rng)
	s.Phase = game.PhaseBuy
	s.Actions = 0
	s.Coins = coins
	return s
}

func TestUniformRandom(t *testing.T) {
	policy := UniformRandom{}
	rng := rand.New(rand.NewSource(1))

	t.Run("never ends the buy phase while a real buy remains", func(t *testing.T) {
		s := buyPhaseState(t, 5)
		moves := s.LegalMoves()
		require.True(t, len(moves) > 1)

		for i := 0; i < 200; i++ {
			move := policy.Choose(s, moves, rng)
			require.NotEqual(t, game.MoveEndPhase, move.Kind,
				"Random playouts should not waste spending power")
		}
	})

	t.Run("ends the phase when nothing is worth buying", func(t *testing.T) {
		s := buyPhaseState(t, 0)
		s.Players[0].Hand = nil // no treasures to play either

		moves := s.LegalMoves()
		require.Equal(t, []game.Move{game.EndPhase()}, moves)
		require.Equal(t, game.EndPhase(), policy.Choose(s, moves, rng))
	})

	t.Run("uniform outside the buy phase", func(t *testing.T) {
		rng := rand.New(rand.NewSource(2))
		s := game.NewGame(game.FirstGameKingdom(), []string{"Alice", "Bob"}, rng)
		s.Players[0].Hand = []game.CardID{game.MustCard("Smithy")}

		moves := s.LegalMoves()
		seen := map[string]bool{}
		for i := 0; i < 200; i++ {
			seen[policy.Choose(s, moves, rng).String()] = true
		}
		require.Len(t, seen, len(moves), "Every action-phase move should be sampled")
	})
}

package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/scottostler/tactician/game"
)

func TestNode(t *testing.T) {
	t.Run("root starts with every legal move untried", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		s := game.NewGame(game.FirstGameKingdom(), []string{"Alice", "Bob"}, rng)
		moves := []game.Move{game.EndPhase(), game.Buy(game.MustCard("Silver"))}

		root := newRoot(s, moves)
		require.Equal(t, -1, root.player, "No move leads to the root")
		require.Same(t, s, root.state, "The root owns the state it was built with")
		require.Equal(t, moves, root.untried)
		require.Empty(t, root.children)
	})

	t.Run("uct balances mean reward and visit count", func(t *testing.T) {
		exploited := &node{rewards: 9, visits: 10}
		neglected := &node{rewards: 0, visits: 1}

		// With little exploration the high-mean child scores higher; with a
		// large bonus the rarely visited child overtakes it.
		require.Greater(t, exploited.uct(0.1), neglected.uct(0.1))
		require.Greater(t, neglected.uct(100), exploited.uct(100))
	})

	t.Run("uct panics on an unvisited node", func(t *testing.T) {
		require.Panics(t, func() { (&node{}).uct(1) })
	})

	t.Run("bestChild picks the max UCT child", func(t *testing.T) {
		strong := &node{rewards: 8, visits: 10}
		weak := &node{rewards: 1, visits: 10}
		parent := &node{visits: 20, children: []*node{weak, strong}}

		require.Same(t, strong, parent.bestChild(2.0))
	})
}

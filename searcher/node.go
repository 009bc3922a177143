package searcher

import (
	"math"

	"github.com/scottostler/tactician/game"
)

// node is one search-tree position. It stores the move that led here, the
// player who made that move, accumulated statistics, and its own cloned
// state. Draws reshuffle stochastically, so a state reached through the
// same moves can differ between iterations; caching the state at
// expansion time keeps every move recorded against the node legal in the
// node's own determinization.
type node struct {
	parent   *node
	move     game.Move
	player   int // player who made move; -1 at the root
	state    *game.State
	untried  []game.Move
	children []*node
	rewards  float64
	visits   int
}

func newRoot(state *game.State, moves []game.Move) *node {
	return &node{
		player:  -1,
		state:   state,
		untried: append([]game.Move(nil), moves...),
	}
}

func (n *node) mean() float64 {
	return n.rewards / float64(n.visits)
}

// uct scores the node for selection. normalizer is C² · ln(parent visits).
func (n *node) uct(normalizer float64) float64 {
	if n.visits == 0 {
		panic("cannot compute UCT: 0 visits")
	}
	return n.mean() + math.Sqrt(normalizer/float64(n.visits))
}

// bestChild picks the child maximizing UCT. Only called on fully expanded
// nodes, so every child has at least one visit.
func (n *node) bestChild(cSquared float64) *node {
	if n.visits == 0 {
		panic("node has children but no visits")
	}
	normalizer := cSquared * math.Log(float64(n.visits))

	var best *node
	bestScore := math.Inf(-1)
	for _, child := range n.children {
		if score := child.uct(normalizer); score > bestScore {
			bestScore = score
			best = child
		}
	}
	return best
}

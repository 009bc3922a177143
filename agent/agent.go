package agent

import (
	"github.com/scottostler/tactician/game"
	"github.com/scottostler/tactician/searcher"
)

// Decider picks one move at each decision point of a real game.
type Decider interface {
	Name() string
	// ChooseMove returns the chosen move and search metrics when the
	// decider ran a search (zero value otherwise).
	ChooseMove(s *game.State) (game.Move, searcher.SearchMetric)
}

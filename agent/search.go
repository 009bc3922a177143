package agent

import (
	"github.com/scottostler/tactician/game"
	"github.com/scottostler/tactician/searcher"
)

// Search backs its decisions with an MCTS searcher. It answers
// play-all-treasures decisions directly so the search budget goes to
// choices that matter.
type Search struct {
	mcts *searcher.MCTS
}

func NewSearch(mcts *searcher.MCTS) *Search {
	return &Search{mcts: mcts}
}

func (*Search) Name() string { return "Tactician" }

func (a *Search) ChooseMove(s *game.State) (game.Move, searcher.SearchMetric) {
	if move, ok := hardCodedMove(s); ok {
		return move, searcher.SearchMetric{}
	}
	return a.mcts.FindMove(s)
}

// hardCodedMove short-circuits decisions with a single sensible answer:
// playing a treasure is never wrong in this kingdom.
func hardCodedMove(s *game.State) (game.Move, bool) {
	if s.Pending != nil || s.Phase != game.PhaseBuy {
		return game.Move{}, false
	}
	for _, c := range s.Players[s.Active].Hand {
		if game.Lookup(c).IsTreasure() {
			return game.PlayTreasure(c), true
		}
	}
	return game.Move{}, false
}

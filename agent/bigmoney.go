package agent

import (
	"sort"

	"github.com/scottostler/tactician/game"
	"github.com/scottostler/tactician/searcher"
)

// BigMoney is the classic baseline: play every treasure, buy the best of
// Province/Gold/Silver it can afford, never buy or play actions. Under a
// forced discard it sheds its lowest-value cards.
type BigMoney struct{}

func (BigMoney) Name() string { return "Big Money" }

func (b BigMoney) ChooseMove(s *game.State) (game.Move, searcher.SearchMetric) {
	return b.choose(s), searcher.SearchMetric{}
}

func (b BigMoney) choose(s *game.State) game.Move {
	if d := s.Pending; d != nil {
		return b.decide(s, d)
	}

	switch s.Phase {
	case game.PhaseAction:
		return game.EndPhase()
	case game.PhaseBuy:
		hand := s.Players[s.Active].Hand
		for _, c := range hand {
			if game.Lookup(c).IsTreasure() {
				return game.PlayTreasure(c)
			}
		}
		for _, name := range []string{"Province", "Gold", "Silver"} {
			id := game.MustCard(name)
			if s.Coins >= game.Lookup(id).Cost && s.Supply[id] > 0 {
				return game.Buy(id)
			}
		}
		return game.EndPhase()
	default:
		return game.EndPhase()
	}
}

func (b BigMoney) decide(s *game.State, d *game.Decision) game.Move {
	switch d.Type {
	case game.DecideDiscardDownTo:
		return game.DiscardChoice(cheapestCards(d.Choices, d.Count))
	case game.DecideDiscardForDraw:
		return game.DiscardChoice(nil)
	case game.DecideReaction:
		// Reveal a reaction whenever one is offered.
		return game.Reveal(d.Choices[0])
	default:
		// Big Money never plays cards that trash or gain; fall back to
		// the first legal move if an opponent's effect forces one.
		moves := s.LegalMoves()
		return moves[0]
	}
}

// cheapestCards picks n cards worth the least when held: lowest coin
// value first, then lowest cost.
func cheapestCards(cards []game.CardID, n int) []game.CardID {
	sorted := append([]game.CardID(nil), cards...)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := game.Lookup(sorted[i]), game.Lookup(sorted[j])
		if a.CoinValue != b.CoinValue {
			return a.CoinValue < b.CoinValue
		}
		return a.Cost < b.Cost
	})
	return sorted[:n]
}

package game

// IsTerminal reports whether the game is over: the Province pile is empty
// or at least three supply piles are empty.
func (s *State) IsTerminal() bool {
	if s.Supply[MustCard("Province")] == 0 {
		return true
	}
	empty := 0
	for _, n := range s.Supply {
		if n == 0 {
			empty++
			if empty >= EmptyPilesForGameEnd {
				return true
			}
		}
	}
	return false
}

// Score returns the player's victory points across every owned zone.
// Curses subtract.
func (s *State) Score(player int) int {
	return ScoreCards(s.Players[player].AllCards())
}

// TurnsTaken counts completed turns for tie-breaking: players up to and
// including the active player have had the current turn.
func (s *State) TurnsTaken(player int) int {
	if player <= s.Active {
		return s.Turn
	}
	return s.Turn - 1
}

// Winners returns the players with the best (score, fewer turns) result.
// More than one index means a tie.
func (s *State) Winners() []int {
	best := []int{0}
	for i := 1; i < len(s.Players); i++ {
		switch cmp := compareResults(s.Score(i), s.TurnsTaken(i), s.Score(best[0]), s.TurnsTaken(best[0])); {
		case cmp > 0:
			best = []int{i}
		case cmp == 0:
			best = append(best, i)
		}
	}
	return best
}

func compareResults(score, turns, otherScore, otherTurns int) int {
	if score != otherScore {
		return score - otherScore
	}
	// Equal scores: fewer turns taken wins.
	return otherTurns - turns
}

// Outcomes returns each player's reward for a finished game: 1 for the
// winner, 0 for a loss, and an even split for ties.
func (s *State) Outcomes() []float64 {
	invariant(s.IsTerminal(), "outcomes requested for unfinished game")
	out := make([]float64, len(s.Players))
	winners := s.Winners()
	share := 1.0 / float64(len(winners))
	for _, w := range winners {
		out[w] = share
	}
	return out
}

package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsTerminal(t *testing.T) {
	t.Run("fresh game is live", func(t *testing.T) {
		require.False(t, newTestGame(t, 1).IsTerminal())
	})

	t.Run("empty province pile ends the game", func(t *testing.T) {
		s := newTestGame(t, 1)
		s.Supply[MustCard("Province")] = 0
		require.True(t, s.IsTerminal())
	})

	t.Run("three empty piles end the game", func(t *testing.T) {
		s := newTestGame(t, 1)
		s.Supply[MustCard("Curse")] = 0
		s.Supply[MustCard("Moat")] = 0
		require.False(t, s.IsTerminal(), "Two empty piles are not enough")

		s.Supply[MustCard("Cellar")] = 0
		require.True(t, s.IsTerminal())
	})
}

func TestScore(t *testing.T) {
	s := newTestGame(t, 1)
	require.Equal(t, 3, s.Score(0), "3 starting Estates are worth 3 points")

	s.Players[0].Discard = append(s.Players[0].Discard, MustCard("Province"), MustCard("Curse"))
	require.Equal(t, 3+6-1, s.Score(0), "Points count across zones; Curse subtracts")
}

func TestWinners(t *testing.T) {
	province := MustCard("Province")

	t.Run("higher score wins", func(t *testing.T) {
		s := newTestGame(t, 1)
		s.Players[1].Discard = append(s.Players[1].Discard, province)
		require.Equal(t, []int{1}, s.Winners())
	})

	t.Run("equal scores with equal turns tie", func(t *testing.T) {
		s := newTestGame(t, 1)
		s.Active = 1 // both players have had the current turn
		require.Equal(t, []int{0, 1}, s.Winners())
	})

	t.Run("equal scores break on fewer turns taken", func(t *testing.T) {
		s := newTestGame(t, 1)
		// Player 0 is mid-turn, so player 1 has had one turn fewer.
		require.Equal(t, 1, s.TurnsTaken(0))
		require.Equal(t, 0, s.TurnsTaken(1))
		require.Equal(t, []int{1}, s.Winners(),
			"Equal points with fewer turns is the stronger result")
	})
}

func TestOutcomes(t *testing.T) {
	province := MustCard("Province")

	t.Run("winner takes the full reward", func(t *testing.T) {
		s := newTestGame(t, 1)
		s.Supply[province] = 0
		s.Players[0].Discard = append(s.Players[0].Discard, province)
		require.Equal(t, []float64{1, 0}, s.Outcomes())
	})

	t.Run("ties split the reward", func(t *testing.T) {
		s := newTestGame(t, 1)
		s.Supply[province] = 0
		s.Active = 1 // both players have now taken s.Turn turns
		require.Equal(t, []float64{0.5, 0.5}, s.Outcomes())
	})

	t.Run("panics on a live game", func(t *testing.T) {
		s := newTestGame(t, 1)
		require.Panics(t, func() { s.Outcomes() })
	})
}

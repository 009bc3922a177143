package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newTestGame(t *testing.T, seed uint64) *State {
	t.Helper()
	return NewGame(FirstGameKingdom(), []string{"Alice", "Bob"}, rand.New(rand.NewSource(seed)))
}

func TestNewGame(t *testing.T) {
	s := newTestGame(t, 1)

	t.Run("turn state", func(t *testing.T) {
		require.Equal(t, 1, s.Turn)
		require.Equal(t, 0, s.Active)
		require.Equal(t, PhaseAction, s.Phase)
		require.Equal(t, 1, s.Actions)
		require.Equal(t, 1, s.Buys)
		require.Equal(t, 0, s.Coins)
	})

	t.Run("two-player supply", func(t *testing.T) {
		require.Equal(t, 8, s.Supply[MustCard("Province")])
		require.Equal(t, 8, s.Supply[MustCard("Duchy")])
		require.Equal(t, 8, s.Supply[MustCard("Estate")])
		require.Equal(t, 30, s.Supply[MustCard("Gold")])
		require.Equal(t, 40, s.Supply[MustCard("Silver")])
		require.Equal(t, 46, s.Supply[MustCard("Copper")])
		require.Equal(t, 10, s.Supply[MustCard("Curse")])
		for _, id := range FirstGameKingdom() {
			require.Equal(t, 10, s.Supply[id], "Kingdom pile %s should start at 10", Lookup(id).Name)
		}
	})

	t.Run("starting decks", func(t *testing.T) {
		copper := MustCard("Copper")
		estate := MustCard("Estate")
		for i, p := range s.Players {
			require.Len(t, p.Hand, HandSize, "Player %d should draw an opening hand", i)
			require.Len(t, p.Deck, 5, "Player %d should have 5 cards left in deck", i)
			require.Empty(t, p.Discard, "The opening shuffle should consume the discard")
			require.Empty(t, p.InPlay)

			counts := map[CardID]int{}
			for _, c := range p.AllCards() {
				counts[c]++
			}
			require.Equal(t, map[CardID]int{copper: 7, estate: 3}, counts,
				"Player %d should own exactly 7 Copper and 3 Estate", i)
		}
	})

	t.Run("requires two players", func(t *testing.T) {
		require.Panics(t, func() {
			NewGame(FirstGameKingdom(), []string{"solo"}, rand.New(rand.NewSource(1)))
		})
	})
}

func TestDraw(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	copper := MustCard("Copper")
	estate := MustCard("Estate")

	t.Run("draws from the top of the deck", func(t *testing.T) {
		p := PlayerState{Deck: []CardID{copper, copper, estate}}
		drawn := p.draw(2, rng)
		require.Equal(t, 2, drawn)
		require.Equal(t, []CardID{estate, copper}, p.Hand, "Top of deck is the end of the slice")
		require.Equal(t, []CardID{copper}, p.Deck)
	})

	t.Run("shuffles the discard when the deck runs dry", func(t *testing.T) {
		p := PlayerState{Deck: []CardID{copper}, Discard: []CardID{estate, estate, copper}}
		drawn := p.draw(3, rng)
		require.Equal(t, 3, drawn)
		require.Len(t, p.Hand, 3)
		require.Empty(t, p.Discard)
		require.Len(t, p.Deck, 1)
	})

	t.Run("short-draws when both piles are empty", func(t *testing.T) {
		p := PlayerState{Deck: []CardID{copper}}
		drawn := p.draw(5, rng)
		require.Equal(t, 1, drawn, "Drawing stops when deck and discard are both empty")
		require.Equal(t, []CardID{copper}, p.Hand)
	})
}

func TestClone(t *testing.T) {
	s := newTestGame(t, 3)
	s.Pending = &Decision{Player: 1, Type: DecideDiscardDownTo, Choices: s.Players[1].Hand, Count: 2}
	s.effects = append(s.effects, queuedEffect{player: 0, effect: &Effect{PlusCoins: 2}})

	c := s.Clone()
	require.Equal(t, s.Hash(), c.Hash(), "Clone should be indistinguishable from the original")

	// Mutating the clone must not leak into the original.
	c.Supply[MustCard("Province")]--
	c.Players[0].Hand[0] = MustCard("Gold")
	c.Pending.Choices[0] = MustCard("Gold")
	c.Coins = 99

	require.Equal(t, 8, s.Supply[MustCard("Province")])
	require.NotEqual(t, MustCard("Gold"), s.Players[0].Hand[0])
	require.NotEqual(t, MustCard("Gold"), s.Pending.Choices[0])
	require.Equal(t, 0, s.Coins)
}

func TestHash(t *testing.T) {
	t.Run("same seed yields the same state", func(t *testing.T) {
		a := newTestGame(t, 42)
		b := newTestGame(t, 42)
		require.Equal(t, a.Hash(), b.Hash())
	})

	t.Run("different seeds yield different deals", func(t *testing.T) {
		a := newTestGame(t, 42)
		b := newTestGame(t, 43)
		require.NotEqual(t, a.Hash(), b.Hash())
	})

	t.Run("hash tracks mutation", func(t *testing.T) {
		s := newTestGame(t, 42)
		before := s.Hash()
		s.Coins++
		require.NotEqual(t, before, s.Hash())
	})

	t.Run("hash covers queued effect content", func(t *testing.T) {
		a := newTestGame(t, 42)
		b := newTestGame(t, 42)
		a.effects = append(a.effects, queuedEffect{player: 1, attackID: 1, effect: &Effect{PlusCoins: 2}})
		b.effects = append(b.effects, queuedEffect{player: 1, attackID: 1, effect: &Effect{DrawCards: 2}})
		require.NotEqual(t, a.Hash(), b.Hash(),
			"States differing only in what a queued effect does must hash apart")
	})

	t.Run("hash covers decision details", func(t *testing.T) {
		a := newTestGame(t, 42)
		b := newTestGame(t, 42)
		moat := MustCard("Moat")
		a.Pending = &Decision{Player: 1, Type: DecideReaction, Choices: []CardID{moat}, AttackID: 1}
		b.Pending = &Decision{Player: 1, Type: DecideReaction, Choices: []CardID{moat}, AttackID: 2}
		require.NotEqual(t, a.Hash(), b.Hash(), "The attack instance is part of the decision")

		mine := Lookup(MustCard("Mine"))
		a.Pending = &Decision{Player: 0, Type: DecideTrash, Choices: []CardID{MustCard("Copper")}, Trash: mine.Effects[0].Trash}
		b.Pending = &Decision{Player: 0, Type: DecideTrash, Choices: []CardID{MustCard("Copper")}}
		require.NotEqual(t, a.Hash(), b.Hash(), "The trash followup is part of the decision")
	})
}

func TestDecisionPlayer(t *testing.T) {
	s := newTestGame(t, 1)
	require.Equal(t, 0, s.DecisionPlayer(), "Active player decides when nothing is pending")

	s.Pending = &Decision{Player: 1, Type: DecideDiscardDownTo, Count: 2}
	require.Equal(t, 1, s.DecisionPlayer(), "Pending decision hands control to its owner")
}

package game

import (
	"fmt"
	"sort"
)

type MoveKind int

const (
	MovePlayAction MoveKind = iota
	MovePlayTreasure
	MoveBuy
	MoveEndPhase
	MoveDiscard
	MoveTrash
	MoveGain
	MoveReveal
	MoveDecline
)

// Move is a value type naming one choice at a decision point. Card is set
// for single-card moves; Cards (kept sorted) carries discard sets. Moves
// never alias game state.
type Move struct {
	Kind  MoveKind
	Card  CardID
	Cards []CardID
}

func PlayAction(c CardID) Move   { return Move{Kind: MovePlayAction, Card: c} }
func PlayTreasure(c CardID) Move { return Move{Kind: MovePlayTreasure, Card: c} }
func Buy(c CardID) Move          { return Move{Kind: MoveBuy, Card: c} }
func EndPhase() Move             { return Move{Kind: MoveEndPhase, Card: NoCard} }
func TrashChoice(c CardID) Move  { return Move{Kind: MoveTrash, Card: c} }
func GainChoice(c CardID) Move   { return Move{Kind: MoveGain, Card: c} }
func Reveal(c CardID) Move       { return Move{Kind: MoveReveal, Card: c} }
func Decline() Move              { return Move{Kind: MoveDecline, Card: NoCard} }

// DiscardChoice canonicalizes the set so equal choices compare equal.
func DiscardChoice(cards []CardID) Move {
	sorted := make([]CardID, len(cards))
	copy(sorted, cards)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return Move{Kind: MoveDiscard, Card: NoCard, Cards: sorted}
}

func (m Move) Equal(o Move) bool {
	if m.Kind != o.Kind || m.Card != o.Card || len(m.Cards) != len(o.Cards) {
		return false
	}
	for i := range m.Cards {
		if m.Cards[i] != o.Cards[i] {
			return false
		}
	}
	return true
}

func (m Move) String() string {
	switch m.Kind {
	case MovePlayAction:
		return fmt.Sprintf("play %s", Lookup(m.Card).Name)
	case MovePlayTreasure:
		return fmt.Sprintf("play %s", Lookup(m.Card).Name)
	case MoveBuy:
		return fmt.Sprintf("buy %s", Lookup(m.Card).Name)
	case MoveEndPhase:
		return "end phase"
	case MoveDiscard:
		if len(m.Cards) == 0 {
			return "discard nothing"
		}
		return fmt.Sprintf("discard %s", CardNames(m.Cards))
	case MoveTrash:
		return fmt.Sprintf("trash %s", Lookup(m.Card).Name)
	case MoveGain:
		return fmt.Sprintf("gain %s", Lookup(m.Card).Name)
	case MoveReveal:
		return fmt.Sprintf("reveal %s", Lookup(m.Card).Name)
	case MoveDecline:
		return "decline"
	default:
		return fmt.Sprintf("unknown move %d", m.Kind)
	}
}

package game

import "strings"

// CardID identifies a card in the catalog. IDs are assigned from catalog
// order, so iterating cards by ID is deterministic across runs.
type CardID int

const NoCard CardID = -1

type CardType uint8

const (
	TypeAction CardType = 1 << iota
	TypeTreasure
	TypeVictory
	TypeCurse
	TypeAttack
	TypeReaction
)

// GainDest says where a gained card goes.
type GainDest int

const (
	GainToDiscard GainDest = iota
	GainToHand
)

// Effect is one step of a card's resolution. Exactly one field is set per
// effect; a card resolves its effects in order.
type Effect struct {
	DrawCards          int
	PlusActions        int
	PlusBuys           int
	PlusCoins          int
	OpponentsDiscardTo int
	GainUpTo           int
	Trash              *TrashEffect
	DiscardForDraw     bool
}

// TrashEffect forces the player to trash a card from hand, optionally
// restricted by type and optionally followed by gaining a replacement.
type TrashEffect struct {
	Filter   CardType // zero means any card
	Followup *GainFollowup
}

// GainFollowup describes the gain granted after a trash, priced relative
// to the trashed card (Remodel, Mine).
type GainFollowup struct {
	PlusCost int
	Filter   CardType
	Dest     GainDest
}

// Card is immutable catalog data, shared by ID across all game states.
type Card struct {
	ID        CardID
	Name      string
	Cost      int
	Types     CardType
	CoinValue int // treasure value when played
	VP        int // victory points at game end (negative for Curse)
	Effects   []Effect
	Immunity  bool // reaction grants attack immunity (Moat)
}

func (c *Card) Is(t CardType) bool { return c.Types&t != 0 }

func (c *Card) IsAction() bool   { return c.Is(TypeAction) }
func (c *Card) IsTreasure() bool { return c.Is(TypeTreasure) }
func (c *Card) IsAttack() bool   { return c.Is(TypeAttack) }
func (c *Card) IsReaction() bool { return c.Is(TypeReaction) }

// ScoreCards sums the victory points of the given cards.
func ScoreCards(ids []CardID) int {
	total := 0
	for _, id := range ids {
		total += Lookup(id).VP
	}
	return total
}

// CardNames renders a card list for logging.
func CardNames(ids []CardID) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = Lookup(id).Name
	}
	return strings.Join(names, ", ")
}

package game

import (
	"encoding/binary"
	"hash/fnv"

	"golang.org/x/exp/rand"

	"github.com/scottostler/tactician/utils"
)

const (
	HandSize             = 5
	EmptyPilesForGameEnd = 3
)

type Phase int

const (
	PhaseAction Phase = iota
	PhaseBuy
)

// PlayerState holds one player's four zones. The deck is a stack whose top
// is the end of the slice.
type PlayerState struct {
	Name    string
	Deck    []CardID
	Hand    []CardID
	Discard []CardID
	InPlay  []CardID
}

// AllCards returns every card the player owns, across all zones.
func (p *PlayerState) AllCards() []CardID {
	all := make([]CardID, 0, len(p.Deck)+len(p.Hand)+len(p.Discard)+len(p.InPlay))
	all = append(all, p.Deck...)
	all = append(all, p.Hand...)
	all = append(all, p.Discard...)
	all = append(all, p.InPlay...)
	return all
}

// draw moves up to n cards from deck to hand, shuffling the discard into a
// new deck when the deck runs dry. Drawing from two empty piles yields
// nothing. Returns the number of cards actually drawn.
func (p *PlayerState) draw(n int, rng *rand.Rand) int {
	drawn := 0
	for ; drawn < n; drawn++ {
		if len(p.Deck) == 0 {
			if len(p.Discard) == 0 {
				break
			}
			p.Deck = p.Discard
			p.Discard = nil
			rng.Shuffle(len(p.Deck), func(i, j int) {
				p.Deck[i], p.Deck[j] = p.Deck[j], p.Deck[i]
			})
		}
		top := len(p.Deck) - 1
		p.Hand = append(p.Hand, p.Deck[top])
		p.Deck = p.Deck[:top]
	}
	return drawn
}

func (p *PlayerState) clone() PlayerState {
	c := PlayerState{Name: p.Name}
	c.Deck = append([]CardID(nil), p.Deck...)
	c.Hand = append([]CardID(nil), p.Hand...)
	c.Discard = append([]CardID(nil), p.Discard...)
	c.InPlay = append([]CardID(nil), p.InPlay...)
	return c
}

type DecisionType int

const (
	DecideDiscardDownTo DecisionType = iota
	DecideDiscardForDraw
	DecideTrash
	DecideGain
	DecideReaction
)

// Decision is the nested pending-decision state for multi-step card
// effects. While one is active, only moves matching its shape are legal.
type Decision struct {
	Player  int
	Type    DecisionType
	Choices []CardID

	Count    int           // DecideDiscardDownTo: exact number to discard
	Trash    *TrashEffect  // DecideTrash: filter and followup
	Gain     *GainFollowup // DecideGain: destination (cost bound is baked into Choices)
	AttackID int           // DecideReaction: attack instance to block
}

func (d *Decision) clone() *Decision {
	c := *d
	c.Choices = append([]CardID(nil), d.Choices...)
	return &c
}

// queuedEffect is one entry of the pending effect queue: either a card
// effect aimed at a player, or the option to reveal a reaction before an
// attack instance lands.
type queuedEffect struct {
	player      int
	attackID    int
	effect      *Effect
	reactOption bool
}

// State is the full mutable snapshot of a Dominion game.
type State struct {
	Turn    int
	Active  int
	Phase   Phase
	Actions int
	Buys    int
	Coins   int

	Supply  map[CardID]int
	Kingdom []CardID // supply enumeration order: base cards then kingdom
	Trash   []CardID
	Players []PlayerState

	Pending *Decision
	effects []queuedEffect

	// attackSeq numbers each attack play so a revealed Moat can strip
	// exactly the effects of that instance.
	attackSeq int
}

// NewGame seeds the supply for the kingdom and player count, deals each
// player 7 Copper and 3 Estate, and draws opening hands. Starting cards
// begin in the discard, so the first draw triggers a shuffle.
func NewGame(kingdom []CardID, names []string, rng *rand.Rand) *State {
	invariant(len(names) >= 2, "need at least two players, got %d", len(names))

	s := &State{
		Turn:    1,
		Active:  0,
		Phase:   PhaseAction,
		Actions: 1,
		Buys:    1,
		Coins:   0,
		Supply:  standardPiles(kingdom, len(names)),
		Kingdom: append(append([]CardID(nil), BaseCards()...), kingdom...),
	}

	copper := MustCard("Copper")
	estate := MustCard("Estate")
	for _, name := range names {
		p := PlayerState{Name: name}
		for i := 0; i < 7; i++ {
			p.Discard = append(p.Discard, copper)
		}
		for i := 0; i < 3; i++ {
			p.Discard = append(p.Discard, estate)
		}
		p.draw(HandSize, rng)
		s.Players = append(s.Players, p)
	}
	return s
}

// standardPiles builds supply counts per the base set rules: 8 copies of
// each victory pile for 2 players (12 for more), 10 per kingdom pile, and
// fixed treasure piles.
func standardPiles(kingdom []CardID, numPlayers int) map[CardID]int {
	vpCount := 8
	if numPlayers > 2 {
		vpCount = 12
	}
	piles := map[CardID]int{
		MustCard("Province"): vpCount,
		MustCard("Duchy"):    vpCount,
		MustCard("Estate"):   vpCount,
		MustCard("Gold"):     30,
		MustCard("Silver"):   40,
		MustCard("Copper"):   46,
		MustCard("Curse"):    (numPlayers - 1) * 10,
	}
	for _, id := range kingdom {
		piles[id] = 10
	}
	return piles
}

// Clone deep-copies the state. No mutable zone is shared with the
// original; cloning is the dominant cost of tree search.
func (s *State) Clone() *State {
	c := &State{
		Turn:      s.Turn,
		Active:    s.Active,
		Phase:     s.Phase,
		Actions:   s.Actions,
		Buys:      s.Buys,
		Coins:     s.Coins,
		Kingdom:   s.Kingdom, // fixed at game creation
		attackSeq: s.attackSeq,
	}
	c.Supply = make(map[CardID]int, len(s.Supply))
	for id, n := range s.Supply {
		c.Supply[id] = n
	}
	c.Trash = append([]CardID(nil), s.Trash...)
	c.Players = make([]PlayerState, len(s.Players))
	for i := range s.Players {
		c.Players[i] = s.Players[i].clone()
	}
	if s.Pending != nil {
		c.Pending = s.Pending.clone()
	}
	if len(s.effects) > 0 {
		c.effects = append([]queuedEffect(nil), s.effects...)
	}
	return c
}

// DecisionPlayer returns the player who owns the current decision point:
// the pending decision's player if one is active, else the active player.
func (s *State) DecisionPlayer() int {
	if s.Pending != nil {
		return s.Pending.Player
	}
	return s.Active
}

func (s *State) PlayerName(player int) string {
	return s.Players[player].Name
}

func (s *State) NumPlayers() int { return len(s.Players) }

// opponents returns the other players in turn order starting after player.
func (s *State) opponents(player int) []int {
	n := len(s.Players)
	out := make([]int, 0, n-1)
	for i := 1; i < n; i++ {
		out = append(out, (player+i)%n)
	}
	return out
}

func (s *State) hand(player int) []CardID {
	return s.Players[player].Hand
}

// removeFromHand moves one copy of card out of the player's hand.
func (s *State) removeFromHand(player int, card CardID) {
	hand, ok := utils.RemoveFirst(s.Players[player].Hand, card)
	invariant(ok, "%s has no %s in hand", s.PlayerName(player), Lookup(card).Name)
	s.Players[player].Hand = hand
}

// Hash folds the entire state into a 64-bit digest. Identical seeds and
// moves must produce identical hashes; tests use this for determinism.
func (s *State) Hash() uint64 {
	h := fnv.New64a()
	w := func(v int) {
		binary.Write(h, binary.LittleEndian, int64(v))
	}
	w(s.Turn)
	w(s.Active)
	w(int(s.Phase))
	w(s.Actions)
	w(s.Buys)
	w(s.Coins)
	w(s.attackSeq)
	for _, id := range s.Kingdom {
		w(int(id))
		w(s.Supply[id])
	}
	zones := func(cards []CardID) {
		w(len(cards))
		for _, id := range cards {
			w(int(id))
		}
	}
	zones(s.Trash)
	for i := range s.Players {
		p := &s.Players[i]
		zones(p.Deck)
		zones(p.Hand)
		zones(p.Discard)
		zones(p.InPlay)
	}
	b := func(v bool) {
		if v {
			w(1)
		} else {
			w(0)
		}
	}
	gain := func(g *GainFollowup) {
		b(g != nil)
		if g != nil {
			w(g.PlusCost)
			w(int(g.Filter))
			w(int(g.Dest))
		}
	}
	trash := func(t *TrashEffect) {
		b(t != nil)
		if t != nil {
			w(int(t.Filter))
			gain(t.Followup)
		}
	}
	if s.Pending != nil {
		w(s.Pending.Player)
		w(int(s.Pending.Type))
		w(s.Pending.Count)
		w(s.Pending.AttackID)
		zones(s.Pending.Choices)
		trash(s.Pending.Trash)
		gain(s.Pending.Gain)
	}
	for _, e := range s.effects {
		w(e.player)
		w(e.attackID)
		b(e.reactOption)
		b(e.effect != nil)
		if e.effect != nil {
			w(e.effect.DrawCards)
			w(e.effect.PlusActions)
			w(e.effect.PlusBuys)
			w(e.effect.PlusCoins)
			w(e.effect.OpponentsDiscardTo)
			w(e.effect.GainUpTo)
			b(e.effect.DiscardForDraw)
			trash(e.effect.Trash)
		}
	}
	return h.Sum64()
}

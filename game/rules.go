package game

import (
	"sort"

	"golang.org/x/exp/rand"

	"github.com/scottostler/tactician/utils"
)

// LegalMoves enumerates every move valid at the current decision point, in
// deterministic (catalog) order. A terminal state has no legal moves.
func (s *State) LegalMoves() []Move {
	if s.IsTerminal() {
		return nil
	}
	if s.Pending != nil {
		return s.decisionMoves(s.Pending)
	}

	switch s.Phase {
	case PhaseAction:
		var moves []Move
		if s.Actions > 0 {
			for _, c := range distinctCards(s.hand(s.Active), (*Card).IsAction) {
				moves = append(moves, PlayAction(c))
			}
		}
		return append(moves, EndPhase())
	case PhaseBuy:
		var moves []Move
		for _, c := range distinctCards(s.hand(s.Active), (*Card).IsTreasure) {
			moves = append(moves, PlayTreasure(c))
		}
		// A buy needs actual spending power: with 0 coins there are no
		// buy moves at all, even for cost-0 piles.
		if s.Buys > 0 && s.Coins > 0 {
			for _, c := range s.gainableCards(0, s.Coins, 0) {
				moves = append(moves, Buy(c))
			}
		}
		return append(moves, EndPhase())
	default:
		panic(InvariantViolation{Detail: "unknown phase"})
	}
}

func (s *State) decisionMoves(d *Decision) []Move {
	switch d.Type {
	case DecideDiscardDownTo:
		return discardMoves(d.Choices, d.Count, d.Count)
	case DecideDiscardForDraw:
		return discardMoves(d.Choices, 0, len(d.Choices))
	case DecideTrash:
		var moves []Move
		for _, c := range distinctSorted(d.Choices) {
			moves = append(moves, TrashChoice(c))
		}
		return moves
	case DecideGain:
		moves := make([]Move, 0, len(d.Choices))
		for _, c := range d.Choices {
			moves = append(moves, GainChoice(c))
		}
		return moves
	case DecideReaction:
		var moves []Move
		for _, c := range distinctSorted(d.Choices) {
			moves = append(moves, Reveal(c))
		}
		return append(moves, Decline())
	default:
		panic(InvariantViolation{Detail: "unknown decision type"})
	}
}

// discardMoves builds one move per distinct subset of cards with size in
// [min, max].
func discardMoves(cards []CardID, min, max int) []Move {
	var moves []Move
	for k := min; k <= max; k++ {
		for _, subset := range cardCombinations(cards, k) {
			moves = append(moves, DiscardChoice(subset))
		}
	}
	return moves
}

// cardCombinations returns the distinct k-card subsets of a multiset.
func cardCombinations(cards []CardID, k int) [][]CardID {
	sorted := append([]CardID(nil), cards...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var out [][]CardID
	var pick func(start int, chosen []CardID)
	pick = func(start int, chosen []CardID) {
		if len(chosen) == k {
			out = append(out, append([]CardID(nil), chosen...))
			return
		}
		for i := start; i < len(sorted); i++ {
			if i > start && sorted[i] == sorted[i-1] {
				continue // skip duplicate branches
			}
			pick(i+1, append(chosen, sorted[i]))
		}
	}
	pick(0, nil)
	return out
}

// distinctCards returns the distinct hand cards matching pred, sorted by
// catalog ID.
func distinctCards(hand []CardID, pred func(*Card) bool) []CardID {
	var out []CardID
	seen := make(map[CardID]bool, len(hand))
	for _, c := range hand {
		if !seen[c] && pred(Lookup(c)) {
			seen[c] = true
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func distinctSorted(cards []CardID) []CardID {
	return distinctCards(cards, func(*Card) bool { return true })
}

// gainableCards lists non-empty supply piles with cost in [minCost,
// maxCost], optionally restricted by type, in supply enumeration order.
func (s *State) gainableCards(minCost, maxCost int, filter CardType) []CardID {
	var out []CardID
	for _, id := range s.Kingdom {
		if s.Supply[id] <= 0 {
			continue
		}
		c := Lookup(id)
		if c.Cost < minCost || c.Cost > maxCost {
			continue
		}
		if filter != 0 && !c.Is(filter) {
			continue
		}
		out = append(out, id)
	}
	return out
}

// Apply validates the move against LegalMoves and applies its full effect,
// draining any follow-on card effects until the next decision point. The
// rng drives shuffles triggered by drawing.
func (s *State) Apply(move Move, rng *rand.Rand) error {
	if !s.isLegal(move) {
		return &IllegalMoveError{Move: move, Reason: "not in legal moves for current decision point"}
	}
	s.apply(move, rng)
	return nil
}

func (s *State) isLegal(move Move) bool {
	for _, m := range s.LegalMoves() {
		if m.Equal(move) {
			return true
		}
	}
	return false
}

// apply trusts that move is legal.
func (s *State) apply(move Move, rng *rand.Rand) {
	switch move.Kind {
	case MovePlayAction:
		s.playAction(move.Card)
	case MovePlayTreasure:
		s.playTreasure(move.Card)
	case MoveBuy:
		s.buyCard(move.Card)
	case MoveEndPhase:
		s.endPhase(rng)
	case MoveDiscard:
		s.resolveDiscard(move.Cards, rng)
	case MoveTrash:
		s.resolveTrash(move.Card)
	case MoveGain:
		s.resolveGain(move.Card)
	case MoveReveal:
		s.resolveReveal(move.Card)
	case MoveDecline:
		s.Pending = nil
	default:
		panic(InvariantViolation{Detail: "unknown move kind"})
	}
	s.drainEffects(rng)
}

func (s *State) playAction(card CardID) {
	invariant(s.Actions > 0, "playing %s with no actions", Lookup(card).Name)
	s.Actions--
	s.removeFromHand(s.Active, card)
	p := &s.Players[s.Active]
	p.InPlay = append(p.InPlay, card)

	c := Lookup(card)
	s.attackSeq++
	aid := s.attackSeq

	// Opponents get the chance to reveal a reaction before any of the
	// attack's effects land on them.
	if c.IsAttack() {
		for _, opp := range s.opponents(s.Active) {
			s.effects = append(s.effects, queuedEffect{player: opp, attackID: aid, reactOption: true})
		}
	}

	for i := range c.Effects {
		effect := &c.Effects[i]
		if effect.OpponentsDiscardTo > 0 {
			for _, opp := range s.opponents(s.Active) {
				s.effects = append(s.effects, queuedEffect{player: opp, attackID: aid, effect: effect})
			}
		} else {
			s.effects = append(s.effects, queuedEffect{player: s.Active, attackID: aid, effect: effect})
		}
	}
}

func (s *State) playTreasure(card CardID) {
	s.removeFromHand(s.Active, card)
	p := &s.Players[s.Active]
	p.InPlay = append(p.InPlay, card)
	s.Coins += Lookup(card).CoinValue
}

func (s *State) buyCard(card CardID) {
	c := Lookup(card)
	invariant(s.Buys > 0, "buying %s with no buys", c.Name)
	invariant(s.Coins >= c.Cost, "buying %s with %d coins", c.Name, s.Coins)
	invariant(s.Supply[card] > 0, "buying %s from an empty pile", c.Name)
	s.Buys--
	s.Coins -= c.Cost
	s.Supply[card]--
	s.Players[s.Active].Discard = append(s.Players[s.Active].Discard, card)
}

func (s *State) endPhase(rng *rand.Rand) {
	switch s.Phase {
	case PhaseAction:
		s.Phase = PhaseBuy
		s.Actions = 0
	case PhaseBuy:
		s.cleanup(rng)
	}
}

// cleanup discards the hand and play area, draws a fresh hand, resets
// resources, and passes the turn.
func (s *State) cleanup(rng *rand.Rand) {
	invariant(len(s.effects) == 0, "ending turn with queued effects")
	p := &s.Players[s.Active]
	p.Discard = append(p.Discard, p.Hand...)
	p.Discard = append(p.Discard, p.InPlay...)
	p.Hand = nil
	p.InPlay = nil
	p.draw(HandSize, rng)

	if s.Active+1 == len(s.Players) {
		s.Active = 0
		s.Turn++
	} else {
		s.Active++
	}
	s.Phase = PhaseAction
	s.Actions = 1
	s.Buys = 1
	s.Coins = 0
	s.attackSeq = 0
}

func (s *State) resolveDiscard(cards []CardID, rng *rand.Rand) {
	d := s.Pending
	s.Pending = nil
	p := &s.Players[d.Player]
	hand, ok := utils.SubtractAll(p.Hand, cards)
	invariant(ok, "%s discarding cards not in hand", p.Name)
	p.Hand = hand
	p.Discard = append(p.Discard, cards...)

	if d.Type == DecideDiscardForDraw {
		p.draw(len(cards), rng)
	}
}

func (s *State) resolveTrash(card CardID) {
	d := s.Pending
	s.Pending = nil
	s.removeFromHand(d.Player, card)
	s.Trash = append(s.Trash, card)

	if followup := d.Trash.Followup; followup != nil {
		trashed := Lookup(card)
		gainable := s.gainableCards(0, trashed.Cost+followup.PlusCost, followup.Filter)
		if len(gainable) > 0 {
			s.Pending = &Decision{
				Player:  d.Player,
				Type:    DecideGain,
				Choices: gainable,
				Gain:    followup,
			}
		}
	}
}

func (s *State) resolveGain(card CardID) {
	d := s.Pending
	s.Pending = nil
	invariant(s.Supply[card] > 0, "gaining %s from an empty pile", Lookup(card).Name)
	s.Supply[card]--
	p := &s.Players[d.Player]
	if d.Gain != nil && d.Gain.Dest == GainToHand {
		p.Hand = append(p.Hand, card)
	} else {
		p.Discard = append(p.Discard, card)
	}
}

// resolveReveal strips the revealing player's queued effects for the
// attack instance. The revealed card stays in hand.
func (s *State) resolveReveal(card CardID) {
	d := s.Pending
	s.Pending = nil
	invariant(Lookup(card).Immunity, "revealed %s grants no immunity", Lookup(card).Name)

	kept := s.effects[:0]
	for _, e := range s.effects {
		if !e.reactOption && e.player == d.Player && e.attackID == d.AttackID {
			continue
		}
		kept = append(kept, e)
	}
	s.effects = kept
}

// drainEffects processes the queued effect list until it empties or an
// effect raises a new pending decision.
func (s *State) drainEffects(rng *rand.Rand) {
	for s.Pending == nil && len(s.effects) > 0 {
		e := s.effects[0]
		s.effects = s.effects[1:]
		if e.reactOption {
			s.offerReaction(e.player, e.attackID)
		} else {
			s.processEffect(e.player, e.effect, rng)
		}
	}
}

func (s *State) offerReaction(player, attackID int) {
	reactions := distinctCards(s.hand(player), (*Card).IsReaction)
	if len(reactions) == 0 {
		return
	}
	s.Pending = &Decision{
		Player:   player,
		Type:     DecideReaction,
		Choices:  reactions,
		AttackID: attackID,
	}
}

func (s *State) processEffect(player int, effect *Effect, rng *rand.Rand) {
	switch {
	case effect.DrawCards > 0:
		s.Players[player].draw(effect.DrawCards, rng)
	case effect.PlusActions > 0:
		s.Actions += effect.PlusActions
	case effect.PlusBuys > 0:
		s.Buys += effect.PlusBuys
	case effect.PlusCoins > 0:
		s.Coins += effect.PlusCoins
	case effect.OpponentsDiscardTo > 0:
		hand := s.hand(player)
		if len(hand) > effect.OpponentsDiscardTo {
			s.Pending = &Decision{
				Player:  player,
				Type:    DecideDiscardDownTo,
				Choices: append([]CardID(nil), hand...),
				Count:   len(hand) - effect.OpponentsDiscardTo,
			}
		}
	case effect.GainUpTo > 0:
		gainable := s.gainableCards(0, effect.GainUpTo, 0)
		if len(gainable) > 0 {
			s.Pending = &Decision{
				Player:  player,
				Type:    DecideGain,
				Choices: gainable,
			}
		}
	case effect.Trash != nil:
		trashable := s.hand(player)
		if effect.Trash.Filter != 0 {
			trashable = filterCards(trashable, effect.Trash.Filter)
		}
		if len(trashable) > 0 {
			s.Pending = &Decision{
				Player:  player,
				Type:    DecideTrash,
				Choices: append([]CardID(nil), trashable...),
				Trash:   effect.Trash,
			}
		}
	case effect.DiscardForDraw:
		hand := s.hand(player)
		if len(hand) > 0 {
			s.Pending = &Decision{
				Player:  player,
				Type:    DecideDiscardForDraw,
				Choices: append([]CardID(nil), hand...),
			}
		}
	default:
		panic(InvariantViolation{Detail: "empty card effect"})
	}
}

func filterCards(cards []CardID, filter CardType) []CardID {
	var out []CardID
	for _, c := range cards {
		if Lookup(c).Is(filter) {
			out = append(out, c)
		}
	}
	return out
}

package game

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// The card catalog is data, not code: every card's cost, types, and effect
// descriptors live in catalog.yaml, parsed once at startup into a read-only
// process-wide registry.

//go:embed catalog.yaml
var catalogYAML []byte

var (
	catalog []Card
	byName  map[string]CardID
)

type catalogFile struct {
	Cards []cardEntry `yaml:"cards"`
}

type cardEntry struct {
	Name      string        `yaml:"name"`
	Cost      int           `yaml:"cost"`
	Types     []string      `yaml:"types"`
	CoinValue int           `yaml:"coin-value"`
	VP        int           `yaml:"vp"`
	Reaction  string        `yaml:"reaction"`
	Effects   []effectEntry `yaml:"effects"`
}

type effectEntry struct {
	Draw               int         `yaml:"draw"`
	Actions            int         `yaml:"actions"`
	Buys               int         `yaml:"buys"`
	Coins              int         `yaml:"coins"`
	OpponentsDiscardTo int         `yaml:"opponents-discard-to"`
	GainUpTo           int         `yaml:"gain-up-to"`
	DiscardForDraw     bool        `yaml:"discard-for-draw"`
	Trash              *trashEntry `yaml:"trash"`
}

type trashEntry struct {
	Filter string     `yaml:"filter"`
	Gain   *gainEntry `yaml:"gain"`
}

type gainEntry struct {
	PlusCost int    `yaml:"plus-cost"`
	Filter   string `yaml:"filter"`
	To       string `yaml:"to"`
}

var typeNames = map[string]CardType{
	"action":   TypeAction,
	"treasure": TypeTreasure,
	"victory":  TypeVictory,
	"curse":    TypeCurse,
	"attack":   TypeAttack,
	"reaction": TypeReaction,
}

func init() {
	var err error
	catalog, byName, err = parseCatalog(catalogYAML)
	if err != nil {
		panic(fmt.Sprintf("card catalog: %v", err))
	}
}

func parseCatalog(data []byte) ([]Card, map[string]CardID, error) {
	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, nil, fmt.Errorf("parse catalog YAML: %w", err)
	}

	cards := make([]Card, 0, len(cf.Cards))
	names := make(map[string]CardID, len(cf.Cards))
	for i, entry := range cf.Cards {
		card, err := buildCard(CardID(i), entry)
		if err != nil {
			return nil, nil, fmt.Errorf("card %q: %w", entry.Name, err)
		}
		if _, dup := names[card.Name]; dup {
			return nil, nil, fmt.Errorf("duplicate card %q", card.Name)
		}
		cards = append(cards, card)
		names[card.Name] = card.ID
	}
	return cards, names, nil
}

func buildCard(id CardID, entry cardEntry) (Card, error) {
	card := Card{
		ID:        id,
		Name:      entry.Name,
		Cost:      entry.Cost,
		CoinValue: entry.CoinValue,
		VP:        entry.VP,
	}
	for _, t := range entry.Types {
		ct, ok := typeNames[t]
		if !ok {
			return Card{}, fmt.Errorf("unknown type %q", t)
		}
		card.Types |= ct
	}

	switch entry.Reaction {
	case "":
	case "attack-immunity":
		card.Immunity = true
	default:
		return Card{}, fmt.Errorf("unknown reaction %q", entry.Reaction)
	}

	for _, ee := range entry.Effects {
		effect, err := buildEffect(ee)
		if err != nil {
			return Card{}, err
		}
		card.Effects = append(card.Effects, effect)
	}
	return card, nil
}

func buildEffect(ee effectEntry) (Effect, error) {
	effect := Effect{
		DrawCards:          ee.Draw,
		PlusActions:        ee.Actions,
		PlusBuys:           ee.Buys,
		PlusCoins:          ee.Coins,
		OpponentsDiscardTo: ee.OpponentsDiscardTo,
		GainUpTo:           ee.GainUpTo,
		DiscardForDraw:     ee.DiscardForDraw,
	}
	if ee.Trash != nil {
		te := &TrashEffect{}
		if ee.Trash.Filter != "" {
			ct, ok := typeNames[ee.Trash.Filter]
			if !ok {
				return Effect{}, fmt.Errorf("unknown trash filter %q", ee.Trash.Filter)
			}
			te.Filter = ct
		}
		if g := ee.Trash.Gain; g != nil {
			followup := &GainFollowup{PlusCost: g.PlusCost}
			if g.Filter != "" {
				ct, ok := typeNames[g.Filter]
				if !ok {
					return Effect{}, fmt.Errorf("unknown gain filter %q", g.Filter)
				}
				followup.Filter = ct
			}
			switch g.To {
			case "", "discard":
				followup.Dest = GainToDiscard
			case "hand":
				followup.Dest = GainToHand
			default:
				return Effect{}, fmt.Errorf("unknown gain destination %q", g.To)
			}
			te.Followup = followup
		}
		effect.Trash = te
	}
	return effect, nil
}

// Lookup returns the catalog entry for id.
func Lookup(id CardID) *Card {
	return &catalog[id]
}

// CardNamed returns the ID of the card with the given name.
func CardNamed(name string) (CardID, bool) {
	id, ok := byName[name]
	return id, ok
}

// MustCard is CardNamed for known-good names; it panics on a miss.
func MustCard(name string) CardID {
	id, ok := byName[name]
	if !ok {
		panic(fmt.Sprintf("no card named %q", name))
	}
	return id
}

// AllCards returns every catalog ID in catalog order.
func AllCards() []CardID {
	ids := make([]CardID, len(catalog))
	for i := range catalog {
		ids[i] = CardID(i)
	}
	return ids
}

// BaseCards returns the non-kingdom cards present in every game.
func BaseCards() []CardID {
	var ids []CardID
	for i := range catalog {
		c := &catalog[i]
		if !c.IsAction() {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// FirstGameKingdom returns the fixed ten-card kingdom this agent plays.
func FirstGameKingdom() []CardID {
	names := []string{
		"Cellar", "Market", "Militia", "Mine", "Moat",
		"Remodel", "Smithy", "Village", "Woodcutter", "Workshop",
	}
	ids := make([]CardID, len(names))
	for i, n := range names {
		ids[i] = MustCard(n)
	}
	return ids
}

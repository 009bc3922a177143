package engine

import (
	"golang.org/x/exp/rand"

	"github.com/rs/zerolog/log"

	"github.com/scottostler/tactician/agent"
	"github.com/scottostler/tactician/game"
	"github.com/scottostler/tactician/searcher"
)

// Local runs a full game between deciders on an in-process state. The
// engine owns the real state and the real game's random source; searches
// clone the state and bring their own.
type Local struct {
	State    *game.State
	Deciders []agent.Decider
	rng      *rand.Rand
}

// MoveMetric records one real-game move and the search statistics behind
// it.
type MoveMetric struct {
	Step   int
	Player int
	Move   string
	searcher.SearchMetric
}

func NewLocal(deciders []agent.Decider, seed uint64) *Local {
	if len(deciders) < 2 {
		panic("need at least two deciders")
	}
	names := make([]string, len(deciders))
	for i, d := range deciders {
		names[i] = d.Name()
	}
	rng := rand.New(rand.NewSource(seed))
	return &Local{
		State:    game.NewGame(game.FirstGameKingdom(), names, rng),
		Deciders: deciders,
		rng:      rng,
	}
}

// Run plays the game to completion and returns the result with per-move
// metrics.
func (e *Local) Run() (Result, []MoveMetric) {
	var metrics []MoveMetric
	step := 0
	lastTurn := 0

	for !e.State.IsTerminal() && e.State.Turn <= MaxTurns {
		if e.State.Turn != lastTurn {
			lastTurn = e.State.Turn
			e.logTurnStart()
		}

		player := e.State.DecisionPlayer()
		move, metric := e.Deciders[player].ChooseMove(e.State)

		if err := e.State.Apply(move, e.rng); err != nil {
			// An illegal recommendation is recoverable: discard it and
			// take the first legal move instead.
			log.Warn().Err(err).Str("player", e.State.PlayerName(player)).
				Msg("decider returned illegal move, falling back")
			fallback := e.State.LegalMoves()
			if len(fallback) == 0 {
				panic(game.InvariantViolation{Detail: "no legal moves in unfinished game"})
			}
			move = fallback[0]
			if err := e.State.Apply(move, e.rng); err != nil {
				panic(game.InvariantViolation{Detail: err.Error()})
			}
		}

		step++
		log.Debug().
			Str("player", e.State.PlayerName(player)).
			Stringer("move", move).
			Msg("played")
		metrics = append(metrics, MoveMetric{
			Step:         step,
			Player:       player,
			Move:         move.String(),
			SearchMetric: metric,
		})
	}

	result := Result{
		Winners: e.State.Winners(),
		Turns:   e.State.Turn,
		Moves:   step,
	}
	for i := range e.State.Players {
		result.Scores = append(result.Scores, e.State.Score(i))
	}
	e.logGameOver(result)
	return result, metrics
}

func (e *Local) logTurnStart() {
	ev := log.Debug().Int("turn", e.State.Turn).
		Int("provinces", e.State.Supply[game.MustCard("Province")])
	for i := range e.State.Players {
		ev = ev.Int(e.State.PlayerName(i), e.State.Score(i))
	}
	ev.Msg("turn start")
}

func (e *Local) logGameOver(result Result) {
	names := make([]string, len(result.Winners))
	for i, w := range result.Winners {
		names[i] = e.State.PlayerName(w)
	}
	log.Debug().
		Strs("winners", names).
		Ints("scores", result.Scores).
		Int("turns", result.Turns).
		Msg("game over")
}

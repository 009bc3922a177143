package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/scottostler/tactician/agent"
	"github.com/scottostler/tactician/engine"
	"github.com/scottostler/tactician/searcher"
)

// MatchResult aggregates a finished match for reporting.
type MatchResult struct {
	Games   []GameRecord
	Moves   []MoveRecord
	Wins    map[string]int // winner name -> count, "tie" for splits
	Elapsed time.Duration
}

// RunMatch plays games between the two configured agents, alternating
// seats each game, and writes the records through w if it is non-nil.
func RunMatch(a1, a2 AgentConfig, games int, w *Writer) (MatchResult, error) {
	result := MatchResult{Wins: make(map[string]int)}
	start := time.Now()

	for i := 0; i < games; i++ {
		// Alternate seats so neither agent keeps the first-player edge.
		first, second := a1, a2
		if i%2 == 1 {
			first, second = a2, a1
		}
		deciders := []agent.Decider{
			buildAgent(first, uint64(i)),
			buildAgent(second, uint64(i)+1),
		}

		gameStart := time.Now()
		eng := engine.NewLocal(deciders, first.Seed+uint64(i))
		res, moves := eng.Run()

		winner := "tie"
		if len(res.Winners) == 1 {
			winner = deciders[res.Winners[0]].Name()
		}
		result.Wins[winner]++

		record := GameRecord{
			ID:       i,
			Agent1:   first.ID,
			Agent2:   second.ID,
			Winner:   winner,
			Scores:   res.Scores,
			Turns:    res.Turns,
			Moves:    res.Moves,
			Duration: time.Since(gameStart),
		}
		result.Games = append(result.Games, record)
		for _, m := range moves {
			result.Moves = append(result.Moves, MoveRecord{Game: i, MoveMetric: m})
		}

		log.Info().
			Int("game", i).
			Str("winner", winner).
			Ints("scores", res.Scores).
			Int("turns", res.Turns).
			Dur("duration", record.Duration).
			Msg("game finished")
	}
	result.Elapsed = time.Since(start)

	if w != nil {
		if err := w.WriteAgentConfigs([]AgentConfig{a1, a2}); err != nil {
			return result, err
		}
		if err := w.WriteGameRecords(result.Games); err != nil {
			return result, err
		}
		if err := w.WriteMoveRecords(result.Moves); err != nil {
			return result, err
		}
	}
	return result, nil
}

// buildAgent constructs the decider for one seat. Search agents get a
// per-game seed offset so repeated games do not replay the same trees.
func buildAgent(cfg AgentConfig, offset uint64) agent.Decider {
	switch cfg.Kind {
	case "search":
		return agent.NewSearch(searcher.New(
			searcher.WithIterations(cfg.Iterations),
			searcher.WithDuration(cfg.TimeBudget),
			searcher.WithExploration(cfg.Exploration),
			searcher.WithSeed(cfg.Seed+offset),
			searcher.WithWorkers(cfg.Workers),
			searcher.WithMetrics(),
		))
	case "bigmoney":
		return agent.BigMoney{}
	case "random":
		return agent.NewRandom(cfg.Seed + offset)
	default:
		panic(fmt.Sprintf("unknown agent kind %q", cfg.Kind))
	}
}

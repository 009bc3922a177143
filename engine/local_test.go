package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scottostler/tactician/agent"
	"github.com/scottostler/tactician/game"
)

func TestLocal(t *testing.T) {
	t.Run("requires two deciders", func(t *testing.T) {
		require.Panics(t, func() { NewLocal([]agent.Decider{agent.BigMoney{}}, 1) })
	})

	t.Run("mirror match runs to completion", func(t *testing.T) {
		e := NewLocal([]agent.Decider{agent.BigMoney{}, agent.BigMoney{}}, 42)
		result, metrics := e.Run()

		require.True(t, e.State.IsTerminal(), "The game should end by supply exhaustion")
		require.LessOrEqual(t, result.Turns, MaxTurns)
		require.NotEmpty(t, result.Winners)
		require.Len(t, result.Scores, 2)
		require.Equal(t, result.Moves, len(metrics), "One metric per move played")

		for i, m := range metrics {
			require.Equal(t, i+1, m.Step, "Steps should be dense and ordered")
		}
	})

	t.Run("results are deterministic per seed", func(t *testing.T) {
		run := func() Result {
			e := NewLocal([]agent.Decider{agent.BigMoney{}, agent.BigMoney{}}, 7)
			result, _ := e.Run()
			return result
		}
		require.Equal(t, run(), run())
	})

	t.Run("random versus big money favors big money", func(t *testing.T) {
		wins := 0
		for seed := uint64(0); seed < 5; seed++ {
			e := NewLocal([]agent.Decider{agent.NewRandom(seed), agent.BigMoney{}}, seed)
			result, _ := e.Run()
			for _, w := range result.Winners {
				if e.State.PlayerName(w) == "Big Money" {
					wins++
				}
			}
		}
		require.Positive(t, wins, "A money strategy should beat random play at least once in five games")
	})

	t.Run("first game kingdom on the table", func(t *testing.T) {
		e := NewLocal([]agent.Decider{agent.BigMoney{}, agent.BigMoney{}}, 1)
		for _, name := range []string{"Cellar", "Market", "Militia", "Mine", "Moat",
			"Remodel", "Smithy", "Village", "Woodcutter", "Workshop"} {
			require.Equal(t, 10, e.State.Supply[game.MustCard(name)])
		}
	})
}

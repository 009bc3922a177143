package experiments

import (
	"time"

	"github.com/scottostler/tactician/engine"
)

// AgentConfig describes one contestant for the record files.
type AgentConfig struct {
	ID          int
	Kind        string // "search", "bigmoney", "random"
	Iterations  int
	TimeBudget  time.Duration
	Workers     int
	Exploration float64
	Seed        uint64
}

// GameRecord is one finished game of a match.
type GameRecord struct {
	ID       int
	Agent1   int // AgentConfig.ID
	Agent2   int
	Winner   string
	Scores   []int
	Turns    int
	Moves    int
	Duration time.Duration
}

// MoveRecord joins a game ID to a move's search metrics.
type MoveRecord struct {
	Game int
	engine.MoveMetric
}

package searcher

import (
	"math"
	"sync"
	"time"

	"golang.org/x/exp/rand"

	"github.com/scottostler/tactician/game"
)

// DefaultExploration is the UCT exploration constant C.
const DefaultExploration = math.Sqrt2

type Option func(*MCTS)

// MCTS runs Monte Carlo tree search over the game rules. Each worker
// builds an independent tree from the root state (root parallelization);
// worker statistics are merged per root move when the budget is spent.
type MCTS struct {
	workers    int
	iterations int
	duration   time.Duration
	cSquared   float64
	seed       uint64
	policy     Policy
	metrics    Collector
}

func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithExploration sets the UCT exploration constant C.
func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c > 0 {
			m.cSquared = c * c
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = seed
	}
}

func WithWorkers(workers int) Option {
	return func(m *MCTS) {
		if workers > 0 {
			m.workers = workers
		}
	}
}

func WithPolicy(policy Policy) Option {
	return func(m *MCTS) {
		if policy != nil {
			m.policy = policy
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewCollector()
	}
}

func New(options ...Option) *MCTS {
	m := &MCTS{
		workers:  1,
		cSquared: DefaultExploration * DefaultExploration,
		seed:     uint64(time.Now().UnixNano()),
		policy:   UniformRandom{},
		metrics:  NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.iterations <= 0 && m.duration <= 0 {
		panic("must specify search iterations or duration")
	}
	return m
}

// Config is the flat search configuration surface for callers that do not
// use options directly.
type Config struct {
	Iterations  int
	TimeBudget  time.Duration
	Exploration float64
	Seed        uint64
	Workers     int
}

// FindMove searches state with the given configuration and returns the
// recommended move.
func FindMove(state *game.State, cfg Config) game.Move {
	m := New(
		WithIterations(cfg.Iterations),
		WithDuration(cfg.TimeBudget),
		WithExploration(cfg.Exploration),
		WithSeed(cfg.Seed),
		WithWorkers(cfg.Workers),
	)
	move, _ := m.FindMove(state)
	return move
}

// FindMove runs the search budget against state and returns the
// most-visited root move (robust child), with ties broken by mean reward
// and then enumeration order.
func (m *MCTS) FindMove(state *game.State) (game.Move, SearchMetric) {
	legal := state.LegalMoves()
	if len(legal) == 0 {
		panic(game.InvariantViolation{Detail: "search invoked with no legal moves"})
	}
	m.metrics.Start(m.workers)
	if len(legal) == 1 {
		return legal[0], m.metrics.Complete()
	}

	var deadline time.Time
	if m.duration > 0 {
		deadline = time.Now().Add(m.duration)
	}

	roots := make([]*node, m.workers)
	var wg sync.WaitGroup
	for w := range roots {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(m.seed + uint64(w)))
			root := newRoot(state.Clone(), legal)
			m.search(root, rng, m.workerBudget(w), deadline)
			roots[w] = root
		}(w)
	}
	wg.Wait()

	return m.bestRootMove(legal, roots), m.metrics.Complete()
}

// workerBudget splits the iteration budget across workers; the first
// worker absorbs the remainder. Zero means no iteration cap.
func (m *MCTS) workerBudget(worker int) int {
	if m.iterations <= 0 {
		return 0
	}
	budget := m.iterations / m.workers
	if worker == 0 {
		budget += m.iterations % m.workers
	}
	return budget
}

func (m *MCTS) search(root *node, rng *rand.Rand, iterations int, deadline time.Time) {
	for i := 0; iterations <= 0 || i < iterations; i++ {
		// The budget check happens only between full iterations.
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			return
		}
		m.simulate(root, rng)
		m.metrics.AddIteration()
	}
}

// simulate runs one select-expand-rollout-backup iteration. Each node
// carries the state it was expanded with, so the moves it stored stay
// legal no matter how shuffles resolved in other iterations.
func (m *MCTS) simulate(root *node, rng *rand.Rand) {
	// Selection: descend fully expanded nodes by UCT.
	nd := root
	for len(nd.untried) == 0 && len(nd.children) > 0 {
		nd = nd.bestChild(m.cSquared)
	}

	// Expansion: try one random untried move against this node's state.
	if len(nd.untried) > 0 {
		i := rng.Intn(len(nd.untried))
		move := nd.untried[i]
		state := nd.state.Clone()
		actor := state.DecisionPlayer()
		mustApply(state, move, rng)
		child := &node{
			parent:  nd,
			move:    move,
			player:  actor,
			state:   state,
			untried: state.LegalMoves(),
		}
		nd.untried = append(nd.untried[:i], nd.untried[i+1:]...)
		nd.children = append(nd.children, child)
		nd = child
	}

	// Rollout to a terminal state, then credit each node's player with
	// that player's share of the result. The rollout mutates a copy: the
	// node's own state must stay frozen.
	outcomes := m.rollout(nd.state.Clone(), rng)
	for n := nd; n != nil; n = n.parent {
		n.visits++
		if n.player >= 0 {
			n.rewards += outcomes[n.player]
		}
	}
}

func (m *MCTS) rollout(state *game.State, rng *rand.Rand) []float64 {
	moves := state.LegalMoves()
	for len(moves) > 0 {
		move := m.policy.Choose(state, moves, rng)
		mustApply(state, move, rng)
		moves = state.LegalMoves()
	}
	return state.Outcomes()
}

// mustApply plays a move enumerated from the very state it is applied to;
// failure is a rules-engine bug, not a caller error.
func mustApply(state *game.State, move game.Move, rng *rand.Rand) {
	if err := state.Apply(move, rng); err != nil {
		panic(game.InvariantViolation{Detail: err.Error()})
	}
}

type moveStats struct {
	visits  int
	rewards float64
}

// bestRootMove merges per-move statistics across worker trees and applies
// the robust-child policy. Statistics are matched on move value, not its
// rendering, so distinct kinds of the same card never pool.
func (m *MCTS) bestRootMove(legal []game.Move, roots []*node) game.Move {
	merged := make([]moveStats, len(legal))
	for _, root := range roots {
		for _, child := range root.children {
			for i, move := range legal {
				if move.Equal(child.move) {
					merged[i].visits += child.visits
					merged[i].rewards += child.rewards
					break
				}
			}
		}
	}

	best := 0
	for i := 1; i < len(legal); i++ {
		stats, bestStats := merged[i], merged[best]
		if stats.visits > bestStats.visits ||
			(stats.visits == bestStats.visits && stats.visits > 0 && mean(stats) > mean(bestStats)) {
			best = i
		}
	}
	return legal[best]
}

func mean(s moveStats) float64 {
	return s.rewards / float64(s.visits)
}

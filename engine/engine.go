package engine

// MaxTurns guards against runaway games; a correct rules engine drains
// the supply long before this.
const MaxTurns = 500

// Result reports one finished game.
type Result struct {
	Winners []int // player indices; more than one means a tie
	Scores  []int
	Turns   int
	Moves   int
}

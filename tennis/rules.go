package tennis

import "fmt"

// The Phase of a game tells which scoring rule
// describes its current points.
type Phase int

const (
	// Both players below four points with unequal points
	Running Phase = iota
	// Equal points below three ("Love-All" to "Thirty-All")
	Tied
	// Equal points at three or more
	Deuce
	// One point ahead with at least one player at four or more
	Advantage
	// Two or more points ahead with at least one player at four or more
	Won
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Tied:
		return "tied"
	case Deuce:
		return "deuce"
	case Advantage:
		return "advantage"
	case Won:
		return "won"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

var (
	allScores   = [...]string{"Love-All", "Fifteen-All", "Thirty-All"}
	pointScores = [...]string{"Love", "Fifteen", "Thirty", "Forty"}
)

// A rule pairs a predicate over the two point counts
// with the formatter for the score string.
type rule struct {
	phase   Phase
	applies func(a, b int) bool
	format  func(a, b int, names [2]string) string
}

// The guards do not overlap.
var rules = []rule{
	{
		phase:   Tied,
		applies: func(a, b int) bool { return a == b && a >= 0 && a < len(allScores) },
		format:  func(a, _ int, _ [2]string) string { return allScores[a] },
	},
	{
		phase:   Deuce,
		applies: func(a, b int) bool { return a == b && a >= len(allScores) },
		format:  func(_, _ int, _ [2]string) string { return "Deuce" },
	},
	{
		phase:   Advantage,
		applies: func(a, b int) bool { return endgame(a, b) && abs(a-b) == 1 },
		format: func(a, b int, names [2]string) string {
			return "Advantage " + names[leader(a, b)]
		},
	},
	{
		phase:   Won,
		applies: func(a, b int) bool { return endgame(a, b) && abs(a-b) >= 2 },
		format: func(a, b int, names [2]string) string {
			return "Win for " + names[leader(a, b)]
		},
	},
	{
		phase: Running,
		applies: func(a, b int) bool {
			return a != b && min(a, b) >= 0 && max(a, b) < len(pointScores)
		},
		format: func(a, b int, _ [2]string) string {
			return pointScores[a] + "-" + pointScores[b]
		},
	},
}

// Returns the rule that describes the points a and b.
// Every pair of non-negative points has exactly one rule.
func matchRule(a, b int) *rule {
	for i := range rules {
		if rules[i].applies(a, b) {
			return &rules[i]
		}
	}
	panic(fmt.Sprintf("no scoring rule for the points %d-%d", a, b))
}

func describe(a, b int, names [2]string) string {
	return matchRule(a, b).format(a, b, names)
}

func phaseOf(a, b int) Phase {
	return matchRule(a, b).phase
}

// One of the players has reached four points
// and both are non-negative
func endgame(a, b int) bool {
	return max(a, b) >= len(pointScores) && min(a, b) >= 0
}

// Index of the player with more points
func leader(a, b int) int {
	if a > b {
		return 0
	}
	return 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

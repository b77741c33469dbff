package tennis

import (
	"iter"
	"slices"

	"github.com/ezBadminton/gotennis/internal"
)

// A State is a pair of points in a game.
type State struct {
	Points1, Points2 int
}

func (s State) Id() int {
	return s.Points1<<8 | s.Points2
}

func (s State) Phase() Phase {
	return phaseOf(s.Points1, s.Points2)
}

func (s State) Score(player1, player2 string) string {
	return describe(s.Points1, s.Points2, [2]string{player1, player2})
}

// Returns the state after the player at index 0 or 1
// won a point.
func (s State) Next(index int) State {
	if index == 0 {
		s.Points1 += 1
	} else {
		s.Points2 += 1
	}
	return s.fold()
}

// Removes the points past deuce that both players
// have in common. 4-4 becomes 3-3 and 6-5 becomes 4-3.
func (s State) fold() State {
	common := min(s.Points1, s.Points2) - 3
	if common > 0 {
		s.Points1 -= common
		s.Points2 -= common
	}
	return s
}

// The ProgressionGraph has every state of a game that
// is reachable from Love-All as its nodes. A directed
// edge leads from a state to the two states that follow
// when either player wins the next point.
//
// States past deuce are folded which makes the graph
// finite and turns the deuce and advantage states into
// a cycle. Won states have no outgoing edges.
type ProgressionGraph struct {
	*internal.DependencyGraph[State]

	Start State
}

func NewProgressionGraph() *ProgressionGraph {
	g := &ProgressionGraph{
		DependencyGraph: internal.NewDependencyGraph[State](),
	}

	if _, err := g.AddNode(g.Start); err != nil {
		panic(err)
	}

	queue := []State{g.Start}
	for len(queue) > 0 {
		state := queue[0]
		queue = queue[1:]
		if state.Phase() == Won {
			continue
		}

		for index := range 2 {
			next := state.Next(index)
			added, err := g.AddNode(next)
			if err != nil {
				panic(err)
			}
			if added {
				queue = append(queue, next)
			}
			if err := g.AddEdge(state, next); err != nil {
				panic(err)
			}
		}
	}

	return g
}

// Iterates all states breadth first from Love-All
// together with the number of points played to
// first reach them.
func (g *ProgressionGraph) States() iter.Seq2[State, int] {
	return g.BreadthSearchIter(g.Start)
}

// The states that can follow the given state
// sorted by Id
func (g *ProgressionGraph) Next(state State) []State {
	next := g.GetDependants(state)
	slices.SortFunc(next, func(a, b State) int { return a.Id() - b.Id() })
	return next
}

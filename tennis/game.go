package tennis

import (
	"errors"
	"strings"

	"github.com/ezBadminton/gotennis/core"
)

var (
	ErrEmptyName      = errors.New("empty player name")
	ErrSamePlayers    = errors.New("both players have the same name")
	ErrNegativePoints = errors.New("negative points")

	ErrUndetermined = errors.New("the game has no winner yet")
)

type player struct {
	name string
}

func (p *player) Id() string {
	return p.name
}

var _ core.Player = &player{}

// A Game holds the points of the two players
// of a single tennis game.
//
// The points only ever increase. Points that are
// awarded after the game is won are still counted.
type Game struct {
	players [2]*player
	points  [2]int
}

var _ core.Score = &Game{}

func NewGame(player1, player2 string) (*Game, error) {
	return NewGameAt(player1, player2, 0, 0)
}

// Creates a game that starts from the given points
// instead of Love-All.
func NewGameAt(player1, player2 string, points1, points2 int) (*Game, error) {
	switch {
	case strings.TrimSpace(player1) == "" || strings.TrimSpace(player2) == "":
		return nil, ErrEmptyName
	case player1 == player2:
		return nil, ErrSamePlayers
	case points1 < 0 || points2 < 0:
		return nil, ErrNegativePoints
	}

	game := &Game{
		players: [2]*player{{name: player1}, {name: player2}},
		points:  [2]int{points1, points2},
	}
	return game, nil
}

// Awards a point to the player with the given name.
// Unknown names are ignored and false is returned.
func (g *Game) WonPoint(name string) bool {
	for i, p := range g.players {
		if p.name == name {
			g.points[i] += 1
			return true
		}
	}
	return false
}

// Awards a point to the player at index 0 or 1.
// Other indices are ignored and false is returned.
func (g *Game) AwardPoint(index int) bool {
	if index < 0 || index >= len(g.points) {
		return false
	}
	g.points[index] += 1
	return true
}

// The display string of the current points
// (e.g. "Thirty-Fifteen", "Deuce", "Advantage Ann").
func (g *Game) Score() string {
	return describe(g.points[0], g.points[1], g.names())
}

func (g *Game) Phase() Phase {
	return phaseOf(g.points[0], g.points[1])
}

func (g *Game) IsOver() bool {
	return g.Phase() == Won
}

// The current points with deuce and advantage folded
// onto 3-3 and 4-3 (or 3-4).
func (g *Game) State() State {
	return State{g.points[0], g.points[1]}.fold()
}

func (g *Game) Points() (int, int) {
	return g.points[0], g.points[1]
}

func (g *Game) Points1() []int {
	return []int{g.points[0]}
}

func (g *Game) Points2() []int {
	return []int{g.points[1]}
}

func (g *Game) GetWinner() (int, error) {
	a, b := g.Points()
	if phaseOf(a, b) != Won {
		return -1, ErrUndetermined
	}
	return leader(a, b), nil
}

func (g *Game) Winner() (core.Player, error) {
	winner, err := g.GetWinner()
	if err != nil {
		return nil, err
	}
	return g.players[winner], nil
}

func (g *Game) Players() [2]core.Player {
	return [2]core.Player{g.players[0], g.players[1]}
}

// Returns a new game with the players and
// their points swapped.
func (g *Game) Invert() core.Score {
	game := &Game{
		players: [2]*player{g.players[1], g.players[0]},
		points:  [2]int{g.points[1], g.points[0]},
	}
	return game
}

func (g *Game) names() [2]string {
	return [2]string{g.players[0].name, g.players[1].name}
}

package core

// A Player is one of the two opponents of a game.
type Player interface {
	// Returns an ID that is unique among the players of
	// a game
	Id() string
}

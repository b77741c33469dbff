package core

// The result of a contest between two opponents.
//
// The points are slices so that contests made of
// several parts can share the contract. A single
// tennis game reports one element per opponent.
type Score interface {
	// Points of first opponent
	Points1() []int

	// Points of second opponent
	Points2() []int

	// Returns either 0 or 1 whether the
	// first opponent won or the second.
	// Errors when no winner is determined.
	GetWinner() (int, error)

	// Returns a new Score that has Points1
	// and Points2 flipped
	Invert() Score
}

// Returns the opponent index that did not win, or -1
// together with the error from GetWinner.
func Loser(s Score) (int, error) {
	winner, err := s.GetWinner()
	if err != nil {
		return -1, err
	}
	return 1 - winner, nil
}

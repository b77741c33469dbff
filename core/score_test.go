package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errNoWinner = errors.New("no winner")

type testScore struct {
	a, b int
}

func (s *testScore) Points1() []int { return []int{s.a} }

func (s *testScore) Points2() []int { return []int{s.b} }

func (s *testScore) GetWinner() (int, error) {
	if s.a > s.b {
		return 0, nil
	}
	if s.b > s.a {
		return 1, nil
	}
	return -1, errNoWinner
}

func (s *testScore) Invert() Score {
	return &testScore{s.b, s.a}
}

func TestLoser(t *testing.T) {
	loser, err := Loser(&testScore{4, 1})
	assert.NoError(t, err)
	assert.Equal(t, 1, loser)

	loser, err = Loser((&testScore{4, 1}).Invert())
	assert.NoError(t, err)
	assert.Equal(t, 0, loser)

	loser, err = Loser(&testScore{2, 2})
	assert.ErrorIs(t, err, errNoWinner)
	assert.Equal(t, -1, loser)
}

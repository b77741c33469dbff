package cmd

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezBadminton/gotennis/tennis"
)

func TestMain(m *testing.M) {
	logrus.SetOutput(io.Discard)
	for _, key := range []string{"TENNIS_PLAYER1", "TENNIS_PLAYER2", "TENNIS_LOG_LEVEL"} {
		os.Unsetenv(key)
	}
	os.Exit(m.Run())
}

// Runs the root command and returns the printed lines
func execute(t *testing.T, args ...string) ([]string, error) {
	t.Helper()
	root := Root()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	err := root.Execute()
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n"), err
}

func TestPlay(t *testing.T) {
	t.Run("points by index and by name", func(t *testing.T) {
		lines, err := execute(t, "play", "1", "1", "2", "player1")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"Love-All",
			"Fifteen-Love",
			"Thirty-Love",
			"Thirty-Fifteen",
			"Forty-Fifteen",
		}, lines)
	})

	t.Run("unknown players are skipped", func(t *testing.T) {
		lines, err := execute(t, "play", "--player1", "Ann", "--player2", "Bo", "Ann", "Cy", "3", "Bo")
		require.NoError(t, err)
		assert.Equal(t, []string{"Love-All", "Fifteen-Love", "Fifteen-All"}, lines)
	})

	t.Run("names win over shorthands", func(t *testing.T) {
		lines, err := execute(t, "play", "--player1", "2", "--player2", "Bo", "2")
		require.NoError(t, err)
		assert.Equal(t, []string{"Love-All", "Fifteen-Love"}, lines)
	})

	t.Run("deuce and advantage", func(t *testing.T) {
		lines, err := execute(t, "play", "--trace", "1", "2", "1", "2", "1", "2", "2", "1", "1", "1")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"Deuce",
			"Advantage player2",
			"Deuce",
			"Advantage player1",
			"Win for player1",
		}, lines[6:])
	})

	t.Run("players from the environment", func(t *testing.T) {
		t.Setenv("TENNIS_PLAYER1", "Ann")
		lines, err := execute(t, "play", "1", "1", "1", "1")
		require.NoError(t, err)
		assert.Equal(t, "Win for Ann", lines[len(lines)-1])
	})

	t.Run("same players", func(t *testing.T) {
		_, err := execute(t, "play", "--player1", "Ann", "--player2", "Ann")
		assert.ErrorIs(t, err, tennis.ErrSamePlayers)
	})

	t.Run("invalid log level", func(t *testing.T) {
		t.Setenv("TENNIS_LOG_LEVEL", "loud")
		_, err := execute(t, "play")
		assert.Error(t, err)
	})
}

func TestStates(t *testing.T) {
	lines, err := execute(t, "states", "--player1", "Ann", "--player2", "Bo")
	require.NoError(t, err)
	require.Len(t, lines, 26)

	assert.Equal(t, []string{"0", "0-0", "Love-All", "tied"}, fields(lines[0]))
	assert.Equal(t, []string{"1", "0-1", "Love-Fifteen", "running"}, fields(lines[1]))
	assert.Equal(t, []string{"8", "5-3", "Win", "for", "Ann", "won"}, fields(lines[25]))

	all := strings.Join(lines, "\n")
	assert.Contains(t, all, "Advantage Bo")
	assert.Contains(t, all, "Deuce")
}

func fields(line string) []string {
	return strings.Fields(line)
}

func TestVersion(t *testing.T) {
	lines, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, []string{version}, lines)
}

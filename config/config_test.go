package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	err := c.Load(nil)
	assert.NoError(t, err)
	assert.Equal(t, "./data/words.txt", c.WordsFile)
	assert.Equal(t, "./data/tiles.txt", c.TilesFile)
	assert.Equal(t, "./data/board.txt", c.BoardFile)
	assert.Equal(t, "", c.GameFile)
	assert.Equal(t, "", c.Rack)
	assert.False(t, c.Debug)
}

func TestLoadFlags(t *testing.T) {
	var c Config
	err := c.Load([]string{
		"--words-file", "/tmp/w.txt",
		"--rack", "CEDAR?",
		"--debug",
	})
	assert.NoError(t, err)
	assert.Equal(t, "/tmp/w.txt", c.WordsFile)
	assert.Equal(t, "CEDAR?", c.Rack)
	assert.True(t, c.Debug)
	// Untouched flags keep their defaults.
	assert.Equal(t, "./data/tiles.txt", c.TilesFile)
}

func TestLoadBadFlag(t *testing.T) {
	var c Config
	err := c.Load([]string{"--no-such-flag"})
	assert.Error(t, err)
}

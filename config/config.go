// Package config loads runtime settings: data file locations, the starting
// rack, and debug logging. Flags override SCRABBL_-prefixed environment
// variables, which override the defaults.
package config

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	WordsFile string
	TilesFile string
	BoardFile string
	GameFile  string
	Rack      string
	Debug     bool
}

// Load parses args (typically os.Args[1:]) and the environment.
func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("scrabbl", pflag.ContinueOnError)
	fs.String("words-file", "./data/words.txt", "file holding the dictionary word list")
	fs.String("tiles-file", "./data/tiles.txt", "file holding tile point values and counts")
	fs.String("board-file", "./data/board.txt", "file holding the board bonus layout")
	fs.String("game-file", "", "optional file holding letters already on the board")
	fs.String("rack", "", "initial rack letters (A-Z and ? for a blank)")
	fs.Bool("debug", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := viper.New()
	v.SetEnvPrefix("scrabbl")
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return err
	}

	c.WordsFile = v.GetString("words-file")
	c.TilesFile = v.GetString("tiles-file")
	c.BoardFile = v.GetString("board-file")
	c.GameFile = v.GetString("game-file")
	c.Rack = v.GetString("rack")
	c.Debug = v.GetBool("debug")
	return nil
}

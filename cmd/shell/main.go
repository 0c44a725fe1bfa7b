package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wlei/scrabbl/alphabet"
	"github.com/wlei/scrabbl/config"
	"github.com/wlei/scrabbl/dataloaders"
	"github.com/wlei/scrabbl/lexicon"
	"github.com/wlei/scrabbl/shell"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	var logger zerolog.Logger
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	log.Logger = logger

	words := dataloaders.LoadWords(cfg.WordsFile)
	dist := dataloaders.LoadTiles(cfg.TilesFile)
	lex, err := lexicon.NewLexicon(words, dist)
	if err != nil {
		log.Error().Err(err).Msg("could not build the lexicon")
		os.Exit(1)
	}

	b := dataloaders.LoadBoard(cfg.BoardFile)
	if cfg.GameFile != "" {
		dataloaders.LoadGame(cfg.GameFile, b)
	}
	b.Update(lex)
	rack := alphabet.RackFromString(strings.ToUpper(cfg.Rack))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	sc := shell.NewShellController(b, rack, lex)
	go sc.Loop(sig)

	<-sig
	log.Debug().Msg("shutting down")
}

// Command blockfall-term plays the falling-block game in a terminal. Arrow
// keys move and rotate; Escape, q or Ctrl-C quit.
package main

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/plus3/blockfall/backend/termview"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/tetris"
)

const gameOverLinger = 2 * time.Second

func main() {
	cfg := tetris.DefaultConfig()
	if lvl, err := cfg.Level(); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	// The screen owns the terminal until Fini; log lines are held until then.
	var logs bytes.Buffer
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: &logs, NoColor: true, TimeFormat: time.Kitchen})
	flush := func() {
		os.Stderr.Write(logs.Bytes())
		logs.Reset()
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	game, err := tetris.NewGame(cfg, tetris.DefaultCatalog(), rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	if err != nil {
		flush()
		log.Fatal().Err(err).Msg("failed to start game")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		flush()
		log.Fatal().Err(err).Msg("failed to open terminal")
	}
	if err := screen.Init(); err != nil {
		flush()
		log.Fatal().Err(err).Msg("failed to initialize terminal")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := termview.NewSession(screen, termview.Listen(screen), game)
	err = session.Run(ctx, engine.RealClock{})
	if err == nil && game.State() == tetris.Over {
		time.Sleep(gameOverLinger)
	}

	screen.Fini()
	flush()

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("game exited")
	}
	log.Info().Str("state", game.State().String()).Int("score", game.Score()).Msg("game ended")
}

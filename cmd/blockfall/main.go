// Command blockfall plays the falling-block game in a window. Arrow keys move
// and rotate, Escape quits and F3 toggles the debug overlay.
package main

import (
	"math/rand/v2"
	"os"
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/plus3/blockfall/backend/ebitenview"
	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	cfg := tetris.DefaultConfig()
	if lvl, err := cfg.Level(); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	seed1, seed2 := rand.Uint64(), rand.Uint64()
	game, err := tetris.NewGame(cfg, tetris.DefaultCatalog(), rand.New(rand.NewPCG(seed1, seed2)))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start game")
	}
	log.Debug().Uint64("seed1", seed1).Uint64("seed2", seed2).Msg("dealing pieces")

	width, height := cfg.ScreenSize()
	imguiBackend := ebitenbackend.NewEbitenBackend()
	imguiBackend.CreateWindow("Tetris", width, height)
	imgui.CurrentIO().SetIniFilename("")

	ebiten.SetTPS(ebitenview.TPS)
	ebiten.SetWindowClosingHandled(true)

	view := ebitenview.NewGame(game, ebitenview.LiveKeyboard{})
	view.SetOverlay(debugui.NewOverlay(imguiBackend, game, view.TickScheduler()))

	log.Info().Int("columns", cfg.Columns).Int("rows", cfg.Rows).Int("tick_rate", cfg.TickRate).Msg("starting game")
	if err := ebiten.RunGame(view); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
	log.Info().Str("state", game.State().String()).Int("score", game.Score()).Msg("game ended")
}

package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/tetris"
)

// GameStats shows the score, the falling and lookahead pieces, and how often
// each shape was dealt and each clear size happened.
type GameStats struct {
	game *tetris.Game
}

func NewGameStats(game *tetris.Game) *GameStats {
	return &GameStats{game: game}
}

func (gs *GameStats) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 340), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(280, 240), imgui.CondOnce)

	if !imgui.BeginV("Game", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	g := gs.game
	stats := g.Stats()
	current := g.Current()

	imgui.Text(fmt.Sprintf("State: %s", g.State()))
	imgui.Text(fmt.Sprintf("Score: %d", g.Score()))
	imgui.Text(fmt.Sprintf("Locked: %d  Filled: %d", stats.Locked(), g.Board().Filled()))
	imgui.Text(fmt.Sprintf("Piece: %s at (%d, %d)", current.Kind, current.X, current.Y))
	imgui.Text(fmt.Sprintf("Next: %s", g.Next().Kind))

	if imgui.TreeNodeStr("Shapes Dealt") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ShapesTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Shape")
			imgui.TableSetupColumn("Count")
			imgui.TableHeadersRow()

			for kind := tetris.KindI; kind <= tetris.KindZ; kind++ {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(kind.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", stats.Spawned(kind)))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Line Clears") {
		for rows := 1; rows <= 4; rows++ {
			imgui.BulletText(fmt.Sprintf("%d rows: %d", rows, stats.Clears(rows)))
		}
		imgui.TreePop()
	}

	imgui.End()
}

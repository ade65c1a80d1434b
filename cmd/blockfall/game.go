package main

import (
	"image/color"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/piece"
)

// Game implements ebiten.Game on top of a Driver. Gravity runs on the
// driver's own goroutine; Update only forwards input.
type Game struct {
	driver       *driver.Driver
	imguiBackend *ebitenbackend.EbitenBackend
	catalog      *piece.Catalog
	cmds         driver.Commands
	panel        *debugPanel
	showDebug    bool

	// snap is refreshed once per Update and read by Draw.
	snap engine.Snapshot
}

func newGame(d *driver.Driver, backend *ebitenbackend.EbitenBackend, showDebug bool) *Game {
	catalog := d.Config().Catalog
	if catalog == nil {
		catalog = piece.Standard()
	}
	return &Game{
		driver:       d,
		imguiBackend: backend,
		catalog:      catalog,
		panel:        newDebugPanel(120),
		showDebug:    showDebug,
		snap:         d.Snapshot(),
	}
}

func (g *Game) Update() error {
	if quitRequested() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showDebug = !g.showDebug
	}

	g.imguiBackend.BeginFrame()

	if !imgui.CurrentIO().WantCaptureKeyboard() {
		collectInput(&g.cmds)
	}
	if g.showDebug {
		g.cmds.Defer(func() { g.panel.Render(g.driver) })
	}
	g.cmds.Flush(g.driver)

	g.imguiBackend.EndFrame()

	g.snap = g.driver.Snapshot()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{16, 16, 24, 255})
	drawBoard(screen, g.catalog, g.snap)

	g.imguiBackend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

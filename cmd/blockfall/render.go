package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/piece"
)

const (
	CellSize    = 30
	PreviewSize = 15
	offsetX     = 50
	offsetY     = 50
)

var (
	borderColor  = color.RGBA{128, 128, 128, 255}
	outlineColor = color.RGBA{0, 0, 0, 255}
	ghostColor   = color.RGBA{255, 255, 255, 80}
	shadeColor   = color.RGBA{0, 0, 0, 160}
)

func drawBoard(screen *ebiten.Image, catalog *piece.Catalog, snap engine.Snapshot) {
	width := float32(snap.Cols * CellSize)
	height := float32(snap.Rows * CellSize)
	vector.StrokeRect(screen, offsetX-2, offsetY-2, width+4, height+4, 2, borderColor, false)

	for r, row := range snap.Field {
		for c, k := range row {
			if k != piece.KindNone {
				drawCell(screen, r, c, catalog.Color(k))
			}
		}
	}

	if snap.HasActive && !snap.GameOver() {
		for r, c := range snap.Active.Shape.Cells() {
			x := float32(offsetX + (snap.Ghost.Col+c)*CellSize)
			y := float32(offsetY + (snap.Ghost.Row+r)*CellSize)
			vector.DrawFilledRect(screen, x, y, CellSize, CellSize, ghostColor, false)
		}
	}
	if snap.HasActive {
		clr := catalog.Color(snap.Active.Kind)
		for r, c := range snap.Active.Cells() {
			drawCell(screen, r, c, clr)
		}
	}

	drawSidebar(screen, catalog, snap, offsetX+snap.Cols*CellSize+20)

	switch {
	case snap.GameOver():
		drawBanner(screen, snap, "GAME OVER", "Press R to restart")
	case snap.Paused():
		drawBanner(screen, snap, "PAUSED", "Press P to resume")
	}
}

func drawCell(screen *ebiten.Image, r, c int, clr color.RGBA) {
	x := float32(offsetX + c*CellSize)
	y := float32(offsetY + r*CellSize)
	vector.DrawFilledRect(screen, x, y, CellSize, CellSize, clr, false)
	vector.StrokeRect(screen, x, y, CellSize, CellSize, 1, outlineColor, false)
}

func drawSidebar(screen *ebiten.Image, catalog *piece.Catalog, snap engine.Snapshot, x int) {
	y := offsetY
	ebitenutil.DebugPrintAt(screen, "SCORE", x, y)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", snap.Score), x, y+16)
	ebitenutil.DebugPrintAt(screen, "LINES", x, y+40)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", snap.Lines), x, y+56)

	y += 90
	ebitenutil.DebugPrintAt(screen, "HOLD", x, y)
	if snap.Held != piece.KindNone {
		drawPreview(screen, catalog, snap.Held, x, y+20)
	}

	y += 70
	ebitenutil.DebugPrintAt(screen, "NEXT", x, y)
	for i, k := range snap.Next {
		drawPreview(screen, catalog, k, x, y+20+i*(3*PreviewSize))
	}
}

func drawPreview(screen *ebiten.Image, catalog *piece.Catalog, k piece.Kind, x, y int) {
	clr := catalog.Color(k)
	for r, c := range catalog.Shape(k).Cells() {
		px := float32(x + c*PreviewSize)
		py := float32(y + r*PreviewSize)
		vector.DrawFilledRect(screen, px, py, PreviewSize, PreviewSize, clr, false)
		vector.StrokeRect(screen, px, py, PreviewSize, PreviewSize, 1, outlineColor, false)
	}
}

func drawBanner(screen *ebiten.Image, snap engine.Snapshot, title, hint string) {
	width := float32(snap.Cols * CellSize)
	y := offsetY + snap.Rows*CellSize/2 - 20
	vector.DrawFilledRect(screen, offsetX, float32(y), width, 48, shadeColor, false)
	ebitenutil.DebugPrintAt(screen, title, offsetX+20, y+8)
	ebitenutil.DebugPrintAt(screen, hint, offsetX+20, y+26)
}

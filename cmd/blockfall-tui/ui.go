package main

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/piece"
)

const (
	frameInterval = 16 * time.Millisecond
	cellWidth     = 2
	originX       = 1
	originY       = 1
	panelGap      = 3
)

// canvas is the part of tcell.Screen the renderer draws through.
type canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Clear()
	Show()
}

type ui struct {
	screen  tcell.Screen
	canvas  canvas
	driver  *driver.Driver
	catalog *piece.Catalog
	cmds    driver.Commands
}

func newUI(screen tcell.Screen, d *driver.Driver) *ui {
	catalog := d.Config().Catalog
	if catalog == nil {
		catalog = piece.Standard()
	}
	return &ui{
		screen:  screen,
		canvas:  screen,
		driver:  d,
		catalog: catalog,
	}
}

func (u *ui) run(ctx context.Context) {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				// screen finalized
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if !u.handle(ev) {
				return
			}
		case <-ticker.C:
			u.cmds.Flush(u.driver)
			u.draw(u.driver.Snapshot())
		}
	}
}

// handle queues input for the next frame. It returns false on quit.
func (u *ui) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return false
		}
		u.cmds.Push(commandFor(ev))
	case *tcell.EventResize:
		u.screen.Sync()
	}
	return true
}

func (u *ui) styleFor(k piece.Kind) tcell.Style {
	return tcell.StyleDefault.Foreground(rgb(u.catalog.Color(k)))
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (u *ui) draw(snap engine.Snapshot) {
	u.canvas.Clear()

	border := tcell.StyleDefault.Foreground(tcell.ColorGray)
	width := snap.Cols*cellWidth + 2
	height := snap.Rows + 2

	for x := 0; x < width; x++ {
		u.canvas.SetContent(originX-1+x, originY-1, '─', nil, border)
		u.canvas.SetContent(originX-1+x, originY+snap.Rows, '─', nil, border)
	}
	for y := 0; y < height; y++ {
		u.canvas.SetContent(originX-1, originY-1+y, '│', nil, border)
		u.canvas.SetContent(originX+snap.Cols*cellWidth, originY-1+y, '│', nil, border)
	}
	u.canvas.SetContent(originX-1, originY-1, '┌', nil, border)
	u.canvas.SetContent(originX+snap.Cols*cellWidth, originY-1, '┐', nil, border)
	u.canvas.SetContent(originX-1, originY+snap.Rows, '└', nil, border)
	u.canvas.SetContent(originX+snap.Cols*cellWidth, originY+snap.Rows, '┘', nil, border)

	for r, row := range snap.Field {
		for c, k := range row {
			if k != piece.KindNone {
				u.drawCell(r, c, '█', u.styleFor(k))
			}
		}
	}

	if snap.HasActive && !snap.GameOver() {
		ghost := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
		for r, c := range snap.Active.Shape.Cells() {
			u.drawCell(snap.Ghost.Row+r, snap.Ghost.Col+c, '░', ghost)
		}
	}
	if snap.HasActive {
		style := u.styleFor(snap.Active.Kind)
		for r, c := range snap.Active.Cells() {
			u.drawCell(r, c, '█', style)
		}
	}

	u.drawPanel(snap, originX+width+panelGap)

	switch {
	case snap.GameOver():
		u.drawOverlay(snap, "GAME OVER", "R restart  Q quit")
	case snap.Paused():
		u.drawOverlay(snap, "PAUSED", "P resume")
	}

	u.canvas.Show()
}

func (u *ui) drawCell(r, c int, ch rune, style tcell.Style) {
	if r < 0 {
		return
	}
	x := originX + c*cellWidth
	for i := range cellWidth {
		u.canvas.SetContent(x+i, originY+r, ch, nil, style)
	}
}

func (u *ui) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		u.canvas.SetContent(x+i, y, ch, nil, style)
	}
}

func (u *ui) drawPanel(snap engine.Snapshot, x int) {
	label := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	value := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	y := originY
	u.drawText(x, y, "SCORE", label)
	u.drawText(x, y+1, fmt.Sprintf("%d", snap.Score), value)
	u.drawText(x, y+3, "LINES", label)
	u.drawText(x, y+4, fmt.Sprintf("%d", snap.Lines), value)

	y += 6
	u.drawText(x, y, "HOLD", label)
	if snap.Held != piece.KindNone {
		u.drawPreview(x, y+1, snap.Held)
	}

	y += 4
	u.drawText(x, y, "NEXT", label)
	for i, k := range snap.Next {
		u.drawPreview(x, y+1+i*3, k)
	}
}

func (u *ui) drawPreview(x, y int, k piece.Kind) {
	style := u.styleFor(k)
	for r, c := range u.catalog.Shape(k).Cells() {
		u.canvas.SetContent(x+c*cellWidth, y+r, '█', nil, style)
		u.canvas.SetContent(x+c*cellWidth+1, y+r, '█', nil, style)
	}
}

func (u *ui) drawOverlay(snap engine.Snapshot, title, hint string) {
	y := originY + snap.Rows/2 - 1
	center := originX + snap.Cols*cellWidth/2

	u.drawText(center-len(title)/2, y, title, tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
	u.drawText(center-len(hint)/2, y+2, hint, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

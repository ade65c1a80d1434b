package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/piece"
)

// debugPanel is an ImGui window with driver and engine statistics.
type debugPanel struct {
	historyTicks int
	tickHistory  []float32
	tickIndex    int
	lastTicks    int64
}

func newDebugPanel(historyTicks int) *debugPanel {
	return &debugPanel{
		historyTicks: historyTicks,
		tickHistory:  make([]float32, historyTicks),
	}
}

func (p *debugPanel) Render(d *driver.Driver) {
	stats := d.Stats()
	if stats.Ticks != p.lastTicks {
		p.lastTicks = stats.Ticks
		p.tickHistory[p.tickIndex] = float32(stats.LastDuration.Microseconds())
		p.tickIndex = (p.tickIndex + 1) % p.historyTicks
	}

	imgui.SetNextWindowPosV(imgui.NewVec2(420, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(290, 420), imgui.CondOnce)

	if !imgui.BeginV("Blockfall Debug", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Game: %d", stats.Game))
	imgui.Text(fmt.Sprintf("Ticks: %d (interval %s)", stats.Ticks, d.Config().TickInterval()))
	imgui.Text(fmt.Sprintf("Tick Time: avg %s min %s max %s", stats.AvgDuration, stats.MinDuration, stats.MaxDuration))

	imgui.Separator()
	imgui.Text("Tick Time Graph (us)")
	imgui.PlotLinesFloatPtr("##ticktime", &p.tickHistory[0], int32(len(p.tickHistory)))

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Pieces: %d  Locks: %d  Holds: %d", stats.Engine.Pieces, stats.Engine.Locks, stats.Engine.Holds))

	if imgui.TreeNodeStr("Commands") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("CommandTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Command")
			imgui.TableSetupColumn("Accepted")
			imgui.TableHeadersRow()

			for _, cmd := range driver.AllCommands() {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(cmd.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", stats.Commands[cmd]))
			}

			imgui.EndTable()
		}
		imgui.Text(fmt.Sprintf("Rejected: %d", stats.Rejected))
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Spawns") {
		for _, k := range piece.Kinds() {
			imgui.BulletText(fmt.Sprintf("%s: %d", k, stats.Engine.Spawned[k]))
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Clears") {
		for rows := 1; rows <= 4; rows++ {
			imgui.BulletText(fmt.Sprintf("%d rows: %d", rows, stats.Engine.Clears[rows]))
		}
		imgui.TreePop()
	}

	imgui.End()
}

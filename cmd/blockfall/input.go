package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/driver"
)

// Auto-repeat timing in update ticks (60 per second).
const (
	repeatDelay = 12
	repeatRate  = 3
)

type binding struct {
	keys    []ebiten.Key
	command driver.Command
	repeat  bool
}

var bindings = []binding{
	{keys: []ebiten.Key{ebiten.KeyArrowLeft}, command: driver.CommandMoveLeft, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowRight}, command: driver.CommandMoveRight, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowDown}, command: driver.CommandSoftDrop, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyX}, command: driver.CommandRotateCW},
	{keys: []ebiten.Key{ebiten.KeyZ}, command: driver.CommandRotateCCW},
	{keys: []ebiten.Key{ebiten.KeySpace}, command: driver.CommandHardDrop},
	{keys: []ebiten.Key{ebiten.KeyC}, command: driver.CommandHold},
	{keys: []ebiten.Key{ebiten.KeyP}, command: driver.CommandPause},
	{keys: []ebiten.Key{ebiten.KeyR}, command: driver.CommandRestart},
}

// pressed reports whether a key held for duration ticks fires this tick.
func pressed(duration int, repeat bool) bool {
	if duration == 1 {
		return true
	}
	if !repeat || duration < repeatDelay {
		return false
	}
	return (duration-repeatDelay)%repeatRate == 0
}

// collectInput queues the commands for keys that fire this tick.
func collectInput(cmds *driver.Commands) {
	for _, b := range bindings {
		for _, key := range b.keys {
			if pressed(inpututil.KeyPressDuration(key), b.repeat) {
				cmds.Push(b.command)
				break
			}
		}
	}
}

func quitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
}

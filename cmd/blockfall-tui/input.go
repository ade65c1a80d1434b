package main

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/driver"
)

var keyCommands = map[tcell.Key]driver.Command{
	tcell.KeyLeft:  driver.CommandMoveLeft,
	tcell.KeyRight: driver.CommandMoveRight,
	tcell.KeyDown:  driver.CommandSoftDrop,
	tcell.KeyUp:    driver.CommandRotateCW,
}

var runeCommands = map[rune]driver.Command{
	'x': driver.CommandRotateCW,
	'z': driver.CommandRotateCCW,
	' ': driver.CommandHardDrop,
	'c': driver.CommandHold,
	'p': driver.CommandPause,
	'r': driver.CommandRestart,
}

// commandFor maps a key press to a command, or CommandNone.
func commandFor(ev *tcell.EventKey) driver.Command {
	if ev.Key() == tcell.KeyRune {
		return runeCommands[unicode.ToLower(ev.Rune())]
	}
	return keyCommands[ev.Key()]
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return unicode.ToLower(ev.Rune()) == 'q'
	}
	return false
}

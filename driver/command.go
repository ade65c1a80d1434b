package driver

//go:generate go tool stringer -type=Command -trimprefix=Command

// Command is a player input routed through a Driver.
type Command uint8

const (
	CommandNone Command = iota
	CommandMoveLeft
	CommandMoveRight
	CommandSoftDrop
	CommandHardDrop
	CommandRotateCW
	CommandRotateCCW
	CommandHold
	// CommandPause toggles between paused and running.
	CommandPause
	CommandRestart
)

// commandCount is one past the last valid command.
const commandCount = int(CommandRestart) + 1

// AllCommands lists every command except CommandNone.
func AllCommands() []Command {
	out := make([]Command, 0, commandCount-1)
	for c := CommandMoveLeft; int(c) < commandCount; c++ {
		out = append(out, c)
	}
	return out
}

package application

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrUnknownCommand = errors.New("unknown command")

type Command int

const (
	CommandQuit Command = iota
	CommandPlay
	CommandReserve
	CommandUseReserved
	CommandSwapFront
	CommandSwapTriple
)

// Commands lists the commands in menu order, quit last.
var Commands = []Command{
	CommandPlay,
	CommandReserve,
	CommandUseReserved,
	CommandSwapFront,
	CommandSwapTriple,
	CommandQuit,
}

func (c Command) Valid() bool {
	return c >= CommandQuit && c <= CommandSwapTriple
}

func (c Command) Name() string {
	switch c {
	case CommandQuit:
		return "quit"
	case CommandPlay:
		return "play"
	case CommandReserve:
		return "reserve"
	case CommandUseReserved:
		return "use"
	case CommandSwapFront:
		return "swap-front"
	case CommandSwapTriple:
		return "swap-triple"
	default:
		return fmt.Sprintf("command(%d)", int(c))
	}
}

func (c Command) Label() string {
	switch c {
	case CommandQuit:
		return "Quit"
	case CommandPlay:
		return "Play piece (take the queue front)"
	case CommandReserve:
		return "Reserve piece (move the queue front to the stack)"
	case CommandUseReserved:
		return "Use reserved piece (take the stack top)"
	case CommandSwapFront:
		return "Swap queue front with stack top"
	case CommandSwapTriple:
		return "Swap first three queued with the three reserved"
	default:
		return c.Name()
	}
}

// MenuKey is the number typed at the menu prompt.
func (c Command) MenuKey() string {
	return strconv.Itoa(int(c))
}

func (c Command) String() string {
	return c.Name()
}

// ParseCommand accepts a menu number or a command name.
func ParseCommand(raw string) (Command, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty input", ErrUnknownCommand)
	}

	if n, err := strconv.Atoi(trimmed); err == nil {
		c := Command(n)
		if !c.Valid() {
			return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, raw)
		}
		return c, nil
	}

	switch trimmed {
	case "quit", "exit":
		return CommandQuit, nil
	case "play":
		return CommandPlay, nil
	case "reserve":
		return CommandReserve, nil
	case "use", "use-reserved":
		return CommandUseReserved, nil
	case "swap-front", "swap":
		return CommandSwapFront, nil
	case "swap-triple", "triple":
		return CommandSwapTriple, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, raw)
	}
}

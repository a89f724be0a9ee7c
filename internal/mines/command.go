package mines

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

type Command uint8

const (
	CmdNoop Command = iota
	CmdDig
	CmdToggleFlag
	CmdMoveUp
	CmdMoveDown
	CmdMoveLeft
	CmdMoveRight
	CmdSelectEasy
	CmdSelectMedium
	CmdSelectHard
	CmdRestart
	CmdQuit
)

var commandNames = map[Command]string{
	CmdNoop:         "noop",
	CmdDig:          "dig",
	CmdToggleFlag:   "flag",
	CmdMoveUp:       "up",
	CmdMoveDown:     "down",
	CmdMoveLeft:     "left",
	CmdMoveRight:    "right",
	CmdSelectEasy:   "easy",
	CmdSelectMedium: "medium",
	CmdSelectHard:   "hard",
	CmdRestart:      "restart",
	CmdQuit:         "quit",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}

// SelectPreset maps a preset id to the command that starts it.
func SelectPreset(p Preset) Command {
	switch p {
	case Easy:
		return CmdSelectEasy
	case Medium:
		return CmdSelectMedium
	case Hard:
		return CmdSelectHard
	}
	return CmdNoop
}

// Preset is the preset a select command starts, or 0 for other commands.
func (c Command) Preset() Preset {
	switch c {
	case CmdSelectEasy:
		return Easy
	case CmdSelectMedium:
		return Medium
	case CmdSelectHard:
		return Hard
	}
	return 0
}

// Execute applies one command. Commands that make no sense in the current
// state are ignored; once the game is over only restart, preset selection
// and quit do anything. Quit itself is left to the caller.
func (g *Game) Execute(cmd Command) (Outcome, error) {
	switch cmd {
	case CmdNoop, CmdQuit:
	case CmdDig:
		g.Dig()
	case CmdToggleFlag:
		g.ToggleFlag()
	case CmdMoveUp:
		g.Move(0, -1)
	case CmdMoveDown:
		g.Move(0, 1)
	case CmdMoveLeft:
		g.Move(-1, 0)
	case CmdMoveRight:
		g.Move(1, 0)
	case CmdSelectEasy, CmdSelectMedium, CmdSelectHard:
		if err := g.SelectPreset(cmd.Preset()); err != nil {
			return g.Result, err
		}
	case CmdRestart:
		if err := g.Restart(); err != nil {
			return g.Result, err
		}
	default:
		return g.Result, fmt.Errorf("unknown command %s", cmd)
	}

	Log.WithFields(logrus.Fields{
		"command": cmd.String(),
		"player":  Point{g.PlayerX, g.PlayerY},
		"result":  g.Result.String(),
		"flags":   g.FlagCount,
		"digged":  g.DiggedCount,
	}).Debug("executed command")

	return g.Result, nil
}

package gameplay

import (
	"strings"

	"github.com/leonelquinteros/gotext"

	engineinput "lifefutures/pkg/engine/input"
	"lifefutures/pkg/engine/world"
)

// ProcessIntent handles an input intent while a game is in progress.
// Returns true when the player asked to quit the program.
func ProcessIntent(c *Controller, intent engineinput.Intent) (quit bool) {
	s := c.session

	switch intent.Action {
	case engineinput.ActionNone:
		return false

	case engineinput.ActionQuit:
		return true

	case engineinput.ActionEndGame:
		c.EndSession()
		return false

	case engineinput.ActionHelp:
		for _, line := range helpLines() {
			logMessage(s, "%s", line)
		}
		return false

	case engineinput.ActionMoveNorth:
		c.MoveDirection(world.North)
		return false

	case engineinput.ActionMoveSouth:
		c.MoveDirection(world.South)
		return false

	case engineinput.ActionMoveEast:
		c.MoveDirection(world.East)
		return false

	case engineinput.ActionMoveWest:
		c.MoveDirection(world.West)
		return false
	}

	logMessage(s, "%s", gotext.Get("Unknown command. Press ACTION{?} for help."))
	return false
}

// helpActions are listed by the in-game help, one message each
var helpActions = []engineinput.Action{
	engineinput.ActionMoveNorth,
	engineinput.ActionMoveEast,
	engineinput.ActionMoveSouth,
	engineinput.ActionMoveWest,
	engineinput.ActionEndGame,
}

// helpLines describes the keys bound to each help action
func helpLines() []string {
	bindings := engineinput.GetBindingsByAction()
	lines := make([]string, 0, len(helpActions))
	for _, act := range helpActions {
		lines = append(lines, gotext.Get("ACTION{%s}: %s", engineinput.ActionName(act), strings.Join(bindings[act], ", ")))
	}
	return lines
}

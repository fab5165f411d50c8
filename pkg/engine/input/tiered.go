package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	// DeviceTerminal is the controlling terminal, in raw or line mode
	DeviceTerminal Device = iota
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement through a door
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Meta / UI
	ActionConfirm // Start game, activate menu item
	ActionEndGame // Give up the current game
	ActionHelp
	ActionQuit
)

// Intent is the high-level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "n", "arrow_up").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the representation after debouncing. Terminal reads are
// one key per call so nothing is dropped yet.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions. Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, compass letters, Vim)
	"arrow_up":    ActionMoveNorth,
	"north":       ActionMoveNorth,
	"n":           ActionMoveNorth,
	"k":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"south":       ActionMoveSouth,
	"s":           ActionMoveSouth,
	"j":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"west":        ActionMoveWest,
	"w":           ActionMoveWest,
	"h":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"east":        ActionMoveEast,
	"e":           ActionMoveEast,
	"l":           ActionMoveEast,

	"enter": ActionConfirm,
	"space": ActionConfirm,
	"":      ActionConfirm, // empty line in line mode

	"x":   ActionEndGame,
	"end": ActionEndGame,

	"?":    ActionHelp,
	"help": ActionHelp,

	// A lone Esc is read as its own chunk (see GetKey), so it quits at once.
	"quit":   ActionQuit,
	"q":      ActionQuit,
	"escape": ActionQuit,
}

// MapToIntent applies the bindings to a debounced input and returns an Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ReadIntent reads one key from the terminal and maps it to an intent.
func ReadIntent() Intent {
	raw := RawInput{
		Device:    DeviceTerminal,
		Code:      GetKey(),
		Timestamp: time.Now(),
	}
	return MapToIntent(NewDebouncedInput(raw))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionConfirm:
		return "Confirm"
	case ActionEndGame:
		return "End Game"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		if code == "" {
			continue
		}
		result[act] = append(result[act], code)
	}
	// Stable ordering so the help text doesn't flicker between frames.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

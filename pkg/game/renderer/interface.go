package renderer

import (
	engineinput "lifefutures/pkg/engine/input"
	"lifefutures/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleRoom
	StyleAction
	StyleActionShort
	StyleGood
	StyleBad
	StyleSubtle
	StylePlayer
	StyleVisited
	StyleTitle
)

// Renderer defines the interface for game rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, markup, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete frame for the session's current phase:
	// the start screen, the room with its doors, or the outcome
	RenderFrame(snap state.Snapshot)

	// GetInput blocks for the next input and returns it as an intent
	GetInput() engineinput.Intent

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(snap state.Snapshot) {
	if Current != nil {
		Current.RenderFrame(snap)
	}
}

// GetInput gets the next intent from the current renderer
func GetInput() engineinput.Intent {
	if Current != nil {
		return Current.GetInput()
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// ShowMessage displays a message outside the frame
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}

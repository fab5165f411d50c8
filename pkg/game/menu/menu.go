// Package menu provides a generic menu system for the game.
package menu

import (
	engineinput "lifefutures/pkg/engine/input"
	"lifefutures/pkg/game/renderer"
	"lifefutures/pkg/game/state"
)

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// IsSelectable returns whether this item can be selected.
	IsSelectable() bool
	// GetHelpText returns optional help text for this item.
	GetHelpText() string
}

// MenuHandler handles menu item selection and activation.
type MenuHandler interface {
	// OnSelect is called when an item is selected (navigated to).
	OnSelect(item MenuItem, index int)
	// OnActivate is called when an item is activated (e.g., Enter pressed).
	// Returns true if the menu should close, and any help text to display.
	OnActivate(item MenuItem, index int) (shouldClose bool, helpText string)
	// OnExit is called when the menu is left with quit.
	OnExit()
	// GetTitle returns the menu title.
	GetTitle() string
	// GetInstructions returns the menu instructions.
	GetInstructions(selected MenuItem) string
}

// MenuRenderer is an optional interface for renderers that draw the menu
// below the frame for the given snapshot.
type MenuRenderer interface {
	RenderMenu(snap state.Snapshot, items []MenuItem, selected int, helpText string, title string, instructions string)
}

// IntentSource supplies menu input. renderer.GetInput is used when nil.
type IntentSource func() engineinput.Intent

// RunMenu runs a menu over the given snapshot until an item closes it or the player quits.
func RunMenu(snap state.Snapshot, items []MenuItem, handler MenuHandler, next IntentSource) {
	if next == nil {
		next = renderer.GetInput
	}

	selected := firstSelectable(items)
	helpText := ""

	for {
		var selectedItem MenuItem
		if selected >= 0 && selected < len(items) {
			selectedItem = items[selected]
		}
		instructions := handler.GetInstructions(selectedItem)

		renderer.Clear()
		if mr, ok := renderer.Current.(MenuRenderer); ok {
			mr.RenderMenu(snap, items, selected, helpText, handler.GetTitle(), instructions)
		} else {
			renderMenuFallback(snap, items, selected, helpText, handler.GetTitle(), instructions)
		}

		intent := next()

		switch intent.Action {
		case engineinput.ActionMoveNorth:
			if i := stepSelectable(items, selected, -1); i != selected {
				selected = i
				helpText = ""
				handler.OnSelect(items[selected], selected)
			}
		case engineinput.ActionMoveSouth:
			if i := stepSelectable(items, selected, 1); i != selected {
				selected = i
				helpText = ""
				handler.OnSelect(items[selected], selected)
			}
		case engineinput.ActionConfirm:
			if selected >= 0 && selected < len(items) && items[selected].IsSelectable() {
				shouldClose, newHelpText := handler.OnActivate(items[selected], selected)
				helpText = newHelpText
				if shouldClose {
					return
				}
			}
		case engineinput.ActionQuit:
			handler.OnExit()
			return
		default:
			// Ignore other actions while in menu
		}
	}
}

// firstSelectable returns the index of the first selectable item, or 0
func firstSelectable(items []MenuItem) int {
	for i, item := range items {
		if item.IsSelectable() {
			return i
		}
	}
	return 0
}

// stepSelectable moves from selected in direction step (+1/-1) to the next
// selectable item, wrapping around. Returns selected if there is none.
func stepSelectable(items []MenuItem, selected, step int) int {
	n := len(items)
	for k := 1; k < n; k++ {
		i := ((selected+step*k)%n + n) % n
		if items[i].IsSelectable() {
			return i
		}
	}
	return selected
}

// renderMenuFallback renders the frame and prints the menu as plain lines.
func renderMenuFallback(snap state.Snapshot, items []MenuItem, selected int, helpText, title, instructions string) {
	renderer.RenderFrame(snap)
	renderer.ShowMessage(renderer.ApplyMarkup("=== %s ===", title))
	if instructions != "" {
		renderer.ShowMessage(renderer.ApplyMarkup("%s", instructions))
	}
	if helpText != "" {
		renderer.ShowMessage(renderer.ApplyMarkup("%s", helpText))
	}
	for i, item := range items {
		prefix := "  "
		if i == selected {
			prefix = "> "
		}
		label := item.GetLabel()
		if !item.IsSelectable() {
			label = renderer.StyleText(label, renderer.StyleSubtle)
		}
		renderer.ShowMessage(prefix + label)
	}
}

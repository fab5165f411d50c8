// Package menu provides the title and game-over menus using the generic menu system.
package menu

import (
	"github.com/leonelquinteros/gotext"

	"lifefutures/pkg/game/state"
)

// Choice is what the player picked from the title or game-over menu.
type Choice int

const (
	ChoicePlay Choice = iota
	ChoiceQuit
)

// ChoiceItem is a menu item that resolves to a Choice.
type ChoiceItem struct {
	Label  string
	Help   string
	Choice Choice
}

// GetLabel returns the display label for this menu item.
func (m *ChoiceItem) GetLabel() string {
	return m.Label
}

// IsSelectable returns whether this item can be selected.
func (m *ChoiceItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this menu item.
func (m *ChoiceItem) GetHelpText() string {
	return m.Help
}

// ChoiceMenuHandler handles a menu made of ChoiceItems.
type ChoiceMenuHandler struct {
	title  string
	items  []MenuItem
	chosen Choice
}

// NewMainMenuHandler creates the title screen menu.
func NewMainMenuHandler() *ChoiceMenuHandler {
	return &ChoiceMenuHandler{
		title:  gotext.Get("Life Futures"),
		chosen: ChoiceQuit,
		items: []MenuItem{
			&ChoiceItem{Label: gotext.Get("Start game"), Help: gotext.Get("Start a new walk from room C3"), Choice: ChoicePlay},
			&ChoiceItem{Label: gotext.Get("Quit"), Help: gotext.Get("Exit the game"), Choice: ChoiceQuit},
		},
	}
}

// NewEndMenuHandler creates the menu shown once a game has ended.
func NewEndMenuHandler() *ChoiceMenuHandler {
	return &ChoiceMenuHandler{
		title:  gotext.Get("Game over"),
		chosen: ChoiceQuit,
		items: []MenuItem{
			&ChoiceItem{Label: gotext.Get("Play again"), Help: gotext.Get("Start a new walk with a new exit"), Choice: ChoicePlay},
			&ChoiceItem{Label: gotext.Get("Quit"), Help: gotext.Get("Exit the game"), Choice: ChoiceQuit},
		},
	}
}

// GetTitle returns the menu title.
func (h *ChoiceMenuHandler) GetTitle() string {
	return h.title
}

// GetInstructions returns the menu instructions.
func (h *ChoiceMenuHandler) GetInstructions(selected MenuItem) string {
	ret := gotext.Get("Use up/down to select, Enter to activate, q to quit")
	if selected != nil && selected.GetHelpText() != "" {
		ret += "\n" + selected.GetHelpText()
	}
	return ret
}

// OnSelect is called when an item is selected.
func (h *ChoiceMenuHandler) OnSelect(item MenuItem, index int) {}

// OnActivate records the choice and closes the menu.
func (h *ChoiceMenuHandler) OnActivate(item MenuItem, index int) (shouldClose bool, helpText string) {
	if ci, ok := item.(*ChoiceItem); ok {
		h.chosen = ci.Choice
		return true, ""
	}
	return false, ""
}

// OnExit is called when the menu is left with quit.
func (h *ChoiceMenuHandler) OnExit() {
	h.chosen = ChoiceQuit
}

// GetMenuItems returns the menu items.
func (h *ChoiceMenuHandler) GetMenuItems() []MenuItem {
	return h.items
}

// Chosen returns the choice made. Quit if the menu was left without one.
func (h *ChoiceMenuHandler) Chosen() Choice {
	return h.chosen
}

// RunMainMenu shows the title screen and returns the player's choice.
func RunMainMenu(snap state.Snapshot, next IntentSource) Choice {
	handler := NewMainMenuHandler()
	RunMenu(snap, handler.GetMenuItems(), handler, next)
	return handler.Chosen()
}

// RunEndMenu shows the outcome screen and returns the player's choice.
func RunEndMenu(snap state.Snapshot, next IntentSource) Choice {
	handler := NewEndMenuHandler()
	RunMenu(snap, handler.GetMenuItems(), handler, next)
	return handler.Chosen()
}

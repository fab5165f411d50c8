package tui

import (
	"fmt"
	"strings"

	"lifefutures/pkg/game/menu"
	"lifefutures/pkg/game/state"
)

// RenderMenu draws the frame for snap with the menu underneath
func (t *TUIRenderer) RenderMenu(snap state.Snapshot, items []menu.MenuItem, selected int, helpText string, title string, instructions string) {
	t.RenderFrame(snap)

	fmt.Fprintln(t.out, t.colorTitle.Sprint(title))
	for i, item := range items {
		label := item.GetLabel()
		switch {
		case !item.IsSelectable():
			fmt.Fprintln(t.out, "   "+t.colorSubtle.Sprint(label))
		case i == selected:
			fmt.Fprintln(t.out, t.colorPlayer.Sprint(" > "+label))
		default:
			fmt.Fprintln(t.out, "   "+label)
		}
	}
	fmt.Fprintln(t.out)

	for _, line := range strings.Split(instructions, "\n") {
		if line != "" {
			fmt.Fprintln(t.out, t.colorSubtle.Sprint(line))
		}
	}
	if helpText != "" {
		fmt.Fprintln(t.out, t.FormatText("%s", helpText))
	}
}

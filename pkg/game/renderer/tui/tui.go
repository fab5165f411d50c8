package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	engineinput "lifefutures/pkg/engine/input"
	"lifefutures/pkg/engine/terminal"
	"lifefutures/pkg/engine/world"
	"lifefutures/pkg/game/renderer"
	"lifefutures/pkg/game/state"
)

// Minimap icons
const (
	PlayerIcon    = "@"
	IconUnvisited = "●"
	IconVisited   = "○"
	IconExit      = "⌂"
)

// doorLabelWidth is the space reserved either side of the room for West/East doors
const doorLabelWidth = 30

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	colorRoom        color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorGood        color.Style
	colorBad         color.Style
	colorSubtle      color.Style
	colorPlayer      color.Style
	colorVisited     color.Style
	colorTitle       color.Style
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates a TUI renderer writing to w
func NewWithWriter(w io.Writer) *TUIRenderer {
	return &TUIRenderer{out: w}
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() {
	t.colorRoom = color.Style{color.FgCyan, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorGood = color.Style{color.FgGreen, color.OpBold}
	t.colorBad = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorVisited = color.Style{color.FgBlue}
	t.colorTitle = color.Style{color.FgYellow, color.OpBold}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	terminal.Clear(t.out)
}

// GetInput reads one key and returns the matching intent
func (t *TUIRenderer) GetInput() engineinput.Intent {
	return engineinput.ReadIntent()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleRoom:
		return t.colorRoom.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleGood:
		return t.colorGood.Sprint(text)
	case renderer.StyleBad:
		return t.colorBad.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleVisited:
		return t.colorVisited.Sprint(text)
	case renderer.StyleTitle:
		return t.colorTitle.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	return renderer.ResolveMarkup(fmt.Sprintf(msg, args...), t.markup)
}

func (t *TUIRenderer) markup(function, operand string) (string, bool) {
	switch function {
	case "ROOM":
		return t.colorRoom.Sprint(operand), true
	case "ACTION":
		return t.colorActionShort.Sprint(operand[0:1]) + t.colorAction.Sprint(operand[1:]), true
	case "GOOD":
		return t.colorGood.Sprint(operand), true
	case "BAD":
		return t.colorBad.Sprint(operand), true
	case "SUBTLE":
		return t.colorSubtle.Sprint(operand), true
	}
	return "", false
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// RenderFrame renders the screen for the snapshot's phase
func (t *TUIRenderer) RenderFrame(snap state.Snapshot) {
	switch snap.Phase {
	case state.PhaseStart:
		t.printStartScreen(snap)
	case state.PhasePlaying:
		t.printGameScreen(snap)
	case state.PhaseEnded:
		t.printEndScreen(snap)
	}
}

// printString prints a formatted string
func (t *TUIRenderer) printString(msg string, a ...any) {
	fmt.Fprint(t.out, t.FormatText(msg, a...))
}

// printStringCenter prints a line centered on the terminal
func (t *TUIRenderer) printStringCenter(s string) {
	visible := len([]rune(color.ClearCode(s)))
	pad := (terminal.GetWidth() - visible) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintln(t.out, strings.Repeat(" ", pad)+s)
}

// printBullet prints a bulleted item
func (t *TUIRenderer) printBullet(txt string) {
	fmt.Fprint(t.out, "- "+t.FormatText("%s", txt)+"\n")
}

func (t *TUIRenderer) printTitle() {
	t.printStringCenter(t.colorTitle.Sprint(gotext.Get("L I F E   F U T U R E S")))
	fmt.Fprintln(t.out)
}

func (t *TUIRenderer) printHighscore(snap state.Snapshot) {
	if snap.HasHighscore {
		t.printString("%s\n", gotext.Get("Highscore: GOOD{%d}", snap.Highscore))
		return
	}
	t.printString("%s\n", gotext.Get("Highscore: SUBTLE{none yet}"))
}

func (t *TUIRenderer) printStartScreen(snap state.Snapshot) {
	t.printTitle()
	rules := snap.Rules
	t.printBullet(gotext.Get("You start in room ROOM{%s} of a 5x5 grid. The exit is hidden in one of the four corners.", state.StartRoom))
	t.printBullet(gotext.Get("Every door shows the life event waiting behind it. Walking through adds its value to your future points."))
	t.printBullet(gotext.Get("Every step also costs between 1 and 7 survival points. You start with %d.", rules.StartingSurvival))
	t.printBullet(gotext.Get("You have %d rounds. Run out of rounds or survival points and the game is over.", rules.MaxRounds))
	t.printBullet(gotext.Get("Reach the exit with as many future points as you can."))
	fmt.Fprintln(t.out)
	t.printHighscore(snap)
	fmt.Fprintln(t.out)
}

// doorFlavour returns the description line shown next to a door
func doorFlavour(dir world.Direction) string {
	switch dir {
	case world.North:
		return gotext.Get("A dark hallway stretches north...")
	case world.East:
		return gotext.Get("A faint glow shines from the east...")
	case world.South:
		return gotext.Get("You hear dripping water below...")
	case world.West:
		return gotext.Get("A cold draft comes from the west...")
	}
	return ""
}

// doorKey is the key shown for a direction
func doorKey(dir world.Direction) string {
	switch dir {
	case world.North:
		return "n"
	case world.East:
		return "e"
	case world.South:
		return "s"
	case world.West:
		return "w"
	}
	return "?"
}

// doorLines returns the lines describing the door in dir, or a wall
func (t *TUIRenderer) doorLines(snap state.Snapshot, dir world.Direction) []string {
	target, ok := world.Neighbor(snap.CurrentRoom, dir)
	if !ok {
		return []string{t.colorSubtle.Sprint(gotext.Get("# Wall #"))}
	}
	ev, offered := snap.DoorPreview[target]
	if !offered {
		return []string{t.colorSubtle.Sprint(gotext.Get("# Wall #"))}
	}

	value := t.colorGood.Sprint(renderer.FormatPoints(ev.Value))
	if ev.Value < 0 {
		value = t.colorBad.Sprint(renderer.FormatPoints(ev.Value))
	}
	return []string{
		t.FormatText("ACTION{%s} ROOM{%s}", doorKey(dir), target),
		t.colorSubtle.Sprint(doorFlavour(dir)),
		fmt.Sprintf("%s %s", ev.Text(), value),
	}
}

// padVisible pads s with spaces to width visible characters, on the left if right is set
func padVisible(s string, width int, right bool) string {
	visible := len([]rune(color.ClearCode(s)))
	if visible >= width {
		return s
	}
	if right {
		return strings.Repeat(" ", width-visible) + s
	}
	return s + strings.Repeat(" ", width-visible)
}

func (t *TUIRenderer) printGameScreen(snap state.Snapshot) {
	fmt.Fprint(t.out, t.colorAction.Sprint(gotext.Get("Round %d of %d", snap.Round, snap.Rules.MaxRounds)), "\n\n")
	t.printString("%s\n\n", gotext.Get("You are in room ROOM{%s}", snap.CurrentRoom))

	for _, line := range t.doorLines(snap, world.North) {
		t.printStringCenter(line)
	}
	fmt.Fprintln(t.out)

	west := t.doorLines(snap, world.West)
	east := t.doorLines(snap, world.East)
	roomBox := []string{"┌─────┐", "│ " + t.colorPlayer.Sprint(" "+snap.CurrentRoom.String()) + " │", "└─────┘"}
	for i := range roomBox {
		w, e := "", ""
		if i < len(west) {
			w = west[i]
		}
		if i < len(east) {
			e = east[i]
		}
		line := padVisible(w, doorLabelWidth, true) + "  " + roomBox[i] + "  " + e
		t.printStringCenter(line)
	}

	fmt.Fprintln(t.out)
	for _, line := range t.doorLines(snap, world.South) {
		t.printStringCenter(line)
	}
	fmt.Fprintln(t.out)

	t.printMinimap(snap)
	t.printStatusBar(snap)
	t.printPossibleActions()
	t.printMessagesPane(snap)

	fmt.Fprint(t.out, "\n> ")
}

// renderRoom returns the minimap icon for a room
func (t *TUIRenderer) renderRoom(snap state.Snapshot, r world.Room) string {
	if r == snap.CurrentRoom && snap.Phase != state.PhaseEnded {
		return t.colorPlayer.Sprint(PlayerIcon)
	}
	if snap.ExitKnown && r == snap.ExitRoom {
		return t.colorGood.Sprint(IconExit)
	}
	if r == snap.CurrentRoom {
		return t.colorPlayer.Sprint(PlayerIcon)
	}
	if snap.Visited.Has(r) {
		return t.colorVisited.Sprint(IconVisited)
	}
	return t.colorSubtle.Sprint(IconUnvisited)
}

// printMinimap renders the 5x5 grid with column numbers and row letters
func (t *TUIRenderer) printMinimap(snap state.Snapshot) {
	header := "  "
	for col := 1; col <= world.Cols; col++ {
		header += fmt.Sprintf(" %d", col)
	}
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(header))

	for row := 0; row < world.Rows; row++ {
		first, _ := world.NewRoom(row, 1)
		line := t.colorSubtle.Sprint(first.String()[:1]) + " "
		for col := 1; col <= world.Cols; col++ {
			r, _ := world.NewRoom(row, col)
			line += " " + t.renderRoom(snap, r)
		}
		fmt.Fprintln(t.out, line)
	}
}

// printStatusBar renders the points and round counters
func (t *TUIRenderer) printStatusBar(snap state.Snapshot) {
	fmt.Fprintln(t.out)

	survival := t.colorGood.Sprint(snap.SurvivalPoints)
	if snap.SurvivalPoints <= 5 {
		survival = t.colorBad.Sprint(snap.SurvivalPoints)
	}
	fmt.Fprint(t.out, t.colorSubtle.Sprint(gotext.Get("Survival: ")), survival, "   ")
	fmt.Fprint(t.out, t.colorSubtle.Sprint(gotext.Get("Future: ")), t.colorGood.Sprint(snap.FuturePoints), "   ")
	if snap.HasHighscore {
		fmt.Fprint(t.out, t.colorSubtle.Sprint(gotext.Get("Highscore: ")), snap.Highscore)
	}
	fmt.Fprintln(t.out)
}

// printPossibleActions prints the available actions
func (t *TUIRenderer) printPossibleActions() {
	fmt.Fprintln(t.out)
	t.printBullet(gotext.Get("ACTION{n}/ACTION{e}/ACTION{s}/ACTION{w} or arrows: \tGo through a door"))
	t.printBullet(gotext.Get("ACTION{x}: \tEnd the game   ACTION{?}: help   ACTION{q}: quit"))
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(snap state.Snapshot) {
	width := terminal.GetWidth()

	label := " " + gotext.Get("Messages") + " "
	labelLen := len([]rune(label))
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", sideLen)+label+strings.Repeat("─", rightLen)))

	if len(snap.Messages) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  "+gotext.Get("(no messages)")))
	} else {
		for _, msg := range snap.Messages {
			fmt.Fprintf(t.out, "  %s\n", msg)
		}
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}

// outcomeText returns the headline for how the session ended
func outcomeText(reason state.EndReason) string {
	switch reason {
	case state.EndWon:
		return gotext.Get("You made it out!")
	case state.EndDiedSurvival:
		return gotext.Get("You ran out of survival points.")
	case state.EndDiedRounds:
		return gotext.Get("You ran out of rounds.")
	case state.EndManual:
		return gotext.Get("You ended the game.")
	}
	return ""
}

func (t *TUIRenderer) printEndScreen(snap state.Snapshot) {
	t.printTitle()

	headline := t.colorBad.Sprint(outcomeText(snap.EndReason))
	if snap.EndReason == state.EndWon {
		headline = t.colorGood.Sprint(outcomeText(snap.EndReason))
	}
	t.printStringCenter(headline)
	fmt.Fprintln(t.out)

	t.printString("%s\n", gotext.Get("Future points: GOOD{%d}   Survival points: %d   Rounds: %d",
		snap.FuturePoints, snap.SurvivalPoints, snap.Round))
	if snap.ExitKnown {
		t.printString("%s\n", gotext.Get("The exit was in room ROOM{%s}.", snap.ExitRoom))
		if d := snap.CurrentRoom.Distance(snap.ExitRoom); d > 0 {
			t.printString("%s\n", gotext.GetN("You stopped SUBTLE{%d} room away from it.", "You stopped SUBTLE{%d} rooms away from it.", d, d))
		}
	}
	if snap.NewHighscore {
		t.printString("%s\n", gotext.Get("GOOD{New highscore!}"))
	} else {
		t.printHighscore(snap)
	}
	fmt.Fprintln(t.out)

	t.printMinimap(snap)
	fmt.Fprintln(t.out)

	if len(snap.Journey) > 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint(gotext.Get("Your journey:")))
		for _, step := range snap.Journey {
			value := t.colorGood.Sprint(renderer.FormatPoints(step.Event.Value))
			if step.Event.Value < 0 {
				value = t.colorBad.Sprint(renderer.FormatPoints(step.Event.Value))
			}
			fmt.Fprintf(t.out, "  %2d. %s  %s %s %s\n", step.Round, t.colorRoom.Sprint(step.Room),
				step.Event.Text(), value, t.colorBad.Sprint(renderer.FormatPoints(-step.Loss)))
		}
		fmt.Fprintln(t.out)
	}
}

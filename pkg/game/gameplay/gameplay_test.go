// Package gameplay tests session start, moves, scoring and how sessions end.
package gameplay

import (
	"errors"
	"math/rand"
	"testing"

	engineinput "lifefutures/pkg/engine/input"
	"lifefutures/pkg/engine/world"
	"lifefutures/pkg/game/events"
	"lifefutures/pkg/game/highscore"
	"lifefutures/pkg/game/state"
)

// constRand always returns the same index (clamped to n-1).
type constRand int

func (r constRand) Intn(n int) int {
	if int(r) >= n {
		return n - 1
	}
	return int(r)
}

// failingStore reads nothing and refuses writes.
type failingStore struct{}

func (failingStore) Get(string) (int, bool) { return 0, false }
func (failingStore) Set(string, int) error { return errors.New("disk full") }

func room(t *testing.T, s string) world.Room {
	t.Helper()
	r, err := world.ParseRoom(s)
	if err != nil {
		t.Fatalf("ParseRoom(%q): %v", s, err)
	}
	return r
}

// newStartedController starts a session where every draw picks index 0:
// exit A1, every event "promoted" (+10), every loss 1.
func newStartedController(t *testing.T, store highscore.Store) *Controller {
	t.Helper()
	c := NewController(constRand(0), store)
	c.newID = func() string { return "test-session" }
	c.StartSession()
	return c
}

func walk(t *testing.T, c *Controller, path ...string) {
	t.Helper()
	for _, p := range path {
		if !c.Move(room(t, p)) {
			t.Fatalf("Move(%s) = false, want true", p)
		}
	}
}

func TestStartSession_InitialState(t *testing.T) {
	c := newStartedController(t, highscore.NewMemoryStore())
	s := c.session

	if s.Phase != state.PhasePlaying {
		t.Errorf("Phase = %s, want playing", s.Phase)
	}
	if s.CurrentRoom.String() != "C3" {
		t.Errorf("CurrentRoom = %s, want C3", s.CurrentRoom)
	}
	if s.SurvivalPoints != 15 || s.FuturePoints != 10 {
		t.Errorf("points = survival %d future %d, want 15/10", s.SurvivalPoints, s.FuturePoints)
	}
	if s.Round != 0 {
		t.Errorf("Round = %d after start, want 0 (entering the start room is free)", s.Round)
	}
	if !world.IsCorner(s.ExitRoom) {
		t.Errorf("ExitRoom = %s, not a corner", s.ExitRoom)
	}
	if len(s.DoorPreview) != 4 {
		t.Fatalf("len(DoorPreview) = %d, want 4", len(s.DoorPreview))
	}
	for _, name := range []string{"B3", "D3", "C2", "C4"} {
		if _, ok := s.DoorPreview[room(t, name)]; !ok {
			t.Errorf("DoorPreview missing %s", name)
		}
	}
	if !s.Visited.Has(state.StartRoom) {
		t.Error("start room not marked visited")
	}
	if len(s.Journey) != 0 {
		t.Errorf("len(Journey) = %d after start, want 0", len(s.Journey))
	}
}

func TestStartSession_ExitPicksEachCorner(t *testing.T) {
	for i, want := range []string{"A1", "A5", "E1", "E5"} {
		c := NewController(constRand(i), nil)
		c.StartSession()
		if got := c.session.ExitRoom.String(); got != want {
			t.Errorf("exit with draw %d = %s, want %s", i, got, want)
		}
	}
}

func TestStartSession_ResetsPreviousGame(t *testing.T) {
	c := newStartedController(t, nil)
	walk(t, c, "B3", "B4")
	c.EndSession()

	c.StartSession()
	s := c.session
	if s.Round != 0 || s.CurrentRoom != state.StartRoom || s.EndReason != state.EndNone {
		t.Errorf("after restart: round %d room %s reason %s", s.Round, s.CurrentRoom, s.EndReason)
	}
	if len(s.Journey) != 0 || s.Visited.Size() != 1 {
		t.Errorf("after restart: journey %d visited %d, want 0/1", len(s.Journey), s.Visited.Size())
	}
}

func TestMove_RoundsAndScoring(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	c := NewController(rng, nil)
	c.SetRules(state.Rules{MaxRounds: 15, StartingSurvival: 1000, StartingFuture: 10})
	c.StartSession()
	s := c.session
	// Keep the walk away from the exit.
	if !c.ForceExit(room(t, "A1")) {
		t.Fatal("ForceExit(A1) = false")
	}

	validLoss := map[int]bool{1: true, 2: true, 3: true, 4: true, 7: true}
	path := []string{"C4", "D4", "D5", "E5", "D5", "C5", "C4", "C3"}
	for i, p := range path {
		target := room(t, p)
		previewed, ok := s.DoorPreview[target]
		if !ok {
			t.Fatalf("step %d: %s not offered as a door", i, p)
		}
		round, survival, future := s.Round, s.SurvivalPoints, s.FuturePoints

		c.Move(target)

		if s.Round != round+1 {
			t.Errorf("step %d: Round = %d, want %d", i, s.Round, round+1)
		}
		if loss := survival - s.SurvivalPoints; !validLoss[loss] {
			t.Errorf("step %d: survival loss %d not in {1,2,3,4,7}", i, loss)
		}
		if s.FuturePoints != future+previewed.Value {
			t.Errorf("step %d: FuturePoints = %d, want %d", i, s.FuturePoints, future+previewed.Value)
		}
		if s.CurrentRoom != target {
			t.Errorf("step %d: CurrentRoom = %s, want %s", i, s.CurrentRoom, target)
		}
		if got, want := len(s.DoorPreview), len(world.Neighbors(target)); got != want {
			t.Errorf("step %d: len(DoorPreview) = %d, want %d", i, got, want)
		}
		for r := range s.DoorPreview {
			if r.Distance(target) != 1 {
				t.Errorf("step %d: preview for %s, not adjacent to %s", i, r, target)
			}
		}
	}
	if len(s.Journey) != len(path) {
		t.Errorf("len(Journey) = %d, want %d", len(s.Journey), len(path))
	}
}

func TestMove_WinScenario(t *testing.T) {
	store := highscore.NewMemoryStore()
	c := newStartedController(t, store)
	if !c.ForceExit(room(t, "A1")) {
		t.Fatal("ForceExit(A1) = false")
	}

	walk(t, c, "B3", "A3", "A2")
	if c.session.Phase != state.PhasePlaying {
		t.Fatalf("Phase = %s before reaching the exit", c.session.Phase)
	}
	walk(t, c, "A1")

	s := c.session
	if s.Phase != state.PhaseEnded || s.EndReason != state.EndWon {
		t.Fatalf("after reaching A1: %s/%s, want ended/won", s.Phase, s.EndReason)
	}
	if s.Round != 4 || s.SurvivalPoints != 11 || s.FuturePoints != 50 {
		t.Errorf("round %d survival %d future %d, want 4/11/50", s.Round, s.SurvivalPoints, s.FuturePoints)
	}
	if len(s.DoorPreview) != 0 {
		t.Errorf("len(DoorPreview) = %d after win, want 0", len(s.DoorPreview))
	}
	if v, ok := store.Get(highscore.Key); !ok || v != 50 {
		t.Errorf("stored highscore = (%d, %v), want (50, true)", v, ok)
	}
	if !s.NewHighscore {
		t.Error("NewHighscore = false on first win")
	}
	if c.Move(room(t, "A2")) {
		t.Error("Move after the game ended = true, want false")
	}
}

func TestMove_HighscoreOnlyWhenBeaten(t *testing.T) {
	cases := []struct {
		name      string
		stored    int
		wantStore int
		wantNew   bool
	}{
		{"lower stored score", 20, 50, true},
		{"equal stored score", 50, 50, false},
		{"higher stored score", 60, 60, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := highscore.NewMemoryStore()
			store.Set(highscore.Key, tc.stored)
			c := newStartedController(t, store)
			walk(t, c, "B3", "A3", "A2", "A1")

			if v, _ := store.Get(highscore.Key); v != tc.wantStore {
				t.Errorf("stored = %d, want %d", v, tc.wantStore)
			}
			if c.session.NewHighscore != tc.wantNew {
				t.Errorf("NewHighscore = %v, want %v", c.session.NewHighscore, tc.wantNew)
			}
			if hs, _ := c.Highscore(); hs != tc.wantStore {
				t.Errorf("Highscore() = %d, want %d", hs, tc.wantStore)
			}
		})
	}
}

func TestMove_SurvivalCheckedBeforeExit(t *testing.T) {
	store := highscore.NewMemoryStore()
	c := newStartedController(t, store)
	walk(t, c, "B3", "A3", "A2")
	c.session.SurvivalPoints = 1

	walk(t, c, "A1")

	s := c.session
	if s.EndReason != state.EndDiedSurvival {
		t.Errorf("EndReason = %s, want diedSurvival", s.EndReason)
	}
	if _, ok := store.Get(highscore.Key); ok {
		t.Error("highscore written for a lost game")
	}
}

func TestMove_SurvivalCheckedBeforeRounds(t *testing.T) {
	c := newStartedController(t, nil)
	c.session.Round = 15
	c.session.SurvivalPoints = 1

	walk(t, c, "B3")
	if c.session.EndReason != state.EndDiedSurvival {
		t.Errorf("EndReason = %s, want diedSurvival", c.session.EndReason)
	}
}

func TestMove_RoundLimit(t *testing.T) {
	c := NewController(constRand(0), nil)
	c.SetRules(state.Rules{MaxRounds: 15, StartingSurvival: 1000, StartingFuture: 10})
	c.StartSession()
	s := c.session

	for i := 1; i <= 15; i++ {
		target := "B3"
		if i%2 == 0 {
			target = "C3"
		}
		walk(t, c, target)
		if s.Phase != state.PhasePlaying {
			t.Fatalf("move %d: Phase = %s, want playing", i, s.Phase)
		}
		if s.Round != i {
			t.Fatalf("move %d: Round = %d", i, s.Round)
		}
	}

	walk(t, c, "C3")
	if s.Phase != state.PhaseEnded || s.EndReason != state.EndDiedRounds {
		t.Errorf("16th move: %s/%s, want ended/diedRounds", s.Phase, s.EndReason)
	}
	if s.Round != 16 {
		t.Errorf("Round = %d, want 16", s.Round)
	}
}

func TestMove_DefaultRulesRunOutOfSurvivalFirst(t *testing.T) {
	c := newStartedController(t, nil)
	for i := 0; i < 15 && c.session.IsPlaying(); i++ {
		target := "B3"
		if i%2 == 1 {
			target = "C3"
		}
		walk(t, c, target)
	}
	if c.session.EndReason != state.EndDiedSurvival || c.session.Round != 15 {
		t.Errorf("got %s at round %d, want diedSurvival at round 15", c.session.EndReason, c.session.Round)
	}
}

func TestMove_UsesPreviewOfTarget(t *testing.T) {
	c := newStartedController(t, nil)
	s := c.session
	target := room(t, "C4")
	s.DoorPreview[target] = events.LifeEvent{Description: "test", Value: -7}

	walk(t, c, "C4")
	if s.FuturePoints != 3 {
		t.Errorf("FuturePoints = %d, want 10 - 7 = 3", s.FuturePoints)
	}
	last := s.Journey[len(s.Journey)-1]
	if last.Event.Value != -7 || last.Loss != 1 || last.Room != target || last.Round != 1 {
		t.Errorf("journey step = %+v", last)
	}
}

func TestEndSession_Manual(t *testing.T) {
	store := highscore.NewMemoryStore()
	c := newStartedController(t, store)
	walk(t, c, "B3")
	survival, future := c.session.SurvivalPoints, c.session.FuturePoints

	if !c.EndSession() {
		t.Fatal("EndSession() = false while playing")
	}
	s := c.session
	if s.Phase != state.PhaseEnded || s.EndReason != state.EndManual {
		t.Errorf("%s/%s, want ended/manualEnd", s.Phase, s.EndReason)
	}
	if s.SurvivalPoints != survival || s.FuturePoints != future {
		t.Error("EndSession changed points")
	}
	if _, ok := store.Get(highscore.Key); ok {
		t.Error("EndSession wrote a highscore")
	}
	if c.EndSession() {
		t.Error("second EndSession() = true, want false")
	}
}

func TestForceExit_RejectsNonCorner(t *testing.T) {
	c := newStartedController(t, nil)
	if c.ForceExit(room(t, "B2")) {
		t.Error("ForceExit(B2) = true, want false")
	}
}

func TestHighscore_StoreFailureKeepsPlaying(t *testing.T) {
	c := newStartedController(t, failingStore{})
	walk(t, c, "B3", "A3", "A2", "A1")
	if c.session.EndReason != state.EndWon {
		t.Fatalf("EndReason = %s, want won", c.session.EndReason)
	}
	if hs, ok := c.Highscore(); !ok || hs != 50 {
		t.Errorf("Highscore() = (%d, %v), want (50, true)", hs, ok)
	}
}

func TestSnapshot_CarriesHighscore(t *testing.T) {
	store := highscore.NewMemoryStore()
	store.Set(highscore.Key, 33)
	c := NewController(constRand(0), store)

	snap := c.Snapshot()
	if snap.Phase != state.PhaseStart || !snap.HasHighscore || snap.Highscore != 33 {
		t.Errorf("snapshot = phase %s highscore %d/%v", snap.Phase, snap.Highscore, snap.HasHighscore)
	}
}

func TestProcessIntent(t *testing.T) {
	c := newStartedController(t, nil)

	if ProcessIntent(c, engineinput.Intent{Action: engineinput.ActionMoveNorth}) {
		t.Error("move north returned quit")
	}
	if c.session.CurrentRoom.String() != "B3" {
		t.Fatalf("after north: %s, want B3", c.session.CurrentRoom)
	}

	ProcessIntent(c, engineinput.Intent{Action: engineinput.ActionMoveNorth})
	ProcessIntent(c, engineinput.Intent{Action: engineinput.ActionMoveNorth})
	if c.session.CurrentRoom.String() != "A3" || c.session.Round != 2 {
		t.Errorf("walking into the north wall: room %s round %d, want A3/2", c.session.CurrentRoom, c.session.Round)
	}

	ProcessIntent(c, engineinput.Intent{Action: engineinput.ActionMoveWest})
	if c.session.CurrentRoom.String() != "A2" {
		t.Errorf("after west: %s, want A2", c.session.CurrentRoom)
	}

	ProcessIntent(c, engineinput.Intent{Action: engineinput.ActionEndGame})
	if c.session.EndReason != state.EndManual {
		t.Errorf("EndReason = %s, want manualEnd", c.session.EndReason)
	}

	if !ProcessIntent(c, engineinput.Intent{Action: engineinput.ActionQuit}) {
		t.Error("quit intent did not return quit")
	}
}

func TestProcessIntent_HelpListsBindings(t *testing.T) {
	c := newStartedController(t, nil)
	ProcessIntent(c, engineinput.Intent{Action: engineinput.ActionHelp})

	want := []string{
		"Move North: arrow_up, k, n, north",
		"Move East: arrow_right, e, east, l",
		"Move South: arrow_down, j, s, south",
		"Move West: arrow_left, h, w, west",
		"End Game: end, x",
	}
	got := c.session.Messages
	if len(got) != len(want) {
		t.Fatalf("Messages = %q, want %d help lines", got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Messages[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if c.session.Round != 0 {
		t.Errorf("help used a round: Round = %d", c.session.Round)
	}
}

// Package gameplay provides the game's transition logic: starting a session,
// moving through doors, scoring, and deciding how a session ends.
package gameplay

import (
	"log"

	"github.com/google/uuid"
	"github.com/leonelquinteros/gotext"

	"lifefutures/pkg/engine/world"
	"lifefutures/pkg/game/events"
	"lifefutures/pkg/game/highscore"
	"lifefutures/pkg/game/renderer"
	"lifefutures/pkg/game/state"
)

// Controller owns the session and is the only thing that mutates it.
type Controller struct {
	rng   events.Rand
	store highscore.Store
	rules state.Rules
	newID func() string

	session *state.Session

	highscore    int
	hasHighscore bool
}

// NewController creates a controller on the start screen and reads the
// stored highscore once.
func NewController(rng events.Rand, store highscore.Store) *Controller {
	c := &Controller{
		rng:     rng,
		store:   store,
		rules:   state.DefaultRules(),
		newID:   uuid.NewString,
		session: state.NewSession(),
	}
	if store != nil {
		c.highscore, c.hasHighscore = store.Get(highscore.Key)
	}
	return c
}

// SetRules changes the rules used by the next StartSession
func (c *Controller) SetRules(rules state.Rules) {
	c.rules = rules
}

// Highscore returns the best stored score and whether there is one
func (c *Controller) Highscore() (int, bool) {
	return c.highscore, c.hasHighscore
}

// Snapshot returns a read-only copy of the session for rendering
func (c *Controller) Snapshot() state.Snapshot {
	snap := c.session.Snapshot()
	snap.Highscore = c.highscore
	snap.HasHighscore = c.hasHighscore
	return snap
}

// StartSession begins a fresh game in the start room. Entering the start
// room is free: no event is applied and the round counter stays at zero.
func (c *Controller) StartSession() {
	s := c.session
	s.Reset(c.newID(), c.rules)

	corners := world.Corners()
	s.ExitRoom = corners[c.rng.Intn(len(corners))]

	logMessage(s, "%s", gotext.Get("You wake up in room ROOM{%s}. Somewhere in a corner is the way out.", s.CurrentRoom))
	enterRoom(c, s.CurrentRoom)

	log.Printf("session %s: started in %s, exit %s", s.ID, s.CurrentRoom, s.ExitRoom)
}

// EndSession gives up the current game. No points change and the
// highscore is left alone. Returns false if no game is in progress.
func (c *Controller) EndSession() bool {
	s := c.session
	if !s.IsPlaying() {
		return false
	}
	s.End(state.EndManual)
	logMessage(s, "%s", gotext.Get("You stopped walking."))
	log.Printf("session %s: ended by player at round %d", s.ID, s.Round)
	return true
}

// ForceExit fixes the exit to the given corner for the running session.
// Returns false if room is not a corner or no game is in progress.
func (c *Controller) ForceExit(room world.Room) bool {
	if !world.IsCorner(room) || !c.session.IsPlaying() {
		return false
	}
	c.session.ExitRoom = room
	return true
}

// finish ends the session and records a winning score
func (c *Controller) finish(reason state.EndReason) {
	s := c.session
	s.End(reason)

	switch reason {
	case state.EndWon:
		logMessage(s, "%s", gotext.Get("You found the exit in ROOM{%s} with GOOD{%d} future points!", s.CurrentRoom, s.FuturePoints))
		c.recordWin()
	case state.EndDiedSurvival:
		logMessage(s, "%s", gotext.Get("You ran out of survival points."))
	case state.EndDiedRounds:
		logMessage(s, "%s", gotext.Get("You ran out of time after BAD{%d} rounds.", s.Rules.MaxRounds))
	}

	log.Printf("session %s: ended %s at round %d, future %d, survival %d",
		s.ID, reason, s.Round, s.FuturePoints, s.SurvivalPoints)
}

// recordWin writes the score back when it beats the stored highscore
func (c *Controller) recordWin() {
	s := c.session
	if c.hasHighscore && s.FuturePoints <= c.highscore {
		return
	}

	c.highscore = s.FuturePoints
	c.hasHighscore = true
	s.NewHighscore = true
	logMessage(s, "%s", gotext.Get("New highscore!"))

	if c.store == nil {
		return
	}
	if err := c.store.Set(highscore.Key, s.FuturePoints); err != nil {
		log.Printf("session %s: saving highscore: %v", s.ID, err)
		return
	}
	log.Printf("session %s: highscore %d saved", s.ID, s.FuturePoints)
}

// logMessage adds a formatted message to the session's message log
func logMessage(s *state.Session, msg string, a ...any) {
	formatted := renderer.ApplyMarkup(msg, a...)
	s.AddMessage(formatted)
}

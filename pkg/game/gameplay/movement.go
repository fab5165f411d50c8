package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"lifefutures/pkg/engine/world"
	"lifefutures/pkg/game/events"
	"lifefutures/pkg/game/renderer"
	"lifefutures/pkg/game/state"
)

// Move takes the door to target. The caller only offers rooms from the door
// preview, so adjacency is not checked again here. Returns false if no game
// is in progress.
//
// The event applied is the one previewed for target when the current room
// was entered; previews for every door are redrawn on arrival.
func (c *Controller) Move(target world.Room) bool {
	s := c.session
	if !s.IsPlaying() {
		return false
	}

	s.Round++

	loss := events.DrawSurvivalLoss(c.rng)
	ev := s.DoorPreview[target]
	s.FuturePoints += ev.Value
	s.SurvivalPoints -= loss
	s.Journey = append(s.Journey, state.Step{
		Round: s.Round,
		Room:  target,
		Event: ev,
		Loss:  loss,
	})

	logMessage(s, "ROOM{%s}: %s", target, ev.Text())
	logMessage(s, "%s", gotext.Get("Future %s, survival %s.", markPoints(ev.Value), markPoints(-loss)))

	s.CurrentRoom = target

	switch {
	case s.SurvivalPoints <= 0:
		s.Visited.Put(target)
		c.finish(state.EndDiedSurvival)
	case s.Round > s.Rules.MaxRounds:
		s.Visited.Put(target)
		c.finish(state.EndDiedRounds)
	case target == s.ExitRoom:
		s.Visited.Put(target)
		c.finish(state.EndWon)
	default:
		enterRoom(c, target)
	}
	return true
}

// MoveDirection moves through the door in dir. Returns false when there is
// no door that way.
func (c *Controller) MoveDirection(dir world.Direction) bool {
	s := c.session
	if !s.IsPlaying() {
		return false
	}
	target, ok := world.Neighbor(s.CurrentRoom, dir)
	if !ok {
		logMessage(s, "%s", gotext.Get("There is only a wall to the %s.", dir))
		return false
	}
	if _, offered := s.DoorPreview[target]; !offered {
		return false
	}
	return c.Move(target)
}

// enterRoom marks the room visited and draws a fresh event for every door
func enterRoom(c *Controller, room world.Room) {
	s := c.session
	s.Visited.Put(room)

	preview := make(state.DoorPreview, 4)
	for _, dir := range world.AllDirections() {
		n, ok := world.Neighbor(room, dir)
		if !ok {
			continue
		}
		preview[n] = events.Draw(c.rng)
	}
	s.DoorPreview = preview
}

// markPoints wraps a point change in GOOD{} or BAD{} markup
func markPoints(v int) string {
	if v < 0 {
		return "BAD{" + renderer.FormatPoints(v) + "}"
	}
	return "GOOD{" + renderer.FormatPoints(v) + "}"
}

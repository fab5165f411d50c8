package state

import (
	"lifefutures/pkg/engine/world"
	"lifefutures/pkg/game/events"
)

// Default game rules
const (
	MaxRounds        = 15
	StartingSurvival = 15
	StartingFuture   = 10
)

const maxMessages = 5

// Rules are the numbers a session starts from and ends at
type Rules struct {
	MaxRounds        int
	StartingSurvival int
	StartingFuture   int
}

// DefaultRules returns the standard rules
func DefaultRules() Rules {
	return Rules{
		MaxRounds:        MaxRounds,
		StartingSurvival: StartingSurvival,
		StartingFuture:   StartingFuture,
	}
}

// StartRoom is where every session begins
var StartRoom = world.MustParseRoom("C3")

// Phase is the screen the game is on
type Phase int

// Phases
const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseEnded
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// EndReason says why a session ended
type EndReason int

// End reasons
const (
	EndNone EndReason = iota
	EndWon
	EndDiedSurvival
	EndDiedRounds
	EndManual
)

// String returns the end reason name
func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "none"
	case EndWon:
		return "won"
	case EndDiedSurvival:
		return "diedSurvival"
	case EndDiedRounds:
		return "diedRounds"
	case EndManual:
		return "manualEnd"
	default:
		return "unknown"
	}
}

// DoorPreview maps each reachable neighbouring room to the event behind its door
type DoorPreview map[world.Room]events.LifeEvent

// Step records one resolved move
type Step struct {
	Round int
	Room  world.Room
	Event events.LifeEvent
	Loss  int
}

// Session is the state of one game, from start screen to outcome
type Session struct {
	ID    string
	Rules Rules

	CurrentRoom world.Room
	ExitRoom    world.Room

	Round          int
	SurvivalPoints int
	FuturePoints   int

	DoorPreview DoorPreview

	Phase     Phase
	EndReason EndReason

	// NewHighscore is set when the session's win beat the stored highscore
	NewHighscore bool

	Messages []string
	Visited  world.RoomSet
	Journey  []Step
}

// NewSession creates a session on the start screen
func NewSession() *Session {
	return &Session{
		Rules:       DefaultRules(),
		CurrentRoom: StartRoom,
		DoorPreview: make(DoorPreview),
		Phase:       PhaseStart,
		Messages:    make([]string, 0),
		Visited:     world.NewRoomSet(),
	}
}

// Reset puts the session back to the initial playing values. The caller
// chooses the exit and generates the first door previews.
func (s *Session) Reset(id string, rules Rules) {
	s.ID = id
	s.Rules = rules
	s.CurrentRoom = StartRoom
	s.Round = 0
	s.SurvivalPoints = rules.StartingSurvival
	s.FuturePoints = rules.StartingFuture
	s.NewHighscore = false
	s.DoorPreview = make(DoorPreview)
	s.Phase = PhasePlaying
	s.EndReason = EndNone
	s.Visited = world.NewRoomSet()
	s.Journey = nil
	s.ClearMessages()
}

// End moves the session to the ended phase. Previews are dropped since no more doors can be taken.
func (s *Session) End(reason EndReason) {
	s.Phase = PhaseEnded
	s.EndReason = reason
	s.DoorPreview = make(DoorPreview)
}

// IsPlaying returns true while moves are accepted
func (s *Session) IsPlaying() bool {
	return s.Phase == PhasePlaying
}

// Doors returns the rooms currently offered as doors, in North/East/South/West order
func (s *Session) Doors() []world.Room {
	var doors []world.Room
	for _, dir := range world.AllDirections() {
		n, ok := world.Neighbor(s.CurrentRoom, dir)
		if !ok {
			continue
		}
		if _, offered := s.DoorPreview[n]; offered {
			doors = append(doors, n)
		}
	}
	return doors
}

// AddMessage adds a message to the session's message log
func (s *Session) AddMessage(msg string) {
	s.Messages = append(s.Messages, msg)

	// Keep only the last maxMessages
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.Messages = make([]string, 0)
}

// Snapshot is a read-only copy of a session for rendering
type Snapshot struct {
	ID          string
	Rules       Rules
	CurrentRoom world.Room

	// ExitRoom is only filled in once the session has ended
	ExitRoom  world.Room
	ExitKnown bool

	Round          int
	SurvivalPoints int
	FuturePoints   int

	DoorPreview DoorPreview
	Doors       []world.Room

	Phase        Phase
	EndReason    EndReason
	NewHighscore bool

	Highscore    int
	HasHighscore bool

	Messages []string
	Visited  world.RoomSet
	Journey  []Step
}

// Snapshot copies the session. The exit stays hidden until the game has ended.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		ID:             s.ID,
		Rules:          s.Rules,
		CurrentRoom:    s.CurrentRoom,
		Round:          s.Round,
		SurvivalPoints: s.SurvivalPoints,
		FuturePoints:   s.FuturePoints,
		DoorPreview:    make(DoorPreview, len(s.DoorPreview)),
		Doors:          s.Doors(),
		Phase:          s.Phase,
		EndReason:      s.EndReason,
		NewHighscore:   s.NewHighscore,
		Messages:       append([]string(nil), s.Messages...),
		Visited:        world.NewRoomSet(),
		Journey:        append([]Step(nil), s.Journey...),
	}
	for room, ev := range s.DoorPreview {
		snap.DoorPreview[room] = ev
	}
	s.Visited.Each(func(r world.Room) {
		snap.Visited.Put(r)
	})
	if s.Phase == PhaseEnded {
		snap.ExitRoom = s.ExitRoom
		snap.ExitKnown = true
	}
	return snap
}

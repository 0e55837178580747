package core

import "strings"

// Phase is the session's position in the round state machine.
type Phase int

const (
	// PhaseWaitingForGuest means only the host is present.
	PhaseWaitingForGuest Phase = iota
	// PhaseQuestionOpen means a question is open for answer and guess.
	PhaseQuestionOpen
	// PhaseResultShown means the round is closed and the result was broadcast.
	PhaseResultShown
	// PhaseCompleted means all questions have been played.
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseWaitingForGuest:
		return "waiting_for_guest"
	case PhaseQuestionOpen:
		return "question_open"
	case PhaseResultShown:
		return "result_shown"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Session is one two-player game identified by its join code.
// All mutation happens on the hub goroutine, so Session carries no lock.
type Session struct {
	Code      string
	Category  string
	Questions []string
	Cursor    int
	Phase     Phase

	Host  *Participant
	Guest *Participant

	pendingHostAnswer string
	hostAnswered      bool
	pendingGuestGuess string
}

// RoundResult describes the outcome of one evaluated guess.
type RoundResult struct {
	HostAnswer string
	GuestGuess string
	Correct    bool
	Scores     []ScoreEntry
}

// NewSession builds a session holding only its host. The question list is
// fixed for the session's lifetime.
func NewSession(code, category string, qs []string, host *Participant) *Session {
	return &Session{
		Code:      code,
		Category:  category,
		Questions: qs,
		Phase:     PhaseWaitingForGuest,
		Host:      host,
	}
}

// Participants returns the present participants, host first.
func (s *Session) Participants() []*Participant {
	out := make([]*Participant, 0, 2)
	if s.Host != nil {
		out = append(out, s.Host)
	}
	if s.Guest != nil {
		out = append(out, s.Guest)
	}
	return out
}

// ParticipantByID returns the participant with the given connection identity.
func (s *Session) ParticipantByID(id string) *Participant {
	if s.Host != nil && s.Host.ID == id {
		return s.Host
	}
	if s.Guest != nil && s.Guest.ID == id {
		return s.Guest
	}
	return nil
}

// Full reports whether both slots are occupied.
func (s *Session) Full() bool {
	return s.Host != nil && s.Guest != nil
}

// AddGuest fills the guest slot. Returns ErrGameFull if both slots are taken.
func (s *Session) AddGuest(g *Participant) error {
	if s.Full() {
		return ErrGameFull
	}
	s.Guest = g
	return nil
}

// Start opens round zero once both participants are present and returns the
// first question. It is a no-op outside PhaseWaitingForGuest.
func (s *Session) Start() (string, bool) {
	if s.Phase != PhaseWaitingForGuest || !s.Full() || len(s.Questions) == 0 {
		return "", false
	}
	s.Cursor = 0
	s.Phase = PhaseQuestionOpen
	return s.Questions[0], true
}

// CurrentQuestion returns the question at the cursor.
func (s *Session) CurrentQuestion() string {
	if s.Cursor < 0 || s.Cursor >= len(s.Questions) {
		return ""
	}
	return s.Questions[s.Cursor]
}

// RecordHostAnswer stores the host's answer for the open round. The
// submission is ignored unless it comes from the host, the question is open,
// and no answer was recorded this round yet.
func (s *Session) RecordHostAnswer(participantID, answer string) bool {
	if s.Phase != PhaseQuestionOpen {
		return false
	}
	if s.Host == nil || s.Host.ID != participantID {
		return false
	}
	if s.hostAnswered {
		return false
	}
	s.pendingHostAnswer = answer
	s.hostAnswered = true
	return true
}

// HostAnswered reports whether an answer was recorded for the open round.
func (s *Session) HostAnswered() bool {
	return s.hostAnswered
}

// EvaluateGuess closes the open round with the guest's guess. The guess is
// ignored unless it comes from the guest, the question is open, and the host
// has already answered; comparing against a missing answer is undefined, so
// an early guess is dropped rather than evaluated.
//
// Matching is exact trimmed case-insensitive equality. A match increments the
// guest's score. On success the session enters PhaseResultShown.
func (s *Session) EvaluateGuess(participantID, guess string) (*RoundResult, bool) {
	if s.Phase != PhaseQuestionOpen {
		return nil, false
	}
	if s.Guest == nil || s.Guest.ID != participantID {
		return nil, false
	}
	if !s.hostAnswered {
		return nil, false
	}

	s.pendingGuestGuess = guess
	correct := strings.EqualFold(strings.TrimSpace(guess), strings.TrimSpace(s.pendingHostAnswer))
	if correct {
		s.Guest.Score++
	}
	s.Phase = PhaseResultShown

	return &RoundResult{
		HostAnswer: s.pendingHostAnswer,
		GuestGuess: guess,
		Correct:    correct,
		Scores:     s.Scores(),
	}, true
}

// Advance moves past the shown result. If questions remain it opens the next
// round and returns its question; otherwise it completes the session. It is a
// no-op outside PhaseResultShown.
func (s *Session) Advance() (question string, finished bool, ok bool) {
	if s.Phase != PhaseResultShown {
		return "", false, false
	}
	s.Cursor++
	if s.Cursor < len(s.Questions) {
		s.pendingHostAnswer = ""
		s.pendingGuestGuess = ""
		s.hostAnswered = false
		s.Phase = PhaseQuestionOpen
		return s.Questions[s.Cursor], false, true
	}
	s.Phase = PhaseCompleted
	return "", true, true
}

// Scores snapshots the current scores, host first.
func (s *Session) Scores() []ScoreEntry {
	out := make([]ScoreEntry, 0, 2)
	for _, p := range s.Participants() {
		out = append(out, ScoreEntry{ID: p.ID, Name: p.Name, Score: p.Score})
	}
	return out
}

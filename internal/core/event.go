package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventGameCreated confirms session creation to the host.
	EventGameCreated EventKind = iota
	// EventGameJoined confirms a successful join to the guest.
	EventGameJoined
	// EventGuestJoined tells the host who joined.
	EventGuestJoined
	// EventNextQuestion opens a round for both participants.
	EventNextQuestion
	// EventHostAnswered tells both participants the host has answered,
	// without revealing the answer.
	EventHostAnswered
	// EventRoundResult closes a round with the evaluated guess.
	EventRoundResult
	// EventGameOver delivers the final scores.
	EventGameOver
	// EventHostDisconnected tells the remaining participant the host left.
	EventHostDisconnected
	// EventError notifies a client about a domain error.
	EventError
)

// Event is sent to clients to describe what happened in the system.
type Event struct {
	Kind          EventKind
	Code          string
	ParticipantID string
	GuestName     string

	Question       string
	QuestionIndex  int
	TotalQuestions int

	HostAnswer string
	GuestGuess string
	Correct    bool
	Scores     []ScoreEntry

	Error *GameError
}

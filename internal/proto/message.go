package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	InboundTypeCreateGame = "createGame"
	InboundTypeJoinGame   = "joinGame"
	InboundTypeHostAnswer = "hostAnswer"
	InboundTypeGuestGuess = "guestGuess"

	OutboundTypeEvent = "event"
	OutboundTypeError = "error"
)

// Outbound event names.
const (
	EventNameGameCreated      = "gameCreated"
	EventNameGameJoined       = "gameJoined"
	EventNameGuestJoined      = "guestJoined"
	EventNameNextQuestion     = "nextQuestion"
	EventNameHostAnswered     = "hostAnswered"
	EventNameRoundResult      = "roundResult"
	EventNameGameOver         = "gameOver"
	EventNameHostDisconnected = "hostDisconnected"
)

// CreateGameData requests a new game with the sender as host.
type CreateGameData struct {
	PlayerName    string `json:"playerName"`
	Category      string `json:"category"`
	QuestionCount int    `json:"questionCount"`
}

// JoinGameData requests to join an existing game as guest.
type JoinGameData struct {
	Code       string `json:"code"`
	PlayerName string `json:"playerName"`
}

// HostAnswerData carries the host's private answer for the open round.
type HostAnswerData struct {
	Code   string `json:"code"`
	Answer string `json:"answer"`
}

// GuestGuessData carries the guest's guess for the open round.
type GuestGuessData struct {
	Code  string `json:"code"`
	Guess string `json:"guess"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	Event string `json:"event,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// ScoreEntry is one participant's score in result payloads.
type ScoreEntry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// EventGameCreated confirms session creation to the host.
type EventGameCreated struct {
	Code          string `json:"code"`
	ParticipantID string `json:"participantId"`
}

// EventGameJoined confirms a successful join to the guest.
type EventGameJoined struct {
	Code          string `json:"code"`
	ParticipantID string `json:"participantId"`
}

// EventGuestJoined tells the host who joined.
type EventGuestJoined struct {
	GuestName string `json:"guestName"`
}

// EventNextQuestion opens a round for both participants.
type EventNextQuestion struct {
	Question       string `json:"question"`
	QuestionIndex  int    `json:"questionIndex"`
	TotalQuestions int    `json:"totalQuestions"`
}

// EventRoundResult closes a round with the evaluated guess.
type EventRoundResult struct {
	HostAnswer string       `json:"hostAnswer"`
	GuestGuess string       `json:"guestGuess"`
	IsCorrect  bool         `json:"isCorrect"`
	Scores     []ScoreEntry `json:"scores"`
}

// EventGameOver delivers the final scores.
type EventGameOver struct {
	Scores []ScoreEntry `json:"scores"`
}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"message"`
}

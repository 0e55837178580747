package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandCreateGame opens a new session with the sender as host.
	CommandCreateGame CommandKind = iota
	// CommandJoinGame adds the sender to an existing session as guest.
	CommandJoinGame
	// CommandHostAnswer records the host's private answer for the open round.
	CommandHostAnswer
	// CommandGuestGuess submits the guest's guess for the open round.
	CommandGuestGuess

	// commandRegister and commandDisconnect are enqueued by the hub itself.
	commandRegister
	commandDisconnect
	// commandAdvanceRound is enqueued by the round timer.
	commandAdvanceRound
)

// Command represents an action requested by a client.
type Command struct {
	Kind          CommandKind
	Code          string
	PlayerName    string
	Category      string
	QuestionCount int
	Answer        string
	Guess         string
}

package core

// Role distinguishes the two participant slots in a session.
type Role int

const (
	// RoleHost creates the session and privately answers each question.
	RoleHost Role = iota
	// RoleGuest joins via code and guesses the host's answer.
	RoleGuest
)

func (r Role) String() string {
	if r == RoleHost {
		return "host"
	}
	return "guest"
}

// Participant is one of the two players bound to a session. The ID is the
// participant's connection identity and is unique per active connection.
type Participant struct {
	ID    string
	Name  string
	Role  Role
	Score int
}

// ScoreEntry is a participant's score as reported to clients.
type ScoreEntry struct {
	ID    string
	Name  string
	Score int
}

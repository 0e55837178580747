package core

// Client is a connected participant as seen by the core layer. Name is
// filled in by the hub once the client creates or joins a game.
type Client struct {
	ID       string
	Name     string
	Commands chan *Command
	Events   chan *Event
}

// NewClient constructs a client with initialized channels.
func NewClient(id string) *Client {
	return &Client{
		ID:       id,
		Commands: make(chan *Command, 8),
		Events:   make(chan *Event, 16),
	}
}

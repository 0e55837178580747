package core

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Kamzyled/Love-moyosola/internal/questions"
)

// stubSource returns questions in a fixed order so tests can assert on
// question text deterministically.
type stubSource struct {
	byCategory map[string][]string
}

func (s stubSource) Pick(category string, n int) ([]string, error) {
	qs, ok := s.byCategory[category]
	if !ok {
		return nil, fmt.Errorf("%w: %s", questions.ErrUnknownCategory, category)
	}
	if n <= 0 || n > len(qs) {
		return nil, fmt.Errorf("%w: %s", questions.ErrNotEnoughQuestions, category)
	}
	out := make([]string, n)
	copy(out, qs[:n])
	return out, nil
}

func testSource() stubSource {
	return stubSource{byCategory: map[string][]string{
		"romantic": {"first date?", "favorite dish?", "honeymoon city?"},
	}}
}

func startTestHub(t *testing.T, delay time.Duration) *Hub {
	t.Helper()

	hub := NewHub(testSource(), nil, delay, nil)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return ev
			}
		default:
			time.Sleep(5 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return nil
}

func mustNoEvent(t *testing.T, ch <-chan *Event, kind EventKind, wait time.Duration) {
	t.Helper()

	timeout := time.After(wait)
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return
			}
			if ev != nil && ev.Kind == kind {
				t.Fatalf("unexpected event: %+v", ev)
			}
		case <-timeout:
			return
		}
	}
}

// createGame registers a client, creates a session, and returns the code.
func createGame(t *testing.T, hub *Hub, c *Client, name, category string, count int) string {
	t.Helper()

	hub.RegisterClient(c)
	c.Commands <- &Command{
		Kind:          CommandCreateGame,
		PlayerName:    name,
		Category:      category,
		QuestionCount: count,
	}
	ev := mustEvent(t, c.Events, EventGameCreated)
	if ev.Code == "" || ev.ParticipantID != c.ID {
		t.Fatalf("unexpected gameCreated event: %+v", ev)
	}
	return ev.Code
}

// joinGame registers a client and joins it to an existing session.
func joinGame(t *testing.T, hub *Hub, c *Client, code, name string) {
	t.Helper()

	hub.RegisterClient(c)
	c.Commands <- &Command{Kind: CommandJoinGame, Code: code, PlayerName: name}
	ev := mustEvent(t, c.Events, EventGameJoined)
	if ev.Code != code || ev.ParticipantID != c.ID {
		t.Fatalf("unexpected gameJoined event: %+v", ev)
	}
}

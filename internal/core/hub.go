package core

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Kamzyled/Love-moyosola/internal/questions"
	"github.com/Kamzyled/Love-moyosola/internal/store"
)

// QuestionSource supplies the ordered question list for a new session.
type QuestionSource interface {
	Pick(category string, n int) ([]string, error)
}

// Accepted range for the per-game question count.
const (
	minQuestionCount = 1
	maxQuestionCount = 20
)

const defaultAdvanceDelay = 5 * time.Second

// envelope pairs a command with the client that issued it. Timer-driven
// commands carry a nil client.
type envelope struct {
	client *Client
	cmd    *Command
}

// Hub is the game coordinator. All session mutation is funneled through a
// single Run goroutine, so commands for the same session never race; the
// registry itself is locked because transports may look sessions up
// concurrently.
type Hub struct {
	registry  *Registry
	questions QuestionSource
	archive   store.Store
	delay     time.Duration
	log       zerolog.Logger

	inbox   chan envelope
	clients map[string]*Client
	timers  map[string]*time.Timer
}

// NewHub creates a hub. archive may be nil to disable match archiving and
// logger may be nil to disable logging.
func NewHub(src QuestionSource, archive store.Store, advanceDelay time.Duration, logger *zerolog.Logger) *Hub {
	if advanceDelay <= 0 {
		advanceDelay = defaultAdvanceDelay
	}
	l := zerolog.Nop()
	if logger != nil {
		l = *logger
	}
	return &Hub{
		registry:  NewRegistry(),
		questions: src,
		archive:   archive,
		delay:     advanceDelay,
		log:       l,
		inbox:     make(chan envelope, 256),
		clients:   make(map[string]*Client),
		timers:    make(map[string]*time.Timer),
	}
}

// Registry exposes the session registry for lookups outside the hub loop.
func (h *Hub) Registry() *Registry {
	return h.registry
}

// RegisterClient adds a client to the hub and starts forwarding its commands
// into the hub's inbox.
func (h *Hub) RegisterClient(c *Client) {
	h.inbox <- envelope{client: c, cmd: &Command{Kind: commandRegister}}
	go func() {
		for cmd := range c.Commands {
			h.inbox <- envelope{client: c, cmd: cmd}
			if cmd.Kind == commandDisconnect {
				return
			}
		}
	}()
}

// UnregisterClient signals that the client's connection has dropped. The
// disconnect is queued behind any commands the client already sent.
func (h *Hub) UnregisterClient(c *Client) {
	c.Commands <- &Command{Kind: commandDisconnect}
}

// Run processes commands until the context is canceled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.stopTimers()
			return
		case env := <-h.inbox:
			h.dispatch(ctx, env)
		}
	}
}

func (h *Hub) dispatch(ctx context.Context, env envelope) {
	// A fault while handling one session's command must not take down the
	// coordinator for every other session.
	defer func() {
		if r := recover(); r != nil {
			h.log.Error().Interface("panic", r).Msg("recovered from command handler panic")
		}
	}()

	switch env.cmd.Kind {
	case commandRegister:
		h.clients[env.client.ID] = env.client
	case commandDisconnect:
		h.handleDisconnect(env.client)
	case commandAdvanceRound:
		h.handleAdvance(ctx, env.cmd.Code)
	case CommandCreateGame:
		h.handleCreate(env.client, env.cmd)
	case CommandJoinGame:
		h.handleJoin(env.client, env.cmd)
	case CommandHostAnswer:
		h.handleHostAnswer(env.client, env.cmd)
	case CommandGuestGuess:
		h.handleGuestGuess(env.client, env.cmd)
	}
}

func (h *Hub) handleCreate(c *Client, cmd *Command) {
	name := strings.TrimSpace(cmd.PlayerName)
	if name == "" {
		h.sendError(c, ErrCodeInvalidRequest, "player name is required")
		return
	}
	if cmd.QuestionCount < minQuestionCount || cmd.QuestionCount > maxQuestionCount {
		h.sendError(c, ErrCodeInvalidRequest, "question count must be between 1 and 20")
		return
	}

	qs, err := h.questions.Pick(cmd.Category, cmd.QuestionCount)
	if err != nil {
		switch {
		case errors.Is(err, questions.ErrUnknownCategory):
			h.sendError(c, ErrCodeUnknownCategory, "unknown category: "+cmd.Category)
		case errors.Is(err, questions.ErrNotEnoughQuestions):
			h.sendError(c, ErrCodeInvalidRequest, err.Error())
		default:
			h.log.Error().Err(err).Str("category", cmd.Category).Msg("pick questions")
			h.sendError(c, ErrCodeInvalidRequest, "could not prepare questions")
		}
		return
	}

	host := &Participant{ID: c.ID, Name: name, Role: RoleHost}
	sess, err := h.registry.Insert(cmd.Category, qs, host)
	if err != nil {
		h.log.Error().Err(err).Msg("create session")
		h.sendError(c, ErrCodeInvalidRequest, "could not create game")
		return
	}
	c.Name = name

	h.log.Info().Str("code", sess.Code).Str("category", sess.Category).
		Int("questions", len(qs)).Str("host", name).Msg("game created")

	h.sendTo(c, &Event{Kind: EventGameCreated, Code: sess.Code, ParticipantID: c.ID})
}

func (h *Hub) handleJoin(c *Client, cmd *Command) {
	name := strings.TrimSpace(cmd.PlayerName)
	if name == "" {
		h.sendError(c, ErrCodeInvalidRequest, "player name is required")
		return
	}

	sess, ok := h.registry.Get(cmd.Code)
	if !ok {
		h.sendError(c, ErrCodeGameNotFound, "Game not found")
		return
	}
	guest := &Participant{ID: c.ID, Name: name, Role: RoleGuest}
	if err := sess.AddGuest(guest); err != nil {
		h.sendError(c, ErrCodeGameFull, "Game is full")
		return
	}
	c.Name = name

	h.log.Info().Str("code", sess.Code).Str("guest", name).Msg("guest joined")

	h.sendTo(c, &Event{Kind: EventGameJoined, Code: sess.Code, ParticipantID: c.ID})
	if host, ok := h.clients[sess.Host.ID]; ok {
		h.sendTo(host, &Event{Kind: EventGuestJoined, Code: sess.Code, GuestName: name})
	}

	if question, started := sess.Start(); started {
		h.broadcast(sess, &Event{
			Kind:           EventNextQuestion,
			Code:           sess.Code,
			Question:       question,
			QuestionIndex:  0,
			TotalQuestions: len(sess.Questions),
		})
	}
}

// Out-of-phase or misaddressed gameplay submissions are dropped without an
// error event, matching the leniency clients rely on.
func (h *Hub) handleHostAnswer(c *Client, cmd *Command) {
	sess, ok := h.registry.Get(cmd.Code)
	if !ok {
		return
	}
	if !sess.RecordHostAnswer(c.ID, cmd.Answer) {
		return
	}
	h.broadcast(sess, &Event{Kind: EventHostAnswered, Code: sess.Code})
}

func (h *Hub) handleGuestGuess(c *Client, cmd *Command) {
	sess, ok := h.registry.Get(cmd.Code)
	if !ok {
		return
	}
	result, ok := sess.EvaluateGuess(c.ID, cmd.Guess)
	if !ok {
		return
	}

	h.broadcast(sess, &Event{
		Kind:       EventRoundResult,
		Code:       sess.Code,
		HostAnswer: result.HostAnswer,
		GuestGuess: result.GuestGuess,
		Correct:    result.Correct,
		Scores:     result.Scores,
	})
	h.scheduleAdvance(sess.Code)
}

func (h *Hub) scheduleAdvance(code string) {
	h.timers[code] = time.AfterFunc(h.delay, func() {
		h.inbox <- envelope{cmd: &Command{Kind: commandAdvanceRound, Code: code}}
	})
}

func (h *Hub) handleAdvance(ctx context.Context, code string) {
	delete(h.timers, code)

	// The session may have been torn down while the timer was pending.
	sess, ok := h.registry.Get(code)
	if !ok {
		return
	}
	question, finished, ok := sess.Advance()
	if !ok {
		return
	}

	if !finished {
		h.broadcast(sess, &Event{
			Kind:           EventNextQuestion,
			Code:           sess.Code,
			Question:       question,
			QuestionIndex:  sess.Cursor,
			TotalQuestions: len(sess.Questions),
		})
		return
	}

	h.log.Info().Str("code", sess.Code).Msg("game completed")
	h.broadcast(sess, &Event{Kind: EventGameOver, Code: sess.Code, Scores: sess.Scores()})
	h.archiveMatch(ctx, sess)
}

func (h *Hub) handleDisconnect(c *Client) {
	delete(h.clients, c.ID)

	if sess, ok := h.registry.FindByParticipant(c.ID); ok {
		if sess.Host != nil && sess.Host.ID == c.ID {
			h.broadcast(sess, &Event{Kind: EventHostDisconnected, Code: sess.Code})
		}
		// Either participant leaving ends the game for both.
		h.teardown(sess.Code)
	}

	close(c.Events)
}

func (h *Hub) teardown(code string) {
	if t, ok := h.timers[code]; ok {
		t.Stop()
		delete(h.timers, code)
	}
	h.registry.Remove(code)
	h.log.Info().Str("code", code).Msg("session torn down")
}

func (h *Hub) archiveMatch(ctx context.Context, sess *Session) {
	if h.archive == nil || sess.Host == nil || sess.Guest == nil {
		return
	}
	saveCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	match := &store.Match{
		Code:          sess.Code,
		Category:      sess.Category,
		HostName:      sess.Host.Name,
		GuestName:     sess.Guest.Name,
		HostScore:     sess.Host.Score,
		GuestScore:    sess.Guest.Score,
		QuestionCount: len(sess.Questions),
		FinishedAt:    time.Now().UTC(),
	}
	if _, err := h.archive.SaveMatch(saveCtx, match); err != nil {
		h.log.Warn().Err(err).Str("code", sess.Code).Msg("archive match")
	}
}

func (h *Hub) broadcast(sess *Session, ev *Event) {
	for _, p := range sess.Participants() {
		if c, ok := h.clients[p.ID]; ok {
			h.sendTo(c, ev)
		}
	}
}

func (h *Hub) sendTo(c *Client, ev *Event) {
	select {
	case c.Events <- ev:
	default:
		// Drop if slow consumer.
	}
}

func (h *Hub) sendError(c *Client, code, msg string) {
	h.sendTo(c, &Event{Kind: EventError, Error: gameError(code, msg)})
}

func (h *Hub) stopTimers() {
	for code, t := range h.timers {
		t.Stop()
		delete(h.timers, code)
	}
}

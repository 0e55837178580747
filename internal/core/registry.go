package core

import (
	"crypto/rand"
	"errors"
	"fmt"
	"sync"
)

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 6
	codeAttempts = 10
)

var errCodeSpaceExhausted = errors.New("could not generate a free game code")

// Registry owns the live sessions keyed by join code. It is the only
// resource shared across connections, so it carries its own lock; individual
// sessions are mutated on the hub goroutine only.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Insert creates a session under a freshly generated code and stores it.
// Code generation and insertion happen under one lock so two concurrent
// creations can never collide on the same code.
func (r *Registry) Insert(category string, questions []string, host *Participant) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for range codeAttempts {
		code, err := newCode()
		if err != nil {
			return nil, fmt.Errorf("generate code: %w", err)
		}
		if _, taken := r.sessions[code]; taken {
			continue
		}
		sess := NewSession(code, category, questions, host)
		r.sessions[code] = sess
		return sess, nil
	}
	return nil, errCodeSpaceExhausted
}

// Get looks up a session by code.
func (r *Registry) Get(code string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sess, ok := r.sessions[code]
	return sess, ok
}

// Remove evicts the session with the given code. Idempotent.
func (r *Registry) Remove(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, code)
}

// FindByParticipant returns the session holding the given participant.
// Linear scan; the registry stays small at this scale.
func (r *Registry) FindByParticipant(participantID string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, sess := range r.sessions {
		if sess.ParticipantByID(participantID) != nil {
			return sess, true
		}
	}
	return nil, false
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func newCode() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}

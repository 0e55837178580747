package core

import "errors"

// Error codes for domain errors.
const (
	ErrCodeInvalidRequest  = "invalid_request"
	ErrCodeUnknownCategory = "unknown_category"
	ErrCodeGameNotFound    = "game_not_found"
	ErrCodeGameFull        = "game_full"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameFull     = errors.New("game is full")
)

// GameError wraps a code and human-readable message delivered to clients.
type GameError struct {
	Code    string
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

func gameError(code, msg string) *GameError {
	return &GameError{Code: code, Message: msg}
}

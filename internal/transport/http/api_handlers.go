package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Kamzyled/Love-moyosola/internal/questions"
	"github.com/Kamzyled/Love-moyosola/internal/store"
)

// APIHandlers provides HTTP handlers for REST API endpoints.
type APIHandlers struct {
	bank  *questions.Bank
	store store.Store
	log   *zerolog.Logger
}

// NewAPIHandlers creates a new API handlers instance.
func NewAPIHandlers(bank *questions.Bank, st store.Store, logger *zerolog.Logger) *APIHandlers {
	return &APIHandlers{
		bank:  bank,
		store: st,
		log:   logger,
	}
}

// CategoryResponse describes one playable category.
type CategoryResponse struct {
	Name         string `json:"name"`
	MaxQuestions int    `json:"maxQuestions"`
}

// MatchResponse represents a finished match in API responses.
type MatchResponse struct {
	ID            int64  `json:"id"`
	Code          string `json:"code"`
	Category      string `json:"category"`
	HostName      string `json:"hostName"`
	GuestName     string `json:"guestName"`
	HostScore     int    `json:"hostScore"`
	GuestScore    int    `json:"guestScore"`
	QuestionCount int    `json:"questionCount"`
	FinishedAt    string `json:"finishedAt"`
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ListCategories handles GET /api/categories.
func (h *APIHandlers) ListCategories(c *gin.Context) {
	names := h.bank.Categories()
	out := make([]CategoryResponse, 0, len(names))
	for _, name := range names {
		out = append(out, CategoryResponse{
			Name:         name,
			MaxQuestions: h.bank.Size(name),
		})
	}
	c.JSON(http.StatusOK, gin.H{"categories": out})
}

// ListMatches handles GET /api/matches?limit=N.
func (h *APIHandlers) ListMatches(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 100 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be between 1 and 100"})
			return
		}
		limit = parsed
	}

	if h.store == nil {
		c.JSON(http.StatusOK, gin.H{"matches": []MatchResponse{}})
		return
	}

	matches, err := h.store.ListRecentMatches(c.Request.Context(), limit)
	if err != nil {
		h.log.Error().Err(err).Msg("list matches")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list matches"})
		return
	}

	out := make([]MatchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, MatchResponse{
			ID:            m.ID,
			Code:          m.Code,
			Category:      m.Category,
			HostName:      m.HostName,
			GuestName:     m.GuestName,
			HostScore:     m.HostScore,
			GuestScore:    m.GuestScore,
			QuestionCount: m.QuestionCount,
			FinishedAt:    m.FinishedAt.UTC().Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, gin.H{"matches": out})
}

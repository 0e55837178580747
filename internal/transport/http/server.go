package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Kamzyled/Love-moyosola/internal/config"
	"github.com/Kamzyled/Love-moyosola/internal/core"
	"github.com/Kamzyled/Love-moyosola/internal/questions"
	"github.com/Kamzyled/Love-moyosola/internal/store"
)

// NewServer builds the HTTP server: health check, REST API, and the
// WebSocket endpoint the game is played over.
func NewServer(hub *core.Hub, bank *questions.Bank, st store.Store, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.String(stdhttp.StatusOK, "ok")
	})

	api := NewAPIHandlers(bank, st, logger)
	router.GET("/api/categories", api.ListCategories)
	router.GET("/api/matches", api.ListMatches)

	router.GET("/ws", gin.WrapH(NewWSHandler(hub, logger)))

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

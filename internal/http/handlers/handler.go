package handlers

import (
	"pairplay/internal/repository"
	"pairplay/internal/session"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	Coordinator *session.Coordinator
	SessionRepo *repository.SessionRepository
	BotToken    string
}

func NewHandler(db *pgxpool.Pool, coord *session.Coordinator, botToken string) *Handler {
	return &Handler{
		Coordinator: coord,
		SessionRepo: repository.NewSessionRepository(db),
		BotToken:    botToken,
	}
}

// getUserID extracts the authenticated user id set by the JWT middleware.
func getUserID(c interface{ Get(string) (any, bool) }) (int64, bool) {
	uidVal, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	switch v := uidVal.(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	}
	return 0, false
}

package ws

import (
	"pairplay/internal/domain"
	"pairplay/internal/session"
)

// SessionPayload is pushed to both partners after every successful write to
// the session record, the local caller's own writes included. Each side
// derives the same reveal/score view from the same record.
type SessionPayload struct {
	Session *domain.Session    `json:"session"`
	Reveal  session.RevealView `json:"reveal"`
}

func sessionPayload(s *domain.Session) SessionPayload {
	return SessionPayload{Session: s, Reveal: session.Reveal(s)}
}

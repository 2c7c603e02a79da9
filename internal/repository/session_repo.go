package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"pairplay/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrSessionNotFound is returned when no row matches the session id.
var ErrSessionNotFound = errors.New("session row not found")

// SessionRepository stores each session as one JSONB document row. The
// whole-document shape mirrors the store contract: Replace overwrites the
// full record.
type SessionRepository struct {
	db *pgxpool.Pool
}

func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	doc, err := json.Marshal(s)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO sessions (id, pair_id, kind, doc, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.PairID, string(s.Kind), doc, s.CreatedAt, s.UpdatedAt,
	)
	return err
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	var doc []byte
	err := r.db.QueryRow(ctx,
		`SELECT doc FROM sessions WHERE id = $1`, id,
	).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var s domain.Session
	if err := json.Unmarshal(doc, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepository) Replace(ctx context.Context, id string, s *domain.Session) error {
	doc, err := json.Marshal(s)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE sessions SET doc = $2, updated_at = $3 WHERE id = $1`,
		id, doc, time.Now(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// ListByPair returns the pair's sessions, newest first.
func (r *SessionRepository) ListByPair(ctx context.Context, pairID string, limit int) ([]*domain.Session, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	rows, err := r.db.Query(ctx,
		`SELECT doc FROM sessions
         WHERE pair_id = $1
         ORDER BY created_at DESC
         LIMIT $2`,
		pairID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Session
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var s domain.Session
		if err := json.Unmarshal(doc, &s); err != nil {
			return nil, err
		}
		res = append(res, &s)
	}
	return res, rows.Err()
}

package store

import (
	"context"
	"encoding/json"
	"errors"

	"pairplay/internal/domain"
	"pairplay/internal/logger"
	"pairplay/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	redis "github.com/redis/go-redis/v9"
)

// PostgresStore persists sessions through the session repository and fans
// out changes through Redis pub/sub, so subscribers on every node (the
// writer's own included) observe each successful Replace.
type PostgresStore struct {
	db   *pgxpool.Pool
	repo *repository.SessionRepository
	rdb  *redis.Client
}

func NewPostgresStore(db *pgxpool.Pool, rdb *redis.Client) *PostgresStore {
	return &PostgresStore{
		db:   db,
		repo: repository.NewSessionRepository(db),
		rdb:  rdb,
	}
}

func channelFor(id string) string {
	return "session:" + id
}

func (p *PostgresStore) Create(ctx context.Context, s *domain.Session) error {
	return p.repo.Create(ctx, s)
}

func (p *PostgresStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	s, err := p.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (p *PostgresStore) Replace(ctx context.Context, id string, s *domain.Session) error {
	if err := p.repo.Replace(ctx, id, s); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return ErrNotFound
		}
		return err
	}

	// fanout is best effort: the row is already committed, a failed publish
	// only delays convergence until the next read
	payload, err := json.Marshal(s)
	if err != nil {
		return nil
	}
	if err := p.rdb.Publish(ctx, channelFor(id), payload).Err(); err != nil {
		logger.Warn("session change publish failed", "session_id", id, "error", err)
	}
	return nil
}

// Lock takes a per-session Postgres advisory lock. Because the lock lives in
// the database, it serializes read-modify-write cycles across every app
// instance sharing the store, which whole-record Replace needs to stay
// lossless. The lock pins one pooled connection until release.
func (p *PostgresStore) Lock(ctx context.Context, id string) (func(), error) {
	conn, err := p.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock(hashtext($1))", id); err != nil {
		conn.Release()
		return nil, err
	}
	release := func() {
		// unlock on a background context: the lock must not outlive the
		// caller just because its request context was canceled
		if _, err := conn.Exec(context.Background(), "SELECT pg_advisory_unlock(hashtext($1))", id); err != nil {
			logger.Warn("advisory unlock failed", "session_id", id, "error", err)
		}
		conn.Release()
	}
	return release, nil
}

func (p *PostgresStore) Subscribe(ctx context.Context, id string, fn ChangeFunc) (func(), error) {
	sub := p.rdb.Subscribe(ctx, channelFor(id))
	// force the subscription to be established before returning so callers
	// do not miss writes issued right after Subscribe
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, err
	}

	go func() {
		for msg := range sub.Channel() {
			var s domain.Session
			if err := json.Unmarshal([]byte(msg.Payload), &s); err != nil {
				logger.Warn("bad session change payload", "session_id", id, "error", err)
				continue
			}
			fn(&s)
		}
	}()

	cancel := func() {
		_ = sub.Close()
	}
	return cancel, nil
}

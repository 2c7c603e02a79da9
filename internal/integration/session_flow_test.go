package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	redis "github.com/redis/go-redis/v9"

	"pairplay/internal/domain"
	"pairplay/internal/notify"
	"pairplay/internal/questionbank"
	"pairplay/internal/session"
	"pairplay/internal/store"
)

func applyMigrations(t *testing.T, dbp *pgxpool.Pool) {
	t.Helper()
	migDir := filepath.Join("..", "..", "migrations")
	files, err := os.ReadDir(migDir)
	if err != nil {
		t.Fatalf("read migrations: %v", err)
	}
	for _, f := range files {
		b, err := os.ReadFile(filepath.Join(migDir, f.Name()))
		if err != nil {
			t.Fatalf("read file: %v", err)
		}
		if _, err := dbp.Exec(context.Background(), string(b)); err != nil {
			t.Fatalf("apply migration %s: %v", f.Name(), err)
		}
	}
}

// Full coordinator flow against real Postgres and Redis: both partners
// answer everything, the fanout delivers every write to both subscribers,
// and the session completes and takes both ratings.
func TestSessionFlowPostgres(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx := context.Background()

	dbp, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	defer dbp.Close()
	applyMigrations(t, dbp)

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr, Password: os.Getenv("REDIS_PASSWORD")})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		t.Skipf("redis unreachable: %v", err)
	}

	st := store.NewPostgresStore(dbp, rdb)
	coord := session.NewCoordinator(st, questionbank.NewProvider(nil), notify.Nop{}, 0)

	const (
		alice int64 = 501
		bob   int64 = 502
	)

	s, err := coord.CreateSession(ctx, "501:502", domain.KindThisOrThat, alice, bob, 3)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	updates := make(chan *domain.Session, 32)
	cancel, err := st.Subscribe(ctx, s.ID, func(latest *domain.Session) {
		updates <- latest
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	defer cancel()

	for _, q := range s.Questions {
		zero := 0
		if _, err := coord.SubmitAnswer(ctx, s.ID, alice, q.ID, domain.Answer{Option: &zero}); err != nil {
			t.Fatalf("alice answer %s: %v", q.ID, err)
		}
		if _, err := coord.SubmitAnswer(ctx, s.ID, bob, q.ID, domain.Answer{Option: &zero}); err != nil {
			t.Fatalf("bob answer %s: %v", q.ID, err)
		}
	}

	// every write fans out; wait for the final completed record
	deadline := time.After(5 * time.Second)
	var latest *domain.Session
	for latest == nil || latest.Status != domain.StatusCompleted {
		select {
		case latest = <-updates:
		case <-deadline:
			t.Fatal("timed out waiting for completed record via fanout")
		}
	}

	if !latest.FullyAnswered() {
		t.Fatal("completed record not fully answered")
	}

	if _, err := coord.SubmitRating(ctx, s.ID, alice, 5, "great"); err != nil {
		t.Fatalf("alice rating: %v", err)
	}
	if _, err := coord.SubmitRating(ctx, s.ID, bob, 4, ""); err != nil {
		t.Fatalf("bob rating: %v", err)
	}

	final, err := st.Get(ctx, s.ID)
	if err != nil {
		t.Fatalf("final get: %v", err)
	}
	if final.RatingA == nil || *final.RatingA != 5 || final.RatingB == nil || *final.RatingB != 4 {
		t.Fatalf("ratings = %v/%v; want 5/4", final.RatingA, final.RatingB)
	}
}

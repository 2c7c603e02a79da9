package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"pairplay/internal/domain"
)

func testSession(id string) *domain.Session {
	return &domain.Session{
		ID:       id,
		PairID:   "1:2",
		Kind:     domain.KindThisOrThat,
		Status:   domain.StatusActive,
		RoleAID:  1,
		RoleBID:  2,
		AnswersA: map[string]domain.Answer{},
		AnswersB: map[string]domain.Answer{},
		Questions: []domain.Question{
			{ID: "q1", Type: domain.QuestionChoice, Options: []string{"a", "b"}},
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestMemoryStoreGetNotFound(t *testing.T) {
	m := NewMemoryStore()
	if _, err := m.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v; want ErrNotFound", err)
	}
}

func TestMemoryStoreReplaceNotFound(t *testing.T) {
	m := NewMemoryStore()
	if err := m.Replace(context.Background(), "nope", testSession("nope")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v; want ErrNotFound", err)
	}
}

func TestMemoryStoreCopiesOnWrite(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	s := testSession("s1")
	if err := m.Create(ctx, s); err != nil {
		t.Fatalf("create: %v", err)
	}

	// mutating the caller's copy must not leak into the store
	s.AnswersA["q1"] = domain.Answer{Text: "mutated"}

	got, err := m.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.AnswersA) != 0 {
		t.Fatal("store aliased the caller's answer map")
	}
}

// Every subscriber gets every successful replace, the writer's own included.
func TestMemoryStoreSubscribeSelfDelivery(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	if err := m.Create(ctx, testSession("s1")); err != nil {
		t.Fatalf("create: %v", err)
	}

	var got []*domain.Session
	cancel, err := m.Subscribe(ctx, "s1", func(s *domain.Session) {
		got = append(got, s)
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	defer cancel()

	upd := testSession("s1")
	upd.Cursor = 1
	if err := m.Replace(ctx, "s1", upd); err != nil {
		t.Fatalf("replace: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("deliveries = %d; want 1", len(got))
	}
	if got[0].Cursor != 1 {
		t.Fatalf("delivered cursor = %d; want 1", got[0].Cursor)
	}
}

func TestMemoryStoreUnsubscribeStopsDelivery(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	if err := m.Create(ctx, testSession("s1")); err != nil {
		t.Fatalf("create: %v", err)
	}

	delivered := 0
	cancel, err := m.Subscribe(ctx, "s1", func(*domain.Session) { delivered++ })
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	if err := m.Replace(ctx, "s1", testSession("s1")); err != nil {
		t.Fatalf("replace: %v", err)
	}
	cancel()
	if err := m.Replace(ctx, "s1", testSession("s1")); err != nil {
		t.Fatalf("replace after cancel: %v", err)
	}

	if delivered != 1 {
		t.Fatalf("deliveries = %d; want 1", delivered)
	}
}

func TestMemoryStoreFanoutToBothPartners(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	if err := m.Create(ctx, testSession("s1")); err != nil {
		t.Fatalf("create: %v", err)
	}

	a, b := 0, 0
	cancelA, _ := m.Subscribe(ctx, "s1", func(*domain.Session) { a++ })
	defer cancelA()
	cancelB, _ := m.Subscribe(ctx, "s1", func(*domain.Session) { b++ })
	defer cancelB()

	if err := m.Replace(ctx, "s1", testSession("s1")); err != nil {
		t.Fatalf("replace: %v", err)
	}

	if a != 1 || b != 1 {
		t.Fatalf("deliveries = %d/%d; want 1/1", a, b)
	}
}

func TestLockSerializesPerSession(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	unlock, err := st.Lock(ctx, "s1")
	if err != nil {
		t.Fatalf("first lock: %v", err)
	}

	acquired := make(chan struct{})
	go func() {
		u, err := st.Lock(ctx, "s1")
		if err != nil {
			t.Errorf("second lock: %v", err)
			return
		}
		close(acquired)
		u()
	}()

	select {
	case <-acquired:
		t.Fatal("second holder acquired the lock while the first still held it")
	case <-time.After(50 * time.Millisecond):
	}

	// a different session is a different lock
	u2, err := st.Lock(ctx, "s2")
	if err != nil {
		t.Fatalf("other session lock: %v", err)
	}
	u2()

	unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("lock never handed over after release")
	}
}

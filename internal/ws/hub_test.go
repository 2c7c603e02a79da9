package ws

import (
	"context"
	"encoding/json"
	"testing"

	"pairplay/internal/domain"
	"pairplay/internal/store"
)

func seedSession(t *testing.T, st *store.MemoryStore) *domain.Session {
	t.Helper()
	s := &domain.Session{
		ID:      "sess-ws-1",
		PairID:  "1:2",
		Kind:    domain.KindThisOrThat,
		Status:  domain.StatusActive,
		RoleAID: 1,
		RoleBID: 2,
		Questions: []domain.Question{
			{ID: "q1", Prompt: "Coffee or tea?", Type: domain.QuestionChoice, Options: []string{"Coffee", "Tea"}},
		},
		AnswersA: map[string]domain.Answer{},
		AnswersB: map[string]domain.Answer{},
	}
	if err := st.Create(context.Background(), s); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return s
}

func watcher(sessionID string, userID int64) *Client {
	return &Client{
		UserID:    userID,
		SessionID: sessionID,
		Send:      make(chan []byte, 8),
	}
}

func TestHubFanoutToBothPartners(t *testing.T) {
	st := store.NewMemoryStore()
	s := seedSession(t, st)
	hub := NewHub(st)

	a := watcher(s.ID, 1)
	b := watcher(s.ID, 2)
	for _, c := range []*Client{a, b} {
		if err := hub.Join(c); err != nil {
			t.Fatalf("join user=%d: %v", c.UserID, err)
		}
	}

	opt := 0
	s.AnswersA["q1"] = domain.Answer{Option: &opt}
	if err := st.Replace(context.Background(), s.ID, s); err != nil {
		t.Fatalf("replace: %v", err)
	}

	for _, c := range []*Client{a, b} {
		select {
		case raw := <-c.Send:
			var msg Message
			if err := json.Unmarshal(raw, &msg); err != nil {
				t.Fatalf("bad frame for user=%d: %v", c.UserID, err)
			}
			if msg.Type != MsgSession {
				t.Fatalf("user=%d frame type = %q; want %q", c.UserID, msg.Type, MsgSession)
			}
		default:
			t.Fatalf("user=%d received no frame", c.UserID)
		}
	}
}

func TestHubLastLeaveTearsDownSubscription(t *testing.T) {
	st := store.NewMemoryStore()
	s := seedSession(t, st)
	hub := NewHub(st)

	a := watcher(s.ID, 1)
	b := watcher(s.ID, 2)
	if err := hub.Join(a); err != nil {
		t.Fatalf("join a: %v", err)
	}
	if err := hub.Join(b); err != nil {
		t.Fatalf("join b: %v", err)
	}
	hub.Leave(a)
	hub.Leave(b)

	opt := 1
	s.AnswersB["q1"] = domain.Answer{Option: &opt}
	if err := st.Replace(context.Background(), s.ID, s); err != nil {
		t.Fatalf("replace: %v", err)
	}

	select {
	case raw := <-a.Send:
		t.Fatalf("a received frame after leave: %s", raw)
	case raw := <-b.Send:
		t.Fatalf("b received frame after leave: %s", raw)
	default:
	}
}

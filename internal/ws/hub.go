package ws

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"pairplay/internal/domain"
	"pairplay/internal/store"
)

// Hub fans session change notifications out to the websocket clients
// watching each session. It holds one store subscription per session,
// shared by both partners' connections.
type Hub struct {
	store store.SessionStore

	mu    sync.Mutex
	feeds map[string]*feed
}

type feed struct {
	clients map[*Client]struct{}
	cancel  func()
}

func NewHub(st store.SessionStore) *Hub {
	return &Hub{
		store: st,
		feeds: make(map[string]*feed),
	}
}

// Join registers a client for its session, creating the store subscription
// on the first join.
func (h *Hub) Join(c *Client) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	f, ok := h.feeds[c.SessionID]
	if !ok {
		sessionID := c.SessionID
		cancel, err := h.store.Subscribe(context.Background(), sessionID, func(s *domain.Session) {
			h.broadcast(sessionID, s)
		})
		if err != nil {
			return err
		}
		f = &feed{clients: make(map[*Client]struct{}), cancel: cancel}
		h.feeds[sessionID] = f
	}

	f.clients[c] = struct{}{}
	log.Printf("Hub.Join: session=%s user=%d watchers=%d", c.SessionID, c.UserID, len(f.clients))
	return nil
}

// Leave removes a client; the last leaver tears the subscription down.
func (h *Hub) Leave(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	f, ok := h.feeds[c.SessionID]
	if !ok {
		return
	}
	delete(f.clients, c)
	log.Printf("Hub.Leave: session=%s user=%d watchers=%d", c.SessionID, c.UserID, len(f.clients))

	if len(f.clients) == 0 {
		f.cancel()
		delete(h.feeds, c.SessionID)
	}
}

func (h *Hub) broadcast(sessionID string, s *domain.Session) {
	data, err := json.Marshal(Message{Type: MsgSession, Payload: sessionPayload(s)})
	if err != nil {
		log.Printf("Hub.broadcast: marshal error: %v", err)
		return
	}

	h.mu.Lock()
	f, ok := h.feeds[sessionID]
	if !ok {
		h.mu.Unlock()
		return
	}
	clients := make([]*Client, 0, len(f.clients))
	for c := range f.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		select {
		case c.Send <- data:
		default:
			// slow consumer: drop this update, the next one carries the
			// full record anyway
			log.Printf("Hub.broadcast: dropped update for user=%d session=%s", c.UserID, sessionID)
		}
	}
}

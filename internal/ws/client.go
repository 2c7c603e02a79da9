package ws

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 30 * time.Second
	pingPeriod = 25 * time.Second
)

// Client is one participant's live view of one session.
type Client struct {
	UserID    int64
	SessionID string
	Conn      *websocket.Conn
	Send      chan []byte

	hub  *Hub
	done chan struct{}
}

func NewClient(userID int64, sessionID string, conn *websocket.Conn, hub *Hub) *Client {
	return &Client{
		UserID:    userID,
		SessionID: sessionID,
		Conn:      conn,
		Send:      make(chan []byte, 64),
		hub:       hub,
		done:      make(chan struct{}),
	}
}

// Run joins the hub, pushes an initial snapshot and pumps until disconnect.
func (c *Client) Run(snapshot []byte) {
	go c.writePump()

	if snapshot != nil {
		c.Send <- snapshot
	}

	if err := c.hub.Join(c); err != nil {
		log.Printf("Client.Run: join failed user=%d session=%s: %v", c.UserID, c.SessionID, err)
		data, _ := json.Marshal(Message{Type: MsgError, Payload: map[string]string{"message": "subscription failed"}})
		c.Send <- data
		c.Conn.Close()
		return
	}

	c.readPump()

	c.hub.Leave(c)
	close(c.done)
}

// readPump consumes client frames. The engine has no client->server commands
// over the socket (all mutations go through the HTTP API); reads only keep
// the connection alive and detect disconnects.
func (c *Client) readPump() {
	defer c.Conn.Close()

	c.Conn.SetReadLimit(4096)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			log.Printf("Client.readPump: user=%d session=%s closed: %v", c.UserID, c.SessionID, err)
			return
		}

		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}
		if msg.Type == MsgPing {
			c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}

package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"pairplay/internal/service"
	"pairplay/internal/session"
	"pairplay/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WS upgrades a participant to the live feed of one session. The socket is
// read-only from the client's point of view: answers, completion and ratings
// all go through the HTTP API, and every successful write comes back through
// this feed.
func (h *Handler) WS(hub *ws.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token required"})
			return
		}

		userID, err := service.ParseJWT(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		sessionID := c.Query("session_id")
		if sessionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "session_id required"})
			return
		}

		// only the two bound roles may watch the record
		s, err := h.Coordinator.Get(c.Request.Context(), sessionID, userID)
		if err != nil {
			respondError(c, err)
			return
		}

		allowedOrigin := os.Getenv("ALLOWED_ORIGIN")
		upgrader := websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				if allowedOrigin == "" {
					return true
				}
				return r.Header.Get("Origin") == allowedOrigin
			},
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("ws upgrade error:", err)
			return
		}

		snapshot, _ := json.Marshal(ws.Message{
			Type:    ws.MsgSession,
			Payload: ws.SessionPayload{Session: s, Reveal: session.Reveal(s)},
		})

		client := ws.NewClient(userID, sessionID, conn, hub)
		go client.Run(snapshot)
	}
}

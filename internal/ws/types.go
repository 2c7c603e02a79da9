package ws

const (
	// client -> server
	MsgPing = "ping"

	// server -> client
	MsgSession = "session"
	MsgError   = "error"
)

type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

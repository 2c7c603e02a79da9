package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"

	"pairplay/internal/service"
)

// Smoke test against a running server: creates a session for two test users,
// opens both live feeds, submits one answer per side over HTTP and prints
// the frames the feed pushes back.
func main() {
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	base := fmt.Sprintf("http://127.0.0.1:%s/api/v1", port)

	service.InitJWT()
	tokenA, err := service.GenerateJWT(3001)
	if err != nil {
		log.Fatalf("gen token A: %v", err)
	}
	tokenB, err := service.GenerateJWT(3002)
	if err != nil {
		log.Fatalf("gen token B: %v", err)
	}

	// create a this-or-that session as user A
	body, _ := json.Marshal(map[string]any{
		"partner_id":     3002,
		"kind":           "this_or_that",
		"question_count": 3,
	})
	req, _ := http.NewRequest("POST", base+"/sessions", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+tokenA)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("create session: %v", err)
	}
	defer resp.Body.Close()

	var created struct {
		Session struct {
			ID        string `json:"id"`
			Questions []struct {
				ID string `json:"id"`
			} `json:"questions"`
		} `json:"session"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		log.Fatalf("decode create response: %v", err)
	}
	sid := created.Session.ID
	log.Printf("created session %s with %d questions", sid, len(created.Session.Questions))

	dialer := websocket.DefaultDialer

	// use 127.0.0.1 to prefer IPv4 (avoid resolving to [::1])
	wsURL := func(token string) string {
		return fmt.Sprintf("ws://127.0.0.1:%s/ws?token=%s&session_id=%s", port, token, sid)
	}

	connA, _, err := dialer.Dial(wsURL(tokenA), nil)
	if err != nil {
		log.Fatalf("dial A: %v", err)
	}
	defer connA.Close()

	connB, _, err := dialer.Dial(wsURL(tokenB), nil)
	if err != nil {
		log.Fatalf("dial B: %v", err)
	}
	defer connB.Close()

	// both answer the first question over HTTP
	answer := func(token string, option int) {
		qid := created.Session.Questions[0].ID
		b, _ := json.Marshal(map[string]any{"question_id": qid, "option": option})
		r, _ := http.NewRequest("POST", base+"/sessions/"+sid+"/answers", bytes.NewReader(b))
		r.Header.Set("Authorization", "Bearer "+token)
		r.Header.Set("Content-Type", "application/json")
		res, err := http.DefaultClient.Do(r)
		if err != nil {
			log.Fatalf("submit answer: %v", err)
		}
		res.Body.Close()
	}
	answer(tokenA, 0)
	answer(tokenB, 0)

	// both feeds should converge on the same record
	read := func(conn *websocket.Conn, name string) {
		conn.SetReadDeadline(time.Now().Add(3 * time.Second))
		for i := 0; i < 3; i++ {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				log.Printf("%s read error: %v", name, err)
				return
			}
			log.Printf("%s got: %s", name, string(msg))
		}
	}

	read(connA, "A")
	read(connB, "B")

	log.Println("smoke test finished")
}

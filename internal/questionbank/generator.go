package questionbank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"pairplay/internal/domain"
)

// HTTPGenerator calls an external question-generation service over JSON HTTP.
type HTTPGenerator struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPGenerator creates a generator client. timeout bounds each call; the
// provider treats a timeout like any other generation failure.
func NewHTTPGenerator(baseURL, apiKey string, timeout time.Duration) *HTTPGenerator {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPGenerator{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type generateRequest struct {
	PairID string `json:"pair_id"`
	Kind   string `json:"kind"`
	Count  int    `json:"count"`
}

type generateResponse struct {
	Questions []Prompt `json:"questions"`
}

// Generate requests count prompts for the pair.
func (g *HTTPGenerator) Generate(ctx context.Context, pairID string, kind domain.GameKind, count int) ([]Prompt, error) {
	body, err := json.Marshal(generateRequest{PairID: pairID, Kind: string(kind), Count: count})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", g.baseURL+"/v1/generate", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("generator returned status %d: %s", resp.StatusCode, string(data))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}

	return out.Questions, nil
}

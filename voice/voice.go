package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"shelfwise/models"
)

// Client talks to the conversational voice-agent API. A session is started
// with the purchase recommendation as the agent briefing; the API runs the
// conversation and returns the full role-tagged transcript, which the
// workflow persists verbatim.
type Client struct {
	apiKey     string
	baseURL    string
	agentID    string
	httpClient *http.Client
}

func NewClient(apiKey, baseURL, agentID string) *Client {
	if baseURL == "" {
		baseURL = "https://api.elevenlabs.io/v1"
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		agentID: agentID,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type sessionRequest struct {
	AgentID  string `json:"agent_id"`
	Briefing string `json:"briefing"`
}

type sessionResponse struct {
	SessionID string `json:"session_id"`
	Messages  []struct {
		Role     string `json:"role"`
		Content  string `json:"content"`
		AudioURL string `json:"audio_url,omitempty"`
	} `json:"messages"`
}

// StartSession runs a conversational session briefed with the given
// recommendation text and returns the transcript.
func (c *Client) StartSession(ctx context.Context, briefing string) (*models.ConversationSession, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("voice API key not configured")
	}

	body, err := json.Marshal(sessionRequest{AgentID: c.agentID, Briefing: briefing})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/convai/sessions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create session request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("session request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read session response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("voice API error (status %d): %s", resp.StatusCode, string(raw))
	}

	var parsed sessionResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse session response: %w", err)
	}
	if parsed.SessionID == "" {
		return nil, fmt.Errorf("voice API returned no session id")
	}

	transcript := make([]models.TranscriptMessage, 0, len(parsed.Messages))
	for _, m := range parsed.Messages {
		transcript = append(transcript, models.TranscriptMessage{
			Role:     m.Role,
			Content:  m.Content,
			AudioRef: m.AudioURL,
		})
	}

	return &models.ConversationSession{
		SessionID:  parsed.SessionID,
		Transcript: transcript,
	}, nil
}

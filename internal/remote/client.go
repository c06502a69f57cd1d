// Package remote talks to the optional online leaderboard and the
// generative text endpoint used for game-over banter.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/palopsee/internal/config"
	"github.com/vovakirdan/palopsee/internal/core"
)

var (
	// ErrNoSubmitURL is returned by SubmitScore when no leaderboard is configured.
	ErrNoSubmitURL = errors.New("remote: no submit url configured")
	// ErrNoTextURL is returned by FlavorText when no text service is configured.
	ErrNoTextURL = errors.New("remote: no text url configured")
	// ErrEmptyResponse is returned when the text service produced no candidates.
	ErrEmptyResponse = errors.New("remote: empty text response")
)

const defaultTimeout = 8 * time.Second

// Client is the HTTP implementation of core.Remote.
type Client struct {
	http   *http.Client
	cfg    config.RemoteConfig
	logger *log.Logger
}

var _ core.Remote = (*Client)(nil)

// New creates a client from cfg. A nil logger discards output.
func New(cfg config.RemoteConfig, logger *log.Logger) *Client {
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if cfg.PlayerName == "" {
		cfg.PlayerName = "Anonymous"
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Client{
		http:   &http.Client{Timeout: timeout},
		cfg:    cfg,
		logger: logger,
	}
}

// FromConfig returns a client when cfg is enabled and nil otherwise, so the
// result can be dropped straight into core.Services.
func FromConfig(cfg config.RemoteConfig, logger *log.Logger) core.Remote {
	if !cfg.Enabled {
		return nil
	}
	return New(cfg, logger)
}

// Entry is the leaderboard record posted on a new high score.
type Entry struct {
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Banter string `json:"banter,omitempty"`
}

// SubmitScore posts score with a generated boast. A failed boast does
// not block the submission.
func (c *Client) SubmitScore(ctx context.Context, score int) error {
	if c.cfg.SubmitURL == "" {
		return ErrNoSubmitURL
	}

	entry := Entry{Name: c.cfg.PlayerName, Score: score}
	if c.cfg.TextURL != "" {
		banter, err := c.FlavorText(ctx, BanterPrompt(entry.Name, score))
		if err != nil {
			c.logger.Warn("banter generation failed", "err", err)
		} else {
			entry.Banter = StripQuotes(banter)
		}
	}

	body, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("remote: encode entry: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.SubmitURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("remote: build submit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("remote: submit score: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return fmt.Errorf("remote: submit score: %w", err)
	}

	c.logger.Info("score submitted", "score", score, "name", entry.Name)
	return nil
}

type textPart struct {
	Text string `json:"text"`
}

type textContent struct {
	Role  string     `json:"role,omitempty"`
	Parts []textPart `json:"parts"`
}

type textRequest struct {
	Contents []textContent `json:"contents"`
}

type textResponse struct {
	Candidates []struct {
		Content textContent `json:"content"`
	} `json:"candidates"`
}

// FlavorText asks the text service to complete prompt.
func (c *Client) FlavorText(ctx context.Context, prompt string) (string, error) {
	if c.cfg.TextURL == "" {
		return "", ErrNoTextURL
	}

	endpoint, err := c.textEndpoint()
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(textRequest{
		Contents: []textContent{{Role: "user", Parts: []textPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("remote: encode prompt: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("remote: build text request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("remote: generate text: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return "", fmt.Errorf("remote: generate text: %w", err)
	}

	var out textResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("remote: decode text response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

// textEndpoint appends the API key as a query parameter.
func (c *Client) textEndpoint() (string, error) {
	if c.cfg.APIKey == "" {
		return c.cfg.TextURL, nil
	}
	u, err := url.Parse(c.cfg.TextURL)
	if err != nil {
		return "", fmt.Errorf("remote: bad text url: %w", err)
	}
	q := u.Query()
	q.Set("key", c.cfg.APIKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// StatusError reports a non-2xx response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("status %d", e.Code)
	}
	return fmt.Sprintf("status %d: %s", e.Code, e.Body)
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
}

// BanterPrompt builds the boast prompt sent along with a new high score.
func BanterPrompt(name string, score int) string {
	return fmt.Sprintf("Generate a short, space-themed, boastful quote for a player named %q who just set a high score of %d. The quote should be in the first person. Maximum 15 words.", name, score)
}

// StripQuotes removes every double quote and trims the result.
func StripQuotes(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, `"`, ""))
}

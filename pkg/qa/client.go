// Package qa forwards free-form questions to a hosted instruction-tuned model.
package qa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode"
)

const (
	DefaultTimeout = 300 * time.Second

	// FailureMessage is what the user sees whenever the endpoint cannot answer.
	FailureMessage = "An unexpected error occurred 😔\nTry again later."
)

type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Ask returns the cleaned answer, or FailureMessage.
func (c *Client) Ask(ctx context.Context, query string) string {
	answer, err := c.infer(ctx, query)
	if err != nil {
		slog.Error("qa endpoint failed", "error", err)
		return FailureMessage
	}

	cleaned := TrimIncomplete(answer)
	if cleaned == "" {
		cleaned = strings.TrimSpace(answer)
	}
	return FormatBold(cleaned)
}

func (c *Client) infer(ctx context.Context, query string) (string, error) {
	body, err := json.Marshal(inferRequest{Prompt: query})
	if err != nil {
		return "", fmt.Errorf("qa encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("qa request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("qa fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{StatusCode: resp.StatusCode}
	}

	var out inferResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("qa decode: %w", err)
	}
	if out.Response == nil {
		return "", fmt.Errorf("qa decode: missing response field")
	}

	return strings.TrimSpace(*out.Response), nil
}

type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("qa endpoint returned status %d", e.StatusCode)
}

func (e *StatusError) HTTPStatus() int {
	return e.StatusCode
}

type inferRequest struct {
	Prompt string `json:"prompt"`
}

type inferResponse struct {
	Response *string `json:"response"`
}

// TrimIncomplete splits text into sentences ending in '.', '!' or '?', drops a
// trailing fragment without closing punctuation, and joins the rest with newlines.
func TrimIncomplete(text string) string {
	var parts []string
	var cur strings.Builder

	runes := []rune(strings.TrimSpace(text))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if unicode.IsSpace(r) && i > 0 && isTerminal(runes[i-1]) {
			parts = append(parts, cur.String())
			cur.Reset()
			for i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
				i++
			}
			continue
		}
		cur.WriteRune(r)
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}

	if n := len(parts); n > 0 {
		last := []rune(parts[n-1])
		if !isTerminal(last[len(last)-1]) {
			parts = parts[:n-1]
		}
	}

	return strings.TrimSpace(strings.Join(parts, "\n"))
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

var boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

// FormatBold turns **x** into <strong>x</strong>.
func FormatBold(text string) string {
	return boldPattern.ReplaceAllString(text, "<strong>$1</strong>")
}

// Package analysis produces a short narrative summary of a finished
// assessment by calling an external text-generation service. The service is
// optional: any failure degrades to placeholder text and never blocks or
// fails report generation.
package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"evalio/internal/assessment"
)

// PlaceholderSummary stands in for analysis text when the external service is
// unavailable or fails.
const PlaceholderSummary = "AI analysis is unavailable for this report. The full response data is included below."

// DefaultTimeout caps a single analysis call when the context has no deadline.
const DefaultTimeout = 15 * time.Second

// ErrDisabled is returned when no API key is configured.
var ErrDisabled = errors.New("analysis service disabled: no API key configured")

// Analyzer produces summary text for a completed assessment.
type Analyzer interface {
	Analyze(ctx context.Context, task assessment.Task, answers assessment.AnswerSet) (string, error)
}

// Client calls an HTTP text-generation endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a client for the given endpoint. An empty apiKey disables
// the client; Analyze then fails fast with ErrDisabled so the caller can
// degrade immediately instead of waiting out a doomed request.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// generateRequest is the wire request for the text-generation endpoint.
type generateRequest struct {
	Prompt string `json:"prompt"`
}

// generateResponse is the wire response. Some backends nest the text; we
// accept either a top-level text field or a candidates list.
type generateResponse struct {
	Text       string `json:"text"`
	Candidates []struct {
		Text string `json:"text"`
	} `json:"candidates"`
	Error string `json:"error,omitempty"`
}

// Analyze sends the assessment metadata and response pattern to the service
// and returns the generated summary. If the context has no deadline,
// DefaultTimeout is applied.
func (c *Client) Analyze(ctx context.Context, task assessment.Task, answers assessment.AnswerSet) (string, error) {
	if c.apiKey == "" {
		return "", ErrDisabled
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultTimeout)
		defer cancel()
	}

	body, err := json.Marshal(generateRequest{Prompt: buildPrompt(task, answers)})
	if err != nil {
		return "", fmt.Errorf("failed to marshal analysis request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build analysis request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", errors.New("analysis request timed out")
		}
		return "", fmt.Errorf("analysis request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("analysis service returned status %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to parse analysis response: %w", err)
	}
	if parsed.Error != "" {
		return "", errors.New("analysis service error: " + parsed.Error)
	}

	text := extractText(parsed)
	if text == "" {
		return "", errors.New("analysis response contained no text")
	}
	return text, nil
}

// extractText pulls the summary out of whichever field the backend used.
func extractText(resp generateResponse) string {
	if t := strings.TrimSpace(resp.Text); t != "" {
		return t
	}
	for _, cand := range resp.Candidates {
		if t := strings.TrimSpace(cand.Text); t != "" {
			return t
		}
	}
	return ""
}

// buildPrompt constructs the consultant prompt from the assessment metadata
// and the user's response pattern.
func buildPrompt(task assessment.Task, answers assessment.AnswerSet) string {
	// Stable ordering keeps prompts reproducible for identical submissions.
	ids := make([]string, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var pattern strings.Builder
	for i, id := range ids {
		if i > 0 {
			pattern.WriteString(", ")
		}
		fmt.Fprintf(&pattern, "%s=%d", id, answers[id])
	}

	return fmt.Sprintf(`As an expert HR consultant, provide a brief, professional personality and capability analysis (approx 150 words) based on the following assessment metadata.

Assessment: %s
Description: %s
User's response pattern (1-6 scale where 6 is strongly agree):
%s

Analyze the user's strengths and potential areas for improvement. Use a supportive and professional tone.`,
		task.Title, task.Description, pattern.String())
}

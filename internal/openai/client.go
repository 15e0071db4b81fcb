package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MrSnakeDoc/lune/internal/domain"
	"github.com/MrSnakeDoc/lune/internal/utils"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"

	systemPrompt = "You are an emotion analysis expert. Analyze the user's diary entry, " +
		"identify its emotional content, and respond only in the requested JSON format."

	// placeholder substituted with the entry text at call time.
	placeholder = "{text}"
)

// Options configures the classification client.
type Options struct {
	BaseURL string        // defaults to the OpenAI API
	Model   string        // defaults to gpt-4o-mini
	Timeout time.Duration // 0 = no client timeout
}

// Client calls the external classification collaborator.
type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
}

// NewClient creates a classification client.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Model == "" {
		opts.Model = defaultModel
	}
	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		baseURL:    strings.TrimSuffix(opts.BaseURL, "/"),
		model:      opts.Model,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	Temperature    float64        `json:"temperature"`
	ResponseFormat responseFormat `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Analyze submits the diary entry for emotion classification and returns
// the raw, unsanitized analysis shape. The caller owns the mandatory
// sanitize step.
func (c *Client) Analyze(ctx context.Context, entryText, promptTemplate, apiKey string) (domain.RawAnalysis, error) {
	if apiKey == "" {
		return domain.RawAnalysis{}, domain.NewConfigurationError("OpenAI API key is not configured")
	}

	prompt := strings.ReplaceAll(promptTemplate, placeholder, entryText)

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature:    0.7,
		ResponseFormat: responseFormat{Type: "json_object"},
	})
	if err != nil {
		return domain.RawAnalysis{}, fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return domain.RawAnalysis{}, fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.RawAnalysis{}, &domain.CollaboratorError{
			Service: "openai",
			Kind:    domain.CollaboratorGeneric,
			Msg:     fmt.Sprintf("request failed: %v", err),
		}
	}
	defer utils.Close(resp.Body)

	if err := classifyStatus(resp.StatusCode); err != nil {
		return domain.RawAnalysis{}, err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.RawAnalysis{}, fmt.Errorf("failed to read chat response: %w", err)
	}

	var chat chatResponse
	if err := json.Unmarshal(data, &chat); err != nil {
		return domain.RawAnalysis{}, fmt.Errorf("failed to parse chat response: %w", err)
	}
	if len(chat.Choices) == 0 || chat.Choices[0].Message.Content == "" {
		return domain.RawAnalysis{}, &domain.CollaboratorError{
			Service: "openai",
			Kind:    domain.CollaboratorGeneric,
			Msg:     "response carried no content",
		}
	}

	var raw domain.RawAnalysis
	if err := json.Unmarshal([]byte(chat.Choices[0].Message.Content), &raw); err != nil {
		return domain.RawAnalysis{}, &domain.CollaboratorError{
			Service: "openai",
			Kind:    domain.CollaboratorGeneric,
			Msg:     fmt.Sprintf("response content is not valid JSON: %v", err),
		}
	}

	return raw, nil
}

// classifyStatus maps the collaborator's known error signals onto the
// error taxonomy: 401 = invalid credential, 429 = quota exceeded,
// any other non-2xx = generic failure.
func classifyStatus(status int) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized:
		return &domain.CollaboratorError{
			Service: "openai",
			Kind:    domain.CollaboratorInvalidCredential,
			Msg:     "API key is not valid",
		}
	case status == http.StatusTooManyRequests:
		return &domain.CollaboratorError{
			Service: "openai",
			Kind:    domain.CollaboratorQuotaExceeded,
			Msg:     "API quota exceeded, try again later",
		}
	default:
		return &domain.CollaboratorError{
			Service: "openai",
			Kind:    domain.CollaboratorGeneric,
			Msg:     fmt.Sprintf("unexpected status %d", status),
		}
	}
}

package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

const (
	// Gemini's OpenAI-compatible endpoint.
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

	// DefaultGeminiModel is used when no model override is configured.
	DefaultGeminiModel = "gemini-2.0-flash"

	requestTimeout = 30 * time.Second
)

type geminiGenerator struct {
	client *openai.Client
	model  string
	hasKey bool
}

func newGeminiGenerator(model, apiKey string) *geminiGenerator {
	clientConfig := openai.DefaultConfig(apiKey)
	clientConfig.BaseURL = geminiBaseURL

	if model == "" {
		model = DefaultGeminiModel
	}

	return &geminiGenerator{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
		hasKey: apiKey != "",
	}
}

// GenerateCommitMessage sends the diff to Gemini once; there is no retry. The
// call is bounded by requestTimeout so a stalled request surfaces as a
// request failure instead of hanging the invocation.
func (g *geminiGenerator) GenerateCommitMessage(ctx context.Context, diff string) (string, error) {
	if !g.hasKey {
		return "", newError(KindKeyMissing, nil, "no API key available for the request")
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: g.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: buildPrompt(diff),
				},
			},
		},
	)
	if err != nil {
		return "", classifyError(err)
	}

	if len(resp.Choices) == 0 {
		return "", newError(KindRequestFailed, nil, "backend returned an empty response")
	}

	message := strings.TrimSpace(resp.Choices[0].Message.Content)
	if message == "" {
		return "", newError(KindRequestFailed, nil, "backend returned an empty commit message")
	}

	return message, nil
}

// classifyError maps client failures onto the closed error set. No raw client
// error leaves this package unclassified.
func classifyError(err error) *Error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return newError(KindKeyInvalid, err,
				"API key was rejected by the backend (HTTP %d)", apiErr.HTTPStatusCode)
		case http.StatusTooManyRequests:
			return newError(KindQuotaExceeded, err,
				"backend quota or rate limit exceeded (HTTP %d)", apiErr.HTTPStatusCode)
		default:
			return newError(KindRequestFailed, err,
				"backend request failed (HTTP %d): %s", apiErr.HTTPStatusCode, apiErr.Message)
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return newError(KindRequestFailed, err,
			"backend request failed (HTTP %d)", reqErr.HTTPStatusCode)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return newError(KindRequestFailed, err,
			"backend request timed out after %s", requestTimeout)
	}

	return newError(KindUnknown, err, "unexpected backend failure: %v", err)
}

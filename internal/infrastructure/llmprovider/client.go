// Package llmprovider implements the model gateway against the Groq
// OpenAI-compatible chat completion API.
package llmprovider

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"paperforge/internal/config"
	"paperforge/internal/domain/llm"
	"paperforge/internal/infrastructure/metrics"
	"paperforge/internal/utils/apperrors"
)

// Client is the single integration point with the external model provider.
type Client struct {
	api   *openai.Client
	model string
	log   zerolog.Logger
}

// NewClient builds the gateway from service configuration.
func NewClient(cfg *config.Config, log zerolog.Logger) *Client {
	clientConfig := openai.DefaultConfig(cfg.GroqAPIKey)
	clientConfig.BaseURL = cfg.GroqBaseURL
	clientConfig.HTTPClient.Timeout = cfg.ModelTimeout

	return &Client{
		api:   openai.NewClientWithConfig(clientConfig),
		model: cfg.Model,
		log:   log.With().Str("component", "llm-gateway").Logger(),
	}
}

// Complete performs one chat completion round trip. Failures of any kind
// surface as a stage-tagged GatewayError; there is no retry.
func (c *Client) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	content := req.Prompt + truncate(req.Input, req.InputLimit)

	completionReq := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: content},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}
	if req.JSONObject {
		completionReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, completionReq)
	metrics.GatewayDuration.WithLabelValues(req.Stage).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.GatewayFailures.WithLabelValues(req.Stage).Inc()
		c.log.Error().Err(err).Str("stage", req.Stage).Msg("model provider call failed")
		return "", &apperrors.GatewayError{Stage: req.Stage, Cause: err}
	}
	if len(resp.Choices) == 0 {
		metrics.GatewayFailures.WithLabelValues(req.Stage).Inc()
		return "", &apperrors.GatewayError{Stage: req.Stage, Cause: errors.New("provider returned no completion choices")}
	}

	c.log.Debug().
		Str("stage", req.Stage).
		Dur("duration", time.Since(start)).
		Int("prompt_chars", len(content)).
		Msg("model provider call completed")
	return resp.Choices[0].Message.Content, nil
}

// truncate caps s to a fixed rune prefix. limit <= 0 disables the cap.
func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

var _ llm.Gateway = (*Client)(nil)

package vision

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/mealtrack-backend/internal/config"
	"github.com/heartmarshall/mealtrack-backend/internal/domain"
)

// Client asks a vision-capable model to describe a meal photo. Each call
// makes exactly one request: no retries, no caching.
type Client struct {
	api         anthropic.Client
	model       string
	maxTokens   int64
	temperature float64
	timeout     time.Duration
	prompt      string
	log         *slog.Logger
}

// NewClient creates a Client from VisionConfig. Extra request options are
// appended after the configured ones.
func NewClient(cfg config.VisionConfig, logger *slog.Logger, opts ...option.RequestOption) *Client {
	reqOpts := []option.RequestOption{option.WithMaxRetries(0)}
	if cfg.APIKey != "" {
		reqOpts = append(reqOpts, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.BaseURL))
	}
	reqOpts = append(reqOpts, opts...)

	return &Client{
		api:         anthropic.NewClient(reqOpts...),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
		prompt:      buildPrompt(cfg.Language),
		log:         logger.With("adapter", "vision"),
	}
}

// Describe sends the photo with the fixed instruction and returns the raw
// text of the model's answer. Every failure wraps domain.ErrUpstream.
func (c *Client) Describe(ctx context.Context, img domain.MealImage) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   c.maxTokens,
		Temperature: anthropic.Float(c.temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewImageBlockBase64(img.MediaType, img.Data),
				anthropic.NewTextBlock(c.prompt),
			),
		},
	})
	if err != nil {
		return "", c.upstreamError(ctx, err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	text := sb.String()

	c.log.DebugContext(ctx, "vision response",
		slog.String("model", c.model),
		slog.Duration("latency", time.Since(start)),
		slog.String("stop_reason", string(msg.StopReason)),
		slog.Int("chars", len(text)),
	)

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("vision: empty response: %w", domain.ErrUpstream)
	}
	return text, nil
}

func (c *Client) upstreamError(ctx context.Context, err error) error {
	var apiErr *anthropic.Error
	switch {
	case errors.As(err, &apiErr):
		return fmt.Errorf("vision: status %d: %w", apiErr.StatusCode, errors.Join(domain.ErrUpstream, err))
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("vision: timed out after %s: %w", c.timeout, errors.Join(domain.ErrUpstream, context.DeadlineExceeded))
	default:
		return fmt.Errorf("vision: request failed: %w", errors.Join(domain.ErrUpstream, err))
	}
}

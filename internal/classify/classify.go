// Package classify maps document titles onto a fixed category vocabulary
// using an OpenAI chat-completions call.
//
// Classification is best-effort by contract: any transport failure, empty
// response, or out-of-vocabulary label resolves to the fallback category.
// Classify never returns an error — callers always get a usable category.
package classify

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	// DefaultModel is used when no model is configured.
	DefaultModel = "gpt-4o-mini"

	// DefaultFallback is the reserved label for unclassifiable titles.
	DefaultFallback = "Other"

	systemPrompt = "You are an assistant that categorizes document titles into predefined categories. " +
		"Respond with exactly one category name from this list: %s. " +
		"If none fits, respond with %s."

	classifyTemperature = 0.3
	classifyMaxTokens   = 10
)

// Config holds configuration for the classifier client.
type Config struct {
	APIKey     string
	Model      string        // "gpt-4o-mini" (default)
	Categories []string      // Category vocabulary (fallback excluded)
	Fallback   string        // "Other" (default)
	Timeout    time.Duration // HTTP timeout
	BaseURL    string        // Optional (tests)
	HTTPClient *http.Client  // Optional (tests)
	Logger     *slog.Logger
}

// Client classifies titles via the OpenAI API.
type Client struct {
	client     openai.Client
	model      string
	categories []string
	vocabulary map[string]struct{}
	fallback   string
	logger     *slog.Logger
}

// New creates a classifier client.
func New(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Fallback == "" {
		cfg.Fallback = DefaultFallback
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(httpClient),
		// Single attempt: failures fall through to the fallback category.
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	vocab := make(map[string]struct{}, len(cfg.Categories))
	for _, c := range cfg.Categories {
		vocab[c] = struct{}{}
	}

	return &Client{
		client:     openai.NewClient(opts...),
		model:      cfg.Model,
		categories: cfg.Categories,
		vocabulary: vocab,
		fallback:   cfg.Fallback,
		logger:     cfg.Logger,
	}
}

// Fallback returns the reserved category used when classification fails.
func (c *Client) Fallback() string {
	return c.fallback
}

// Vocabulary returns the configured categories plus the fallback label.
func (c *Client) Vocabulary() []string {
	return append(append([]string{}, c.categories...), c.fallback)
}

// Classify returns the category for a document title. The result is always
// a configured category or the fallback label.
func (c *Client) Classify(ctx context.Context, title string) string {
	requestID := uuid.New().String()

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(fmt.Sprintf(systemPrompt, strings.Join(c.categories, ", "), c.fallback)),
			openai.UserMessage(fmt.Sprintf("Title: %s\n\nCategory:", title)),
		},
		Temperature: openai.Float(classifyTemperature),
		MaxTokens:   openai.Int(classifyMaxTokens),
	})
	if err != nil {
		c.logger.Error("classification call failed",
			"request_id", requestID, "title", title, "error", err)
		return c.fallback
	}
	if len(resp.Choices) == 0 {
		c.logger.Error("classification returned no choices",
			"request_id", requestID, "title", title)
		return c.fallback
	}

	label := strings.TrimSpace(resp.Choices[0].Message.Content)
	if _, ok := c.vocabulary[label]; !ok {
		c.logger.Warn("classification outside vocabulary, using fallback",
			"request_id", requestID, "title", title, "label", label, "fallback", c.fallback)
		return c.fallback
	}

	c.logger.Info("classified title",
		"request_id", requestID, "title", title, "category", label)
	return label
}

package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"
)

// Request is a generation request payload: a model identifier and the
// prompt content.
type Request struct {
	Model   string
	Content string
}

// Response is a successful generation result. Key and Attempt identify
// which credential answered and on which try; they are observability
// only, not part of the caller contract beyond success.
type Response struct {
	Text    string
	Key     int
	Attempt int
}

// Retry policy constants. The backoff formula is a literal contract:
// rate-limited failures wait retryDelay * attemptNumber before the next
// attempt on the same key; other failures wait the short fixed delay.
// The per-key attempt budget never resets when moving to the next key.
const (
	maxAttemptsPerKey = 3
	retryDelayUnits   = 2
	shortDelayUnits   = 1
)

// generateFunc performs one raw generation attempt with the key at the
// given index. It is a seam for tests; the production implementation
// calls the Gemini API.
type generateFunc func(ctx context.Context, key int, req Request) (string, error)

// Client retries a generation call across an ordered list of API keys.
// Calls are sequential and blocking by design: failover is a resilience
// concern, not a concurrency one. The key list is immutable after
// construction and safe for concurrent reads.
type Client struct {
	keys     int
	generate generateFunc
	logger   *slog.Logger

	// timeUnit scales all delays; one second in production, shortened
	// in tests.
	timeUnit time.Duration

	// sleep waits for d or until the context is cancelled.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewClient creates a failover client holding one Gemini API client per
// configured key, in priority order (first key = primary). Zero keys is
// a construction-time error, never a runtime failure.
func NewClient(ctx context.Context, logger *slog.Logger, apiKeys []string) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if len(apiKeys) == 0 {
		return nil, ErrNoCredentials
	}

	clients := make([]*genai.Client, 0, len(apiKeys))
	for i, key := range apiKeys {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client for key #%d: %w", i+1, err)
		}
		clients = append(clients, client)
	}

	logger.Info("Gemini failover client initialized", "keys", len(apiKeys))

	return &Client{
		keys: len(apiKeys),
		generate: func(ctx context.Context, key int, req Request) (string, error) {
			resp, err := clients[key].Models.GenerateContent(ctx, req.Model, genai.Text(req.Content), nil)
			if err != nil {
				return "", err
			}
			text := resp.Text()
			if text == "" {
				return "", errors.New("empty response from model")
			}
			return text, nil
		},
		logger:   logger,
		timeUnit: time.Second,
		sleep:    sleepContext,
	}, nil
}

// Generate performs the generation call with failover. Keys are tried
// in priority order, each for up to maxAttemptsPerKey attempts, with
// the documented backoff between attempts. It fails with an error
// matching ErrAllCredentialsExhausted only after every key has been
// tried and failed.
func (c *Client) Generate(ctx context.Context, req Request) (*Response, error) {
	if req.Content == "" {
		return nil, ErrEmptyContent
	}

	for key := 0; key < c.keys; key++ {
		c.logger.Info("trying Gemini API key", "key", key+1, "keys", c.keys)

		resp, err := c.tryKey(ctx, key, req)
		if err == nil {
			return resp, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		c.logger.Warn("Gemini API key exhausted, moving to next",
			"key", key+1,
			"attempts", maxAttemptsPerKey)
	}

	return nil, &ExhaustedError{Keys: c.keys, AttemptsPerKey: maxAttemptsPerKey}
}

// tryKey runs the per-key attempt loop: up to maxAttemptsPerKey calls,
// sleeping between attempts unless the failed attempt was the last one
// allowed for this key.
func (c *Client) tryKey(ctx context.Context, key int, req Request) (*Response, error) {
	var lastErr error

	for attempt := 1; attempt <= maxAttemptsPerKey; attempt++ {
		c.logger.Debug("Gemini API call",
			"key", key+1,
			"attempt", attempt,
			"max_attempts", maxAttemptsPerKey)

		text, err := c.generate(ctx, key, req)
		if err == nil {
			c.logger.Info("Gemini API call succeeded",
				"key", key+1,
				"attempt", attempt)
			return &Response{Text: text, Key: key, Attempt: attempt}, nil
		}
		lastErr = err

		c.logger.Warn("Gemini API call failed",
			"key", key+1,
			"attempt", attempt,
			"error", err)

		if attempt == maxAttemptsPerKey {
			break
		}

		var delay time.Duration
		if isRateLimited(err) {
			// Linear backoff on quota exhaustion, scaled by the attempt
			// number within this key.
			delay = time.Duration(retryDelayUnits*attempt) * c.timeUnit
			c.logger.Info("rate limit detected, backing off",
				"key", key+1,
				"delay", delay)
		} else {
			delay = time.Duration(shortDelayUnits) * c.timeUnit
		}

		if err := c.sleep(ctx, delay); err != nil {
			return nil, err
		}
	}

	return nil, lastErr
}

// isRateLimited reports whether the error signals quota or resource
// exhaustion on the remote side.
func isRateLimited(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == 429 || apiErr.Status == "RESOURCE_EXHAUSTED" {
			return true
		}
	}

	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

// sleepContext waits for d or until ctx is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

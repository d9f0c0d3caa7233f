package gemini

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubClient builds a Client around a scripted generate function, with
// sleeps recorded instead of slept.
func stubClient(keys int, gen generateFunc) (*Client, *[]time.Duration) {
	var delays []time.Duration
	c := &Client{
		keys:     keys,
		generate: gen,
		logger:   testLogger(),
		timeUnit: time.Millisecond,
		sleep: func(_ context.Context, d time.Duration) error {
			delays = append(delays, d)
			return nil
		},
	}
	return c, &delays
}

func TestNewClientRequiresCredentials(t *testing.T) {
	t.Parallel()

	_, err := NewClient(context.Background(), testLogger(), nil)
	assert.ErrorIs(t, err, ErrNoCredentials)

	_, err = NewClient(context.Background(), testLogger(), []string{})
	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestGenerateEmptyContent(t *testing.T) {
	t.Parallel()

	c, _ := stubClient(1, func(context.Context, int, Request) (string, error) {
		t.Fatal("generate must not be called for an empty request")
		return "", nil
	})

	_, err := c.Generate(context.Background(), Request{Model: "gemini-2.5-flash"})
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestGenerateFirstKeySucceeds(t *testing.T) {
	t.Parallel()

	calls := 0
	c, delays := stubClient(3, func(_ context.Context, key int, _ Request) (string, error) {
		calls++
		assert.Equal(t, 0, key, "only the primary key should be used")
		return "generated text", nil
	})

	resp, err := c.Generate(context.Background(), Request{Model: "m", Content: "prompt"})

	require.NoError(t, err)
	assert.Equal(t, "generated text", resp.Text)
	assert.Equal(t, 0, resp.Key)
	assert.Equal(t, 1, resp.Attempt)
	assert.Equal(t, 1, calls)
	assert.Empty(t, *delays, "no backoff on immediate success")
}

func TestGenerateExhaustsEachKeyBeforeFailingOver(t *testing.T) {
	t.Parallel()

	// Only the last of three keys ever succeeds. Every earlier key must
	// burn exactly maxAttemptsPerKey attempts first.
	attemptsPerKey := make(map[int]int)
	c, _ := stubClient(3, func(_ context.Context, key int, _ Request) (string, error) {
		attemptsPerKey[key]++
		if key == 2 {
			return "late success", nil
		}
		return "", errors.New("boom")
	})

	resp, err := c.Generate(context.Background(), Request{Model: "m", Content: "prompt"})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Key)
	assert.Equal(t, maxAttemptsPerKey, attemptsPerKey[0])
	assert.Equal(t, maxAttemptsPerKey, attemptsPerKey[1])
	assert.Equal(t, 1, attemptsPerKey[2])
}

func TestGenerateAllKeysFail(t *testing.T) {
	t.Parallel()

	total := 0
	c, _ := stubClient(4, func(context.Context, int, Request) (string, error) {
		total++
		return "", errors.New("boom")
	})

	_, err := c.Generate(context.Background(), Request{Model: "m", Content: "prompt"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAllCredentialsExhausted)
	assert.Equal(t, 4*maxAttemptsPerKey, total,
		"total attempts must be keys x attempts-per-key")

	var exhausted *ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 4, exhausted.Keys)
	assert.Equal(t, maxAttemptsPerKey, exhausted.AttemptsPerKey)
}

func TestGenerateRateLimitBackoff(t *testing.T) {
	t.Parallel()

	// Rate-limited failures back off linearly with the attempt number:
	// retryDelay*1 then retryDelay*2, with no sleep after the final
	// attempt of a key.
	c, delays := stubClient(1, func(context.Context, int, Request) (string, error) {
		return "", errors.New("googleapi: Error 429: RESOURCE_EXHAUSTED")
	})

	_, err := c.Generate(context.Background(), Request{Model: "m", Content: "prompt"})

	assert.ErrorIs(t, err, ErrAllCredentialsExhausted)
	require.Len(t, *delays, maxAttemptsPerKey-1)
	assert.Equal(t, time.Duration(retryDelayUnits)*time.Millisecond, (*delays)[0])
	assert.Equal(t, time.Duration(retryDelayUnits*2)*time.Millisecond, (*delays)[1])
}

func TestGenerateOtherErrorShortDelay(t *testing.T) {
	t.Parallel()

	c, delays := stubClient(1, func(context.Context, int, Request) (string, error) {
		return "", errors.New("connection reset by peer")
	})

	_, err := c.Generate(context.Background(), Request{Model: "m", Content: "prompt"})

	assert.ErrorIs(t, err, ErrAllCredentialsExhausted)
	require.Len(t, *delays, maxAttemptsPerKey-1)
	for _, d := range *delays {
		assert.Equal(t, time.Duration(shortDelayUnits)*time.Millisecond, d,
			"non-rate-limit failures use the short fixed delay")
	}
}

func TestGenerateBackoffResetsPerKey(t *testing.T) {
	t.Parallel()

	// The linear backoff factor is the attempt number within the
	// current key, so it starts over on failover.
	c, delays := stubClient(2, func(context.Context, int, Request) (string, error) {
		return "", errors.New("RESOURCE_EXHAUSTED")
	})

	_, err := c.Generate(context.Background(), Request{Model: "m", Content: "prompt"})

	assert.ErrorIs(t, err, ErrAllCredentialsExhausted)
	unit := time.Millisecond
	assert.Equal(t, []time.Duration{
		2 * unit, 4 * unit, // key 1, attempts 1 and 2
		2 * unit, 4 * unit, // key 2: factor starts over
	}, *delays)
}

func TestGenerateContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	c := &Client{
		keys: 2,
		generate: func(context.Context, int, Request) (string, error) {
			return "", errors.New("boom")
		},
		logger:   testLogger(),
		timeUnit: time.Millisecond,
		sleep: func(ctx context.Context, _ time.Duration) error {
			cancel()
			return ctx.Err()
		},
	}

	_, err := c.Generate(ctx, Request{Model: "m", Content: "prompt"})

	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrAllCredentialsExhausted)
}

func TestIsRateLimited(t *testing.T) {
	t.Parallel()

	assert.True(t, isRateLimited(errors.New("Error 429: too many requests")))
	assert.True(t, isRateLimited(errors.New("rpc error: RESOURCE_EXHAUSTED")))
	assert.False(t, isRateLimited(errors.New("connection refused")))
	assert.False(t, isRateLimited(errors.New("invalid request")))
}

package gemini

import (
	"errors"
	"fmt"
)

// Error definitions for the gemini package.
var (
	// ErrNoCredentials is returned at construction when no API key is
	// configured. A client cannot exist without at least one key.
	ErrNoCredentials = errors.New("no Gemini API keys configured")

	// ErrAllCredentialsExhausted is returned when every key has failed
	// all of its allowed attempts.
	ErrAllCredentialsExhausted = errors.New("all Gemini API keys exhausted")

	// ErrEmptyContent is returned when a request carries no content.
	ErrEmptyContent = errors.New("request content cannot be empty")
)

// ExhaustedError reports the scope of a total failover failure: how
// many keys were tried and the attempt budget each one used up.
type ExhaustedError struct {
	Keys           int
	AttemptsPerKey int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("all %d Gemini API keys failed after %d attempts each",
		e.Keys, e.AttemptsPerKey)
}

// Is makes errors.Is(err, ErrAllCredentialsExhausted) match.
func (e *ExhaustedError) Is(target error) bool {
	return target == ErrAllCredentialsExhausted
}

// Package gemini provides the failover client for Google's Gemini API.
// The client owns an ordered list of interchangeable API keys and
// retries a generation call across them: a bounded number of attempts
// per key with backoff, then the next key in priority order. Callers
// never need to know how many keys exist; they see either a response or
// ErrAllCredentialsExhausted.
package gemini

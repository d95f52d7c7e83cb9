package ai

import "errors"

// Sentinel errors forming the chat-path error taxonomy. Adapters wrap their
// provider-specific failures with one of these so callers can classify
// without importing provider packages.
var (
	// ErrMissingAPIKey is returned before any network call when the
	// configured credential is absent or fails the format check.
	ErrMissingAPIKey = errors.New("ai: missing or malformed API key")

	// ErrUnauthorized is returned when the provider rejected the credential.
	ErrUnauthorized = errors.New("ai: API key rejected")

	// ErrRateLimited is returned when the provider throttled the request.
	ErrRateLimited = errors.New("ai: rate limited")

	// ErrUpstream is returned for provider-side server errors.
	ErrUpstream = errors.New("ai: upstream model error")

	// ErrNetwork is returned when the provider could not be reached.
	ErrNetwork = errors.New("ai: network error")
)

// UserMessage maps a chat-request error to the fixed human-readable message
// shown to the user as a bot reply. Unknown errors get a generic message.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingAPIKey):
		return "The model API key is missing or malformed. Please configure a valid key and try again."
	case errors.Is(err, ErrUnauthorized):
		return "The model API key was rejected. Please check your credentials."
	case errors.Is(err, ErrRateLimited):
		return "The model is receiving too many requests right now. Please wait a moment and try again."
	case errors.Is(err, ErrUpstream):
		return "The model service is currently having trouble. Please try again later."
	case errors.Is(err, ErrNetwork):
		return "Could not reach the model service. Please check your network connection."
	default:
		return "Something went wrong while generating the answer. Please try again."
	}
}

// ErrorKind returns a short machine-readable tag for an error from the
// taxonomy, for inclusion in API payloads.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrMissingAPIKey):
		return "config"
	case errors.Is(err, ErrUnauthorized):
		return "auth"
	case errors.Is(err, ErrRateLimited):
		return "rate_limit"
	case errors.Is(err, ErrUpstream):
		return "upstream"
	case errors.Is(err, ErrNetwork):
		return "network"
	default:
		return "unknown"
	}
}

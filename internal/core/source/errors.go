package source

import (
	"errors"
	"fmt"
)

// Kind classifies why a tier could not produce data.
type Kind string

const (
	KindTransport    Kind = "transport"
	KindAPI          Kind = "api"
	KindRateLimited  Kind = "rate_limited"
	KindParse        Kind = "parse"
	KindUserNotFound Kind = "user_not_found"
	KindSynthetic    Kind = "synthetic"
)

// Sentinel errors, one per Kind, for use with errors.Is.
var (
	ErrTransport    = errors.New("network error")
	ErrAPI          = errors.New("api error")
	ErrRateLimited  = errors.New("rate limit exceeded, please try again later")
	ErrParse        = errors.New("failed to parse data")
	ErrUserNotFound = errors.New("user not found")
	ErrSynthetic    = errors.New("simulated data unavailable")

	// ErrSkipped tells the client a tier does not apply to the request.
	// The GraphQL tier returns it when no token was supplied.
	ErrSkipped = errors.New("tier skipped")
)

var kindSentinels = map[Kind]error{
	KindTransport:    ErrTransport,
	KindAPI:          ErrAPI,
	KindRateLimited:  ErrRateLimited,
	KindParse:        ErrParse,
	KindUserNotFound: ErrUserNotFound,
	KindSynthetic:    ErrSynthetic,
}

// FetchError describes a failed tier.
type FetchError struct {
	Kind    Kind
	Tier    string
	Message string
	Err     error
}

func newFetchError(tier string, kind Kind, err error, format string, args ...interface{}) *FetchError {
	return &FetchError{
		Kind:    kind,
		Tier:    tier,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Tier, kindSentinels[e.Kind])
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += fmt.Sprintf(" (%v)", e.Err)
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for e.Kind.
func (e *FetchError) Is(target error) bool {
	sentinel, ok := kindSentinels[e.Kind]
	return ok && target == sentinel
}

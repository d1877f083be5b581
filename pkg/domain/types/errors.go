package types

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrInvalidOption = goerr.New("invalid option")

	// ErrUnauthenticated means the request has no valid session.
	ErrUnauthenticated = goerr.New("unauthenticated")
	// ErrUpstream is a failure reported by GitHub or the generation service.
	ErrUpstream = goerr.New("upstream error")
	// ErrGeneration means the generation service output could not be used.
	ErrGeneration         = goerr.New("generation error")
	ErrRateLimitExhausted = goerr.New("rate limit retries exhausted")
	ErrMalformedResponse  = goerr.New("malformed generation response")
	ErrPullRequest        = goerr.New("pull request error")
	ErrValidation         = goerr.New("validation error")

	ErrStageBusy         = goerr.New("another call is already in flight")
	ErrInvalidTransition = goerr.New("invalid workflow transition")
)

type ErrorKind string

const (
	KindUnauthenticated    ErrorKind = "Unauthenticated"
	KindUpstream           ErrorKind = "UpstreamError"
	KindGeneration         ErrorKind = "GenerationError"
	KindRateLimitExhausted ErrorKind = "RateLimitExhausted"
	KindMalformedResponse  ErrorKind = "MalformedResponse"
	KindPullRequest        ErrorKind = "PullRequestError"
	KindValidation         ErrorKind = "ValidationError"
	KindBusy               ErrorKind = "Busy"
	KindInvalidTransition  ErrorKind = "InvalidTransition"
	KindInternal           ErrorKind = "InternalError"
)

// Kind classifies err by the sentinel it wraps. The most specific kind wins, so a
// rate limit exhaustion that happened while generating summaries is still reported
// as RateLimitExhausted.
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnauthenticated):
		return KindUnauthenticated
	case errors.Is(err, ErrRateLimitExhausted):
		return KindRateLimitExhausted
	case errors.Is(err, ErrMalformedResponse):
		return KindMalformedResponse
	case errors.Is(err, ErrPullRequest):
		return KindPullRequest
	case errors.Is(err, ErrGeneration):
		return KindGeneration
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrStageBusy):
		return KindBusy
	case errors.Is(err, ErrInvalidTransition):
		return KindInvalidTransition
	case errors.Is(err, ErrUpstream):
		return KindUpstream
	default:
		return KindInternal
	}
}

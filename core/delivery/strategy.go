// ABOUTME: Delivery strategy contract and attempt result types
// ABOUTME: Strategies report unsupported, success, or failure; the pipeline drives the chain

package delivery

import (
	"context"

	"tabclip-api/core/domain"
)

// Status is the outcome of one strategy attempt.
type Status int

const (
	// StatusUnsupported means the strategy cannot run in this environment;
	// the pipeline moves on to the next strategy.
	StatusUnsupported Status = iota

	// StatusSuccess means the payload reached the clipboard.
	StatusSuccess

	// StatusFailure means the strategy ran and failed; the pipeline stops.
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "unsupported"
	}
}

// Result is one strategy attempt's outcome. Err is set for failures and
// optionally explains why a strategy was unsupported.
type Result struct {
	Status Status
	Err    error
}

// Strategy is one way of getting a payload onto the clipboard. Attempt must
// return StatusUnsupported rather than StatusFailure when the strategy's
// prerequisites are absent, so the pipeline can keep falling through.
type Strategy interface {
	Name() string
	Attempt(ctx context.Context, payload *domain.Payload) Result
}

func unsupported(err error) Result {
	return Result{Status: StatusUnsupported, Err: err}
}

func success() Result {
	return Result{Status: StatusSuccess}
}

func failure(err error) Result {
	return Result{Status: StatusFailure, Err: err}
}

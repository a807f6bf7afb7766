// Package dispatch runs one provider call through its fixed pipeline:
// acquire token, call upstream, normalize, and on failure apply the call's
// explicit Policy.
package dispatch

import (
	"context"
	"errors"
	"fmt"

	"travelease/pkg/amadeus"
	apperrors "travelease/pkg/errors"
	"travelease/pkg/logger"
)

type Stage string

const (
	StageToken     Stage = "acquire_token"
	StageUpstream  Stage = "call_upstream"
	StageNormalize Stage = "normalize"
)

var ErrNoFallback = errors.New("dispatch: policy falls back but call has no fallback")

type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s step failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Call describes one dispatch. Message is the generic error text returned
// when a propagated failure carries no provider body.
type Call[T any] struct {
	Name      string
	Policy    Policy
	Message   string
	Upstream  func(ctx context.Context, token string) (*amadeus.Response, error)
	Normalize func(resp *amadeus.Response) (T, error)
	Fallback  func() (T, error)
}

// Result carries the value and, when fallback data was served, the failure it masks.
type Result[T any] struct {
	Value    T
	Degraded bool
	Cause    error
}

type Dispatcher struct {
	tokens amadeus.TokenSource
	log    *logger.Logger
}

func New(tokens amadeus.TokenSource, log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		tokens: tokens,
		log:    log,
	}
}

func Run[T any](ctx context.Context, d *Dispatcher, call Call[T]) (Result[T], error) {
	token, err := d.tokens.AcquireToken(ctx)
	if err != nil {
		return fail(d, call, &StageError{Stage: StageToken, Err: err})
	}

	resp, err := call.Upstream(ctx, token)
	if err != nil {
		return fail(d, call, &StageError{Stage: StageUpstream, Err: err})
	}

	value, err := call.Normalize(resp)
	if err != nil {
		return fail(d, call, &StageError{Stage: StageNormalize, Err: err})
	}

	return Result[T]{Value: value}, nil
}

func fail[T any](d *Dispatcher, call Call[T], stageErr *StageError) (Result[T], error) {
	var zero Result[T]

	if !call.Policy.FallsBack(stageErr.Stage) {
		d.log.Error("Dispatch failed",
			"dispatch", call.Name,
			"policy", call.Policy.String(),
			"stage", string(stageErr.Stage),
			"error", stageErr.Err,
		)
		return zero, toAppError(call.Message, stageErr)
	}

	if call.Fallback == nil {
		return zero, apperrors.Internal(call.Message, fmt.Errorf("%w: %s", ErrNoFallback, call.Name))
	}

	d.log.Warn("Serving fallback data",
		"dispatch", call.Name,
		"policy", call.Policy.String(),
		"stage", string(stageErr.Stage),
		"error", stageErr.Err,
	)

	value, err := call.Fallback()
	if err != nil {
		d.log.Error("Fallback failed", "dispatch", call.Name, "error", err)
		return zero, apperrors.Internal(call.Message, err)
	}

	return Result[T]{Value: value, Degraded: true, Cause: stageErr}, nil
}

// toAppError mirrors provider failures of the resource call; every other
// failure becomes the call's generic message.
func toAppError(message string, stageErr *StageError) error {
	switch stageErr.Stage {
	case StageToken:
		return apperrors.UpstreamAuth(message, stageErr)
	case StageUpstream:
		if upErr, ok := amadeus.AsUpstreamError(stageErr.Err); ok {
			return apperrors.Upstream(upErr.StatusCode, upErr.Body, message, stageErr)
		}
	}
	return apperrors.Internal(message, stageErr)
}

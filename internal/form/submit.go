package form

import (
	"context"
	"errors"
	"sync/atomic"

	"ekthaa/internal/apiclient"
	"ekthaa/internal/domain"
)

// Submitter rejects a submission while a previous one is still running.
type Submitter struct {
	pending atomic.Bool
}

// Submit runs fn unless another call is in flight, in which case it returns
// domain.ErrSubmitInProgress without calling fn.
func (s *Submitter) Submit(ctx context.Context, fn func(context.Context) error) error {
	if !s.pending.CompareAndSwap(false, true) {
		return domain.ErrSubmitInProgress
	}
	defer s.pending.Store(false)
	return fn(ctx)
}

// Pending reports whether a submission is in flight.
func (s *Submitter) Pending() bool {
	return s.pending.Load()
}

type FlashType string

const (
	FlashSuccess FlashType = "success"
	FlashError   FlashType = "error"
)

// Flash is a one-shot status message shown after a form action.
type Flash struct {
	Type    FlashType `json:"type"`
	Message string    `json:"message"`
}

func Success(msg string) Flash {
	return Flash{Type: FlashSuccess, Message: msg}
}

// FlashFromError picks the message to show for err: the validation text, the
// server's error message, or fallback.
func FlashFromError(err error, fallback string) Flash {
	var (
		verr   *domain.ValidationError
		ferr   *domain.FieldError
		apiErr *apiclient.APIError
	)
	switch {
	case err == nil:
		return Success(fallback)
	case errors.As(err, &verr):
		return Flash{Type: FlashError, Message: verr.Error()}
	case errors.As(err, &ferr):
		return Flash{Type: FlashError, Message: ferr.Message}
	case errors.As(err, &apiErr) && apiErr.Message != "":
		return Flash{Type: FlashError, Message: apiErr.Message}
	case errors.Is(err, domain.ErrUnauthorized):
		return Flash{Type: FlashError, Message: "Session expired. Please log in again."}
	case errors.Is(err, domain.ErrSubmitInProgress):
		return Flash{Type: FlashError, Message: "Please wait, the previous request is still in progress"}
	default:
		return Flash{Type: FlashError, Message: fallback}
	}
}

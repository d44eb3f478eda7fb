package api

import (
	"errors"
	"fmt"
)

// Kind classifies what went wrong with an API call.
type Kind string

const (
	// KindCredentialsRejected: the login/register endpoint answered non-2xx.
	KindCredentialsRejected Kind = "credentials_rejected"
	// KindRequestRejected: any other endpoint answered non-2xx.
	KindRequestRejected Kind = "request_rejected"
	// KindMalformedResponse: a 2xx body could not be parsed or lacked a
	// required field.
	KindMalformedResponse Kind = "malformed_response"
	// KindNetworkUnavailable: no response at all.
	KindNetworkUnavailable Kind = "network_unavailable"
	// KindSecondaryEffect: a best-effort follow-up call failed after the
	// primary operation already succeeded.
	KindSecondaryEffect Kind = "secondary_effect_failed"
)

// FallbackMessage is surfaced when the server gives nothing usable.
const FallbackMessage = "the server returned an error"

// Error is the single error type every API call returns. Message is always
// safe to show to a user.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}
	return false
}

// Message extracts the user-facing message from err, falling back to
// err.Error() for non-API errors.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

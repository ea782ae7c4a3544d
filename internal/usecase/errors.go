package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrForbidden             = errors.New("forbidden")
	ErrUpstream              = errors.New("upstream failure")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// Error pairs a sentinel kind with the message shown to API clients.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func invalidInput(format string, args ...any) error {
	return &Error{Kind: ErrInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func notFound(message string) error {
	return &Error{Kind: ErrNotFound, Message: message}
}

// Forbidden builds a 403-class error with a client-facing message.
func Forbidden(message string) error {
	return &Error{Kind: ErrForbidden, Message: message}
}

// PublicMessage returns the client-facing message carried by err, if any.
func PublicMessage(err error) (string, bool) {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Message, true
	}
	var up *UpstreamError
	if errors.As(err, &up) {
		return up.Message, true
	}
	return "", false
}

type UpstreamKind string

const (
	// UpstreamNetwork is a connectivity failure: nothing usable came back.
	UpstreamNetwork UpstreamKind = "network"
	// UpstreamHTTPStatus is a non-2xx answer.
	UpstreamHTTPStatus UpstreamKind = "http_status"
	// UpstreamAPIPayload is a 2xx answer carrying an error envelope.
	UpstreamAPIPayload UpstreamKind = "api_payload"
)

// UpstreamError is a classified failure of the upstream football API. Only the
// network kind triggers the local fallback.
type UpstreamError struct {
	Kind     UpstreamKind
	Endpoint string
	Status   int
	Message  string
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "upstream " + string(e.Kind) + " failure"
}

func (e *UpstreamError) Unwrap() []error {
	sentinel := ErrUpstream
	if e.Kind == UpstreamNetwork {
		sentinel = ErrDependencyUnavailable
	}
	if e.Err == nil {
		return []error{sentinel}
	}
	return []error{sentinel, e.Err}
}

// IsNetworkFailure reports whether err is a network-class upstream failure.
func IsNetworkFailure(err error) bool {
	var up *UpstreamError
	return errors.As(err, &up) && up.Kind == UpstreamNetwork
}

// IsCanceled reports whether the caller went away, which is not an upstream fault.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}

// ParsePositiveInt parses a positive integer path or query value. label names
// the value in the error message, e.g. "ID do jogador inválido".
func ParsePositiveInt(raw, label string) (int, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsInf(v, 0) || v != math.Trunc(v) || v <= 0 || v > math.MaxInt32 {
		return 0, invalidInput("%s inválido", label)
	}
	return int(v), nil
}

// ParseOptionalPositiveInt is ParsePositiveInt with a fallback for empty input.
func ParseOptionalPositiveInt(raw, label string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	return ParsePositiveInt(raw, label)
}

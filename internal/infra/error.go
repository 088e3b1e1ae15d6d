package infra

import (
	"errors"
	"log/slog"

	"offerbee-storefront/internal/pkg/errs"
)

type GatewayErrorKind string

// GatewayError classifies a failed exchange with the upstream API.
// KindRejected carries the HTTP status and whatever message the server
// attached; KindUnreachable means the request never got an HTTP response.
type GatewayError struct {
	Kind       GatewayErrorKind
	StatusCode int
	Message    string // server-provided message, may be empty
	msg        string
	err        error // wrapped low-level error
}

func (e GatewayError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e GatewayError) Unwrap() error {
	return e.err
}

func WrapGatewayErr(slogger *slog.Logger, kind GatewayErrorKind, msg string, err error) error {
	slogger.Error("Gateway error: "+msg, slog.String("kind", string(kind)))

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return GatewayError{Kind: kind, msg: msg, err: err}
}

func NewRejectedErr(slogger *slog.Logger, statusCode int, serverMessage, msg string) error {
	slogger.Warn("Gateway rejection: "+msg,
		slog.Int("status", statusCode),
		slog.String("server_message", serverMessage),
	)

	return GatewayError{
		Kind:       KindRejected,
		StatusCode: statusCode,
		Message:    serverMessage,
		msg:        msg,
	}
}

func IsKind(err error, kind GatewayErrorKind) bool {
	var e GatewayError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// RejectionDetails extracts the status and server message from a
// KindRejected error.
func RejectionDetails(err error) (status int, message string, ok bool) {
	var e GatewayError
	if errors.As(err, &e) && e.Kind == KindRejected {
		return e.StatusCode, e.Message, true
	}
	return 0, "", false
}

// Infrastructure-specific error kinds
const (
	KindUnreachable GatewayErrorKind = "UNREACHABLE"
	KindRejected    GatewayErrorKind = "REJECTED"
	KindBadPayload  GatewayErrorKind = "BAD_PAYLOAD"
)

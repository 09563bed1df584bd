package handle

import (
	"errors"
	"fmt"

	"bfhl-api/api/internal/metrics"
)

var (
	ErrInvalidRequestShape = errors.New("invalid request shape")
	ErrUnknownOperation    = errors.New("unknown operation")
	ErrOperationFailure    = errors.New("operation failure")
)

// Messages returned to clients. OperationFailure deliberately hides its cause.
const (
	msgInvalidShape     = "Exactly one input key is required"
	msgInvalidKey       = "Invalid key"
	msgBadRequest       = "Bad Request"
	msgMethodNotAllowed = "Method Not Allowed"
)

func failf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrOperationFailure}, args...)...)
}

// classify maps an error to its public message and metrics outcome.
func classify(err error) (msg, outcome string) {
	switch {
	case errors.Is(err, ErrInvalidRequestShape):
		return msgInvalidShape, metrics.OutcomeInvalidShape
	case errors.Is(err, ErrUnknownOperation):
		return msgInvalidKey, metrics.OutcomeInvalidKey
	default:
		return msgBadRequest, metrics.OutcomeFailure
	}
}

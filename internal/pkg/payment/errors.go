package payment

import "errors"

// TransientError marks a store failure the gateway should retry by
// redelivering the webhook. Redelivery is safe because reconciliation is
// idempotent. Wrap with NewTransientError, detect with IsTransient.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	return "payment: transient " + e.Op + " error: " + e.Err.Error()
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// NewTransientError wraps a store error for retryable surfacing.
func NewTransientError(op string, err error) error {
	return &TransientError{Op: op, Err: err}
}

// IsTransient reports whether err should map to a retryable (5xx) response.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

package client

import (
	"errors"

	"github.com/dmitrijs2005/gratilog/internal/journal"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// RejectedError is a refusal by the journal service (validation, missing
// entry, duplicate appreciation and so on). Reason is the service's own text
// and is meant to be shown to the user as is.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string { return e.Reason }

// Reason extracts the service's rejection text from err, if there is one.
func Reason(err error) (string, bool) {
	var re *RejectedError
	if errors.As(err, &re) {
		return re.Reason, true
	}
	return "", false
}

// AsResult folds a service call into a journal.Result. Rejections keep their
// reason; any other failure is reported as fallback.
func AsResult[T any](v T, err error, fallback string) journal.Result[T] {
	if err == nil {
		return journal.Ok(v)
	}
	if reason, ok := Reason(err); ok {
		return journal.Fail[T](reason)
	}
	return journal.Fail[T](fallback)
}

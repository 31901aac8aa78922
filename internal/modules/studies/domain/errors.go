package domain

import apperrors "lotus/internal/platform/errors"

// FetchError reports a failed study fetch. Error returns only the message the
// backend or transport gave, so callers can present it verbatim.
type FetchError struct {
	Status  int
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	return e.Message
}

func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{apperrors.ErrFetch}
	}
	return []error{apperrors.ErrFetch, e.Err}
}

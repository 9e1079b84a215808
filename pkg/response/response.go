package response

import (
	"errors"
)

type Error struct {
	Code    int
	Err     error
	Details string
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

func NewError(code int, err string) error {
	return &Error{Code: code, Err: errors.New(err)}
}

// WithDetails attaches diagnostic details to a coded error. The copy still
// matches the original sentinel under errors.Is, so handler mapping keeps
// working while operators get the extra context.
func WithDetails(err error, details string) error {
	var respErr *Error
	if !errors.As(err, &respErr) {
		return err
	}
	return &Error{Code: respErr.Code, Err: respErr.Err, Details: details}
}

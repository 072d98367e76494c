package coerce

import (
	"errors"
	"fmt"
)

// ErrUnknownAttribute is wrapped by every UnknownAttributeError.
var ErrUnknownAttribute = errors.New("unknown attribute")

// UnknownAttributeError reports a coercion request for a path the schema
// does not define.
type UnknownAttributeError struct {
	Container string
	Path      string
	Cause     error
}

func (e *UnknownAttributeError) Error() string {
	msg := fmt.Sprintf("attribute '%s' is not defined in '%s'", e.Path, e.Container)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *UnknownAttributeError) Unwrap() error { return ErrUnknownAttribute }

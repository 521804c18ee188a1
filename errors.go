package pathkit

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNoRoute is returned by Router.ResourcePath when no route is
	// registered for the object's type and the requested method.
	ErrNoRoute = errors.New("pathkit: no route")

	// ErrDuplicateRoute is returned by Router.Add when the type already
	// has a route for the method.
	ErrDuplicateRoute = errors.New("pathkit: duplicate route")
)

// DecodeError reports a query pair which could not be decoded.
// It is only returned when a QueryDecoder runs in strict mode.
type DecodeError struct {
	// Pair is the raw "key=value" text as found in the query string.
	Pair string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("pathkit: cannot decode query pair %q: %v", e.Pair, e.Err)
}

func (e *DecodeError) Cause() error  { return e.Err }
func (e *DecodeError) Unwrap() error { return e.Err }

// MissingPropertyError reports an interpolation token naming a property
// the object does not have, or whose value is nil.
// It is only returned by an Interpolator in strict mode.
type MissingPropertyError struct {
	Name     string
	Template string
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("pathkit: missing property %q for template %q", e.Name, e.Template)
}

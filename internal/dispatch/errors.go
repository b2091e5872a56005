package dispatch

import "github.com/pkg/errors"

var (
	// ErrHandlerRegistration is fatal: the table is not built.
	ErrHandlerRegistration = errors.New("handler registration failed")
	// ErrDuplicateRoute is only returned when strict routes are enabled.
	// It also matches ErrHandlerRegistration.
	ErrDuplicateRoute = errors.Wrap(ErrHandlerRegistration, "duplicate route")
	// ErrRouteNotFound means Handle was called without checking CanHandle.
	ErrRouteNotFound     = errors.New("route not found")
	ErrHandlerInvocation = errors.New("handler invocation failed")
)

package dispatch

import (
	"fmt"

	"github.com/nhdewitt/jwp-dispatch/internal/request"
	"github.com/pkg/errors"
)

// Dispatcher routes parsed requests through a Table. It holds no mutable
// state and may be shared by any number of connections.
type Dispatcher struct {
	table *Table
}

func New(table *Table) *Dispatcher {
	return &Dispatcher{table: table}
}

func (d *Dispatcher) CanHandle(req *request.Request) bool {
	_, ok := d.table.Lookup(req.Key())
	return ok
}

// Handle invokes the route registered for req and returns its result as
// a string. A nil result becomes "".
func (d *Dispatcher) Handle(req *request.Request) (string, error) {
	route, ok := d.table.Lookup(req.Key())
	if !ok {
		return "", errors.Wrapf(ErrRouteNotFound, "%s %s", req.Method(), req.Path())
	}

	args := make([]any, len(route.Params))
	for i, p := range route.Params {
		args[i] = p.resolve(req)
	}

	result, err := invoke(route, args)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", nil
	}
	return fmt.Sprint(result), nil
}

// invoke calls the handler, turning both returned errors and panics into
// ErrHandlerInvocation. Only the cause's message survives.
func invoke(route Route, args []any) (result any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			result = nil
			err = errors.Wrapf(ErrHandlerInvocation, "%s: panic: %v", route.Name, rec)
		}
	}()

	result, herr := route.Handler(args...)
	if herr != nil {
		return nil, errors.Wrapf(ErrHandlerInvocation, "%s: %s", route.Name, herr.Error())
	}
	return result, nil
}

package dispatch

import (
	"log"
	"sort"

	"github.com/nhdewitt/jwp-dispatch/internal/request"
	"github.com/pkg/errors"
)

// HandlerFunc is a routed operation. args line up with the route's Params.
type HandlerFunc func(args ...any) (any, error)

// Route binds one method and path to an operation.
type Route struct {
	Method  request.Method
	Path    string
	Name    string
	Handler HandlerFunc
	Params  []Param
}

// Controller exposes the routes of one application object.
type Controller interface {
	Routes() []Route
}

// Constructor creates a Controller at startup.
type Constructor func() (Controller, error)

// Table maps routing keys to routes. It is read-only once Build returns.
type Table struct {
	routes map[request.Key]Route
}

type options struct {
	strict bool
}

type Option func(*options)

// WithStrictRoutes makes a duplicate (method, path) a registration error
// instead of letting the later route win.
func WithStrictRoutes() Option {
	return func(o *options) {
		o.strict = true
	}
}

// Build constructs every controller in order and registers its routes.
// Any failure aborts the whole build.
func Build(ctors []Constructor, opts ...Option) (*Table, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	t := &Table{routes: map[request.Key]Route{}}
	for i, ctor := range ctors {
		if ctor == nil {
			return nil, errors.Wrapf(ErrHandlerRegistration, "constructor %d is nil", i)
		}
		c, err := ctor()
		if err != nil {
			return nil, errors.Wrapf(ErrHandlerRegistration, "constructor %d: %v", i, err)
		}
		if c == nil {
			return nil, errors.Wrapf(ErrHandlerRegistration, "constructor %d returned no controller", i)
		}
		if err := t.register(c.Routes(), o.strict); err != nil {
			return nil, err
		}
	}
	log.Printf("dispatch table loaded: %d routes from %d controllers", len(t.routes), len(ctors))

	return t, nil
}

func (t *Table) register(routes []Route, strict bool) error {
	for _, r := range routes {
		if !r.Method.Valid() {
			return errors.Wrapf(ErrHandlerRegistration, "route %q: unsupported method %q", r.Name, r.Method)
		}
		if r.Path == "" {
			return errors.Wrapf(ErrHandlerRegistration, "route %q: empty path", r.Name)
		}
		if r.Handler == nil {
			return errors.Wrapf(ErrHandlerRegistration, "route %s %s: nil handler", r.Method, r.Path)
		}
		if r.Name == "" {
			r.Name = r.Method.String() + " " + r.Path
		}

		key := request.Key{Method: r.Method, Path: r.Path}
		if prev, ok := t.routes[key]; ok {
			if strict {
				return errors.Wrapf(ErrDuplicateRoute, "%s %s registered by %q and %q", r.Method, r.Path, prev.Name, r.Name)
			}
			log.Printf("route %s %s: %q replaces %q", r.Method, r.Path, r.Name, prev.Name)
		}
		t.routes[key] = r
	}
	return nil
}

func (t *Table) Lookup(key request.Key) (Route, bool) {
	r, ok := t.routes[key]
	return r, ok
}

func (t *Table) Len() int {
	return len(t.routes)
}

// Routes lists the registered routes ordered by path, then method.
func (t *Table) Routes() []Route {
	routes := make([]Route, 0, len(t.routes))
	for _, r := range t.routes {
		routes = append(routes, r)
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})
	return routes
}

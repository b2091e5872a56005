package request

import (
	"net/url"
	"strings"

	"github.com/nhdewitt/jwp-dispatch/internal/headers"
)

const (
	SessionCookie = "JSESSIONID"
	querySep      = "?"
)

// Key is the routing identity of a request.
type Key struct {
	Method Method
	Path   string
}

// Request is a parsed request. It is not modified after construction.
type Request struct {
	method  Method
	path    string
	version string
	query   map[string]string
	headers headers.Headers
	body    *string
	form    map[string]string
}

// New builds a Request from already tokenized parts. target may carry a
// query string; a nil body means the request had none.
func New(method Method, target string, h headers.Headers, body *string) *Request {
	path, rawQuery, _ := strings.Cut(target, querySep)

	r := &Request{
		method:  method,
		path:    path,
		query:   parseForm(rawQuery),
		headers: h.Clone(),
	}
	if body != nil {
		b := *body
		r.body = &b
		r.form = parseForm(b)
	}
	return r
}

func (r *Request) Method() Method { return r.method }

// Path is the request target up to the first '?'.
func (r *Request) Path() string { return r.path }

func (r *Request) Version() string { return r.version }

func (r *Request) Key() Key {
	return Key{Method: r.method, Path: r.path}
}

// Equal compares routing identity only.
func (r *Request) Equal(other *Request) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.Key() == other.Key()
}

// Headers returns a copy of the header map.
func (r *Request) Headers() headers.Headers {
	return r.headers.Clone()
}

func (r *Request) Header(name string) string {
	return r.headers.Get(name)
}

func (r *Request) Body() (string, bool) {
	if r.body == nil {
		return "", false
	}
	return *r.body, true
}

func (r *Request) HasBody() bool {
	return r.body != nil
}

func (r *Request) Query(name string) (string, bool) {
	v, ok := r.query[name]
	return v, ok
}

// Field looks name up in the form-encoded body, then in the query string.
func (r *Request) Field(name string) (string, bool) {
	if v, ok := r.form[name]; ok {
		return v, true
	}
	return r.Query(name)
}

// Cookie returns the last value sent for name.
func (r *Request) Cookie(name string) (string, bool) {
	raw, ok := r.headers.Lookup("Cookie")
	if !ok {
		return "", false
	}
	value, found := "", false
	for _, pair := range strings.Split(raw, ";") {
		k, v, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if ok && k == name {
			value, found = v, true
		}
	}
	return value, found
}

func (r *Request) SessionID() string {
	id, _ := r.Cookie(SessionCookie)
	return id
}

// WithCookie returns a copy of r whose Cookie header also carries
// name=value. r itself is left untouched.
func (r *Request) WithCookie(name, value string) *Request {
	c := *r
	c.headers = r.headers.Clone()
	pair := name + "=" + value
	if raw, ok := c.headers.Lookup("Cookie"); ok && raw != "" {
		pair = raw + "; " + pair
	}
	c.headers.Replace("Cookie", pair)
	return &c
}

func parseForm(raw string) map[string]string {
	form := map[string]string{}
	if raw == "" {
		return form
	}
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		form[unescape(k)] = unescape(v)
	}
	return form
}

func unescape(s string) string {
	u, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return u
}

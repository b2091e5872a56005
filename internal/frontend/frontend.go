package frontend

import (
	"log"
	"strings"

	"github.com/nhdewitt/jwp-dispatch/internal/dispatch"
	"github.com/nhdewitt/jwp-dispatch/internal/headers"
	"github.com/nhdewitt/jwp-dispatch/internal/request"
	"github.com/nhdewitt/jwp-dispatch/internal/response"
	"github.com/nhdewitt/jwp-dispatch/internal/session"
	"github.com/nhdewitt/jwp-dispatch/internal/static"
	"github.com/pkg/errors"
)

// RedirectPrefix marks a handler result as a redirect target.
const RedirectPrefix = "redirect:"

// Frontend turns parsed requests into responses: routed requests go to
// the dispatcher, everything else is looked up as a static file.
type Frontend struct {
	dispatcher *dispatch.Dispatcher
	files      *static.Dir
	sessions   *session.Store
}

func New(d *dispatch.Dispatcher, files *static.Dir, sessions *session.Store) *Frontend {
	return &Frontend{
		dispatcher: d,
		files:      files,
		sessions:   sessions,
	}
}

func (f *Frontend) Handle(w *response.Writer, req *request.Request) {
	body, _ := req.Body()
	defer func() {
		log.Printf("%s %s (body %d bytes) -> %s", req.Method(), req.Path(), len(body), w.Status())
	}()

	extra := headers.NewHeaders()
	if f.dispatcher != nil && f.dispatcher.CanHandle(req) {
		req = f.attachSession(req, extra)
		result, err := f.dispatcher.Handle(req)
		if err != nil {
			f.HandleError(w, err)
			return
		}
		f.writeResult(w, result, extra)
		return
	}

	if f.files != nil {
		file, err := f.files.Open(req.Path())
		if err == nil {
			f.write(w, response.StatusOK, file.ContentType, extra, file.Body)
			return
		}
		if !errors.Is(err, static.ErrNotFound) {
			f.HandleError(w, err)
			return
		}
	}

	f.write(w, response.StatusNotFound, response.ContentTypeHTML, extra, errorPage(response.StatusNotFound))
}

// attachSession makes sure a routed request carries a live session,
// creating one and announcing it through extra when needed.
func (f *Frontend) attachSession(req *request.Request, extra headers.Headers) *request.Request {
	if f.sessions == nil {
		return req
	}
	s, created := f.sessions.GetOrCreate(req.SessionID())
	if !created {
		return req
	}
	extra.Set("Set-Cookie", request.SessionCookie+"="+s.ID)
	return req.WithCookie(request.SessionCookie, s.ID)
}

func (f *Frontend) writeResult(w *response.Writer, result string, extra headers.Headers) {
	if loc, ok := strings.CutPrefix(result, RedirectPrefix); ok {
		extra.Set("Location", loc)
		f.write(w, response.StatusFound, response.ContentTypeHTML, extra, nil)
		return
	}
	f.write(w, response.StatusOK, response.ContentTypeHTML, extra, []byte(result))
}

// HandleError answers a failed request. Parse failures become 400, an
// unrouted dispatch 404, anything else 500.
func (f *Frontend) HandleError(w *response.Writer, err error) {
	status := StatusFor(err)
	log.Printf("request failed (%s): %v", status, err)
	if w.Started() {
		return
	}
	f.write(w, status, response.ContentTypeHTML, nil, errorPage(status))
}

func StatusFor(err error) response.StatusCode {
	switch {
	case request.IsParseError(err):
		return response.StatusBadRequest
	case errors.Is(err, dispatch.ErrRouteNotFound):
		return response.StatusNotFound
	default:
		return response.StatusInternalServerError
	}
}

func (f *Frontend) write(w *response.Writer, status response.StatusCode, contentType string, extra headers.Headers, body []byte) {
	if err := w.Write(status, contentType, extra, body); err != nil {
		log.Printf("error writing response: %v", err)
	}
}

func errorPage(status response.StatusCode) []byte {
	return []byte("<html><body><h1>" + status.String() + "</h1></body></html>")
}

package server

import (
	"github.com/nhdewitt/jwp-dispatch/internal/request"
	"github.com/nhdewitt/jwp-dispatch/internal/response"
)

type Handler func(w *response.Writer, req *request.Request)

// ErrorHandler answers a connection whose request could not be parsed.
type ErrorHandler func(w *response.Writer, err error)

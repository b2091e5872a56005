package response

import (
	"io"

	"github.com/nhdewitt/jwp-dispatch/internal/headers"
	"github.com/pkg/errors"
)

type writerState int

const (
	StateWritingStatusLine writerState = iota
	StateWritingHeaders
	StateWritingBody
	StateDone
)

var ErrOutOfOrder = errors.New("writer state out-of-order")

// Writer writes one response: status line, then headers, then body.
type Writer struct {
	writer io.Writer
	state  writerState
	status StatusCode
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		writer: w,
		state:  StateWritingStatusLine,
	}
}

// Status is the code written so far, 0 before WriteStatusLine.
func (w *Writer) Status() StatusCode {
	return w.status
}

// Started reports whether any part of the response has been written.
func (w *Writer) Started() bool {
	return w.state != StateWritingStatusLine
}

func (w *Writer) WriteStatusLine(statusCode StatusCode) error {
	if w.state != StateWritingStatusLine {
		return ErrOutOfOrder
	}
	if err := WriteStatusLine(w.writer, statusCode); err != nil {
		return err
	}

	w.status = statusCode
	w.state = StateWritingHeaders
	return nil
}

func (w *Writer) WriteHeaders(h headers.Headers) error {
	if w.state != StateWritingHeaders {
		return ErrOutOfOrder
	}
	if err := WriteHeaders(w.writer, h); err != nil {
		return err
	}

	w.state = StateWritingBody
	return nil
}

func (w *Writer) WriteBody(p []byte) (int, error) {
	if w.state != StateWritingBody {
		return 0, ErrOutOfOrder
	}

	w.state = StateDone
	return w.writer.Write(p)
}

// Write sends a complete response. extra headers are layered over the
// defaults.
func (w *Writer) Write(statusCode StatusCode, contentType string, extra headers.Headers, body []byte) error {
	if err := w.WriteStatusLine(statusCode); err != nil {
		return err
	}
	h := GetDefaultHeaders(len(body))
	h.Replace("Content-Type", contentType)
	for k, v := range extra {
		h.Replace(k, v)
	}
	if err := w.WriteHeaders(h); err != nil {
		return err
	}
	n, err := w.WriteBody(body)
	if err != nil {
		return err
	}
	if n != len(body) {
		return io.ErrShortWrite
	}
	return nil
}

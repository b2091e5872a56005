package request

import (
	"io"
	"strconv"
	"strings"

	"github.com/nhdewitt/jwp-dispatch/internal/headers"
	"github.com/pkg/errors"
)

type parserState int

const (
	stateRequestLine parserState = iota
	stateHeaders
	stateBody
	stateDone
)

const (
	bufferSize    = 8
	lineSep       = " "
	contentLength = "Content-Length"

	initialBodyCap = 4096
)

// MaxContentLength is the largest body any reader accepts, whatever limit
// the caller passes.
const MaxContentLength = 1 << 30

func (s parserState) String() string {
	switch s {
	case stateRequestLine:
		return "request line"
	case stateHeaders:
		return "headers"
	case stateBody:
		return "body"
	case stateDone:
		return "done"
	default:
		return "unknown"
	}
}

type parser struct {
	state   parserState
	maxBody int

	method  Method
	target  string
	version string
	headers headers.Headers
	length  int
	body    []byte
}

// RequestFromReader reads exactly one request from reader.
func RequestFromReader(reader io.Reader) (*Request, error) {
	return RequestFromReaderWithLimit(reader, 0)
}

// RequestFromReaderWithLimit is RequestFromReader with an upper bound on
// the declared Content-Length. A limit of 0 disables the check.
func RequestFromReaderWithLimit(reader io.Reader, maxBody int) (*Request, error) {
	buf := make([]byte, bufferSize)
	readToIndex := 0

	p := parser{
		state:   stateRequestLine,
		maxBody: maxBody,
		headers: headers.NewHeaders(),
	}

	for p.state != stateDone {
		if readToIndex == len(buf) {
			tmpBuf := make([]byte, len(buf)*2)
			copy(tmpBuf, buf[:readToIndex])
			buf = tmpBuf
		}

		n, err := reader.Read(buf[readToIndex:])
		if n > 0 {
			readToIndex += n

			bytesParsed, perr := p.parse(buf[:readToIndex])
			if perr != nil {
				return nil, perr
			}

			copy(buf, buf[bytesParsed:readToIndex])
			readToIndex -= bytesParsed
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				if p.state != stateDone {
					return nil, errors.Wrapf(ErrMalformedRequest, "unexpected EOF while reading %s", p.state)
				}
				break
			}
			return nil, errors.Wrap(err, "error reading request")
		}
	}

	return p.request(), nil
}

func (p *parser) request() *Request {
	var body *string
	if p.body != nil {
		b := string(p.body)
		body = &b
	}
	r := New(p.method, p.target, p.headers, body)
	r.version = p.version
	return r
}

// parse consumes as much of data as the current state allows and
// returns the number of bytes used.
func (p *parser) parse(data []byte) (int, error) {
	total := 0
	for p.state != stateDone {
		n, err := p.parseSingle(data[total:])
		if err != nil {
			return 0, err
		}
		if n == 0 {
			break
		}
		total += n
	}
	return total, nil
}

func (p *parser) parseSingle(data []byte) (int, error) {
	switch p.state {
	case stateRequestLine:
		line, n := headers.SplitLine(data)
		if n == 0 {
			return 0, nil
		}
		if err := p.parseRequestLine(string(line)); err != nil {
			return 0, err
		}
		p.state = stateHeaders
		return n, nil
	case stateHeaders:
		n, done, err := p.headers.Parse(data)
		if err != nil {
			return 0, errors.Wrap(ErrUnsupportedHeader, err.Error())
		}
		if done {
			if err := p.beginBody(); err != nil {
				return 0, err
			}
		}
		return n, nil
	case stateBody:
		remaining := p.length - len(p.body)
		n := min(remaining, len(data))
		p.body = append(p.body, data[:n]...)
		if len(p.body) == p.length {
			p.state = stateDone
		}
		return n, nil
	case stateDone:
		return 0, errors.New("error: trying to read data in a done state")
	default:
		return 0, errors.New("error: unknown state")
	}
}

func (p *parser) parseRequestLine(line string) error {
	parts := strings.Split(line, lineSep)
	if len(parts) < 2 || parts[1] == "" {
		return errors.Wrapf(ErrMalformedRequest, "invalid request line: %q", line)
	}

	method, err := ParseMethod(parts[0])
	if err != nil {
		return err
	}

	p.method = method
	p.target = parts[1]
	if len(parts) > 2 {
		p.version = parts[2]
	}
	return nil
}

// beginBody decides, once headers are complete, whether a body follows.
func (p *parser) beginBody() error {
	values := p.headers.Values(contentLength)
	if len(values) == 0 {
		p.state = stateDone
		return nil
	}
	for _, v := range values[1:] {
		if v != values[0] {
			return errors.Wrapf(ErrMalformedRequest, "conflicting %s values %q", contentLength, values)
		}
	}

	length, err := parseLength(values[0])
	if err != nil {
		return err
	}
	if p.maxBody > 0 && length > p.maxBody {
		return errors.Wrapf(ErrMalformedRequest, "%s %d exceeds limit %d", contentLength, length, p.maxBody)
	}

	p.length = length
	p.body = make([]byte, 0, min(length, initialBodyCap))
	if length == 0 {
		p.state = stateDone
		return nil
	}
	p.state = stateBody
	return nil
}

// parseLength accepts only a plain run of digits no larger than
// MaxContentLength.
func parseLength(raw string) (int, error) {
	if raw == "" || strings.TrimLeft(raw, "0123456789") != "" {
		return 0, errors.Wrapf(ErrMalformedRequest, "invalid %s: %q", contentLength, raw)
	}
	length, err := strconv.Atoi(raw)
	if err != nil || length > MaxContentLength {
		return 0, errors.Wrapf(ErrMalformedRequest, "%s %q exceeds %d", contentLength, raw, MaxContentLength)
	}
	return length, nil
}

package request

import "github.com/pkg/errors"

var (
	// ErrMalformedRequest covers input that ends before a complete request
	// is read, a request line without a target, and a bad Content-Length.
	ErrMalformedRequest  = errors.New("malformed request")
	ErrUnsupportedMethod = errors.New("unsupported method")
	ErrUnsupportedHeader = errors.New("unsupported header")
)

// IsParseError reports whether err came out of the request parser.
func IsParseError(err error) bool {
	return errors.Is(err, ErrMalformedRequest) ||
		errors.Is(err, ErrUnsupportedMethod) ||
		errors.Is(err, ErrUnsupportedHeader)
}

package request

import "github.com/pkg/errors"

type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodPatch   Method = "PATCH"
	MethodDelete  Method = "DELETE"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
)

var methods = map[string]Method{
	string(MethodGet):     MethodGet,
	string(MethodPost):    MethodPost,
	string(MethodPut):     MethodPut,
	string(MethodPatch):   MethodPatch,
	string(MethodDelete):  MethodDelete,
	string(MethodHead):    MethodHead,
	string(MethodOptions): MethodOptions,
}

// ParseMethod maps a request-line token onto the supported methods.
// Tokens are matched case-sensitively.
func ParseMethod(token string) (Method, error) {
	m, ok := methods[token]
	if !ok {
		return "", errors.Wrapf(ErrUnsupportedMethod, "%q", token)
	}
	return m, nil
}

func (m Method) Valid() bool {
	_, ok := methods[string(m)]
	return ok
}

func (m Method) String() string {
	return string(m)
}

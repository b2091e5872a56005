package dispatch

import (
	"fmt"

	"github.com/nhdewitt/jwp-dispatch/internal/request"
)

type paramKind int

const (
	paramUnbound paramKind = iota
	paramField
	paramRequest
)

// Param describes how one handler argument is resolved from a request.
type Param struct {
	kind  paramKind
	field string
}

// BindField resolves to the named body field, falling back to the query
// string. A missing field resolves to "".
func BindField(name string) Param {
	return Param{kind: paramField, field: name}
}

// BindRequest resolves to the *request.Request itself.
func BindRequest() Param {
	return Param{kind: paramRequest}
}

// Unbound keeps an argument position filled with nil.
func Unbound() Param {
	return Param{}
}

func (p Param) resolve(req *request.Request) any {
	switch p.kind {
	case paramField:
		v, _ := req.Field(p.field)
		return v
	case paramRequest:
		return req
	default:
		return nil
	}
}

func (p Param) String() string {
	switch p.kind {
	case paramField:
		return fmt.Sprintf("field(%s)", p.field)
	case paramRequest:
		return "request"
	default:
		return "unbound"
	}
}

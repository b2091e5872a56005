package response

import "strconv"

type StatusCode int

const (
	StatusOK                  StatusCode = 200
	StatusFound               StatusCode = 302
	StatusBadRequest          StatusCode = 400
	StatusNotFound            StatusCode = 404
	StatusInternalServerError StatusCode = 500
)

var reasons = map[StatusCode]string{
	StatusOK:                  "OK",
	StatusFound:               "Found",
	StatusBadRequest:          "Bad Request",
	StatusNotFound:            "Not Found",
	StatusInternalServerError: "Internal Server Error",
}

// Reason returns the reason phrase, or "" for codes outside the table.
func (s StatusCode) Reason() string {
	return reasons[s]
}

func (s StatusCode) String() string {
	return strconv.Itoa(int(s)) + " " + s.Reason()
}

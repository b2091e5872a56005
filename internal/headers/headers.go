package headers

import (
	"bytes"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

const (
	lf = '\n'
	cr = '\r'
)

// ErrMissingSeparator is returned by Parse for a header line without a colon.
var ErrMissingSeparator = errors.New("header line has no ':' separator")

// ErrEmptyName is returned by Parse for a header line like ": value".
var ErrEmptyName = errors.New("header line has an empty field-name")

// Headers is a flat header map. Names keep the case they were received
// in and hold one value each.
type Headers map[string]string

func NewHeaders() Headers {
	return map[string]string{}
}

// SplitLine returns the first line in data without its terminator and the
// number of bytes it occupied. Lines end with LF; a CR right before the LF
// is dropped. n is 0 when data holds no complete line yet.
func SplitLine(data []byte) (line []byte, n int) {
	idx := bytes.IndexByte(data, lf)
	if idx == -1 {
		return nil, 0
	}
	line = data[:idx]
	if len(line) > 0 && line[len(line)-1] == cr {
		line = line[:len(line)-1]
	}
	return line, idx + 1
}

// Parse consumes a single header line from data. done is true when the
// line was the empty line ending the header block.
func (h Headers) Parse(data []byte) (n int, done bool, err error) {
	line, n := SplitLine(data)
	if n == 0 {
		return 0, false, nil
	}
	if len(line) == 0 {
		return n, true, nil
	}

	name, value, ok := bytes.Cut(line, []byte{':'})
	if !ok {
		return 0, false, errors.Wrapf(ErrMissingSeparator, "%q", line)
	}
	key := string(bytes.TrimSpace(name))
	if key == "" {
		return 0, false, errors.Wrapf(ErrEmptyName, "%q", line)
	}

	h.Set(key, string(bytes.TrimSpace(value)))

	return n, false, nil
}

// Set stores value under key exactly as spelled, replacing a previous
// value for the same spelling.
func (h Headers) Set(key, value string) {
	h[key] = value
}

// Replace drops every spelling of key before storing value under it.
func (h Headers) Replace(key, value string) {
	h.Del(key)
	h[key] = value
}

// Get looks key up case-insensitively, preferring an exact match.
func (h Headers) Get(key string) (value string) {
	v, _ := h.Lookup(key)
	return v
}

func (h Headers) Lookup(key string) (string, bool) {
	if v, ok := h[key]; ok {
		return v, true
	}
	for k, v := range h {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return "", false
}

// Values returns the value of every spelling of key, sorted.
func (h Headers) Values(key string) []string {
	var values []string
	for k, v := range h {
		if strings.EqualFold(k, key) {
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return values
}

func (h Headers) Del(key string) {
	for k := range h {
		if strings.EqualFold(k, key) {
			delete(h, k)
		}
	}
}

func (h Headers) Clone() Headers {
	c := make(Headers, len(h))
	for k, v := range h {
		c[k] = v
	}
	return c
}

// Keys returns the header names in sorted order.
func (h Headers) Keys() []string {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package headers

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadersParse(t *testing.T) {
	// Test: Valid single header
	headers := NewHeaders()
	data := []byte("Host: localhost:42069\r\n\r\n")
	n, done, err := headers.Parse(data)
	require.NoError(t, err)
	require.NotNil(t, headers)
	assert.Equal(t, "localhost:42069", headers["Host"])
	assert.Equal(t, 23, n)
	assert.False(t, done)
	n, done, err = headers.Parse(data[n:])
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.True(t, done)

	// Test: Surrounding whitespace is trimmed from name and value
	headers = NewHeaders()
	data = []byte("   Host :   localhost:42069   \r\n\r\n")
	n, done, err = headers.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "localhost:42069", headers["Host"])
	assert.Equal(t, 32, n)
	assert.False(t, done)

	// Test: Value keeps every colon after the first
	headers = NewHeaders()
	data = []byte("Referer: http://example.com:8080/a:b\r\n")
	_, _, err = headers.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "http://example.com:8080/a:b", headers["Referer"])

	// Test: Valid 3 headers
	headers = NewHeaders()
	data = []byte("Host: example.com\r\nUser-Agent: test-agent/1.0\r\nAccept: */*\r\n\r\n")
	n, done, err = headers.Parse(data)
	data = data[n:]
	require.NoError(t, err)
	assert.Equal(t, "example.com", headers["Host"])
	assert.Equal(t, 19, n)
	assert.False(t, done)
	n, done, err = headers.Parse(data)
	data = data[n:]
	require.NoError(t, err)
	assert.Equal(t, "test-agent/1.0", headers["User-Agent"])
	assert.Equal(t, 28, n)
	assert.False(t, done)
	n, done, err = headers.Parse(data)
	data = data[n:]
	require.NoError(t, err)
	assert.Equal(t, "*/*", headers["Accept"])
	assert.Equal(t, 13, n)
	assert.False(t, done)
	n, done, err = headers.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.True(t, done)

	// Valid done
	headers = NewHeaders()
	data = []byte("\r\n extra text ignored")
	n, done, err = headers.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.True(t, done)

	// Bare LF line endings
	headers = NewHeaders()
	data = []byte("Host: x\n\n")
	n, done, err = headers.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.False(t, done)
	assert.Equal(t, "x", headers["Host"])

	// Partial line (no CRLF)
	headers = NewHeaders()
	data = []byte("Host: loca")
	n, done, err = headers.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.False(t, done)

	// Invalid no colon
	headers = NewHeaders()
	data = []byte("Host localhost 42069\r\n")
	n, done, err = headers.Parse(data)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingSeparator))
	assert.Equal(t, 0, n)
	assert.False(t, done)

	// Invalid empty name
	headers = NewHeaders()
	data = []byte("  : value\r\n")
	_, _, err = headers.Parse(data)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyName))

	// Duplicate names overwrite
	headers = NewHeaders()
	data = []byte("Set-Person: lane-loves-go\r\nSet-Person: prime-loves-zig\r\nSet-Person: tj-loves-ocaml\r\n\r\n")
	for i := 0; i < 4; i++ {
		n, done, err = headers.Parse(data)
		data = data[n:]
	}
	require.NoError(t, err)
	assert.Equal(t, "tj-loves-ocaml", headers["Set-Person"])
	assert.Len(t, headers, 1)
	assert.True(t, done)
}

func TestHeadersCaseHandling(t *testing.T) {
	h := NewHeaders()
	h.Set("Content-Length", "11")
	h.Set("content-length", "12")

	assert.Len(t, h, 2)
	assert.Equal(t, "11", h.Get("Content-Length"))
	assert.Equal(t, "12", h.Get("content-length"))

	v, ok := h.Lookup("CONTENT-LENGTH")
	assert.True(t, ok)
	assert.Contains(t, []string{"11", "12"}, v)

	_, ok = h.Lookup("Host")
	assert.False(t, ok)

	assert.Equal(t, []string{"11", "12"}, h.Values("CONTENT-LENGTH"))
	assert.Nil(t, h.Values("Host"))

	h.Replace("CONTENT-length", "3")
	assert.Len(t, h, 1)
	assert.Equal(t, "3", h.Get("content-length"))

	h.Del("Content-Length")
	assert.Empty(t, h)
}

func TestHeadersCloneAndKeys(t *testing.T) {
	h := NewHeaders()
	h.Set("b", "2")
	h.Set("a", "1")

	c := h.Clone()
	c.Set("c", "3")

	assert.Equal(t, []string{"a", "b"}, h.Keys())
	assert.Equal(t, []string{"a", "b", "c"}, c.Keys())
}

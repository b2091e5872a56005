package response

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nhdewitt/jwp-dispatch/internal/headers"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteStatusLine(t *testing.T) {
	cases := []struct {
		code StatusCode
		want string
	}{
		{StatusOK, "HTTP/1.1 200 OK\r\n"},
		{StatusFound, "HTTP/1.1 302 Found\r\n"},
		{StatusBadRequest, "HTTP/1.1 400 Bad Request\r\n"},
		{StatusNotFound, "HTTP/1.1 404 Not Found\r\n"},
		{StatusInternalServerError, "HTTP/1.1 500 Internal Server Error\r\n"},
	}
	for _, c := range cases {
		var buf bytes.Buffer
		require.NoError(t, WriteStatusLine(&buf, c.code))
		assert.Equal(t, c.want, buf.String())
	}

	var buf bytes.Buffer
	require.Error(t, WriteStatusLine(&buf, StatusCode(418)))
	assert.Empty(t, buf.String())
}

func TestWriteHeaders(t *testing.T) {
	var buf bytes.Buffer
	h := headers.NewHeaders()
	h.Set("content-type", "text/css")
	h.Set("Set-Cookie", "JSESSIONID=abc")
	require.NoError(t, WriteHeaders(&buf, h))
	assert.Equal(t, "Set-Cookie: JSESSIONID=abc\r\nContent-Type: text/css\r\n\r\n", buf.String())
}

func TestWriterOrder(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	assert.False(t, w.Started())

	_, err := w.WriteBody([]byte("early"))
	assert.True(t, errors.Is(err, ErrOutOfOrder))
	assert.True(t, errors.Is(w.WriteHeaders(headers.NewHeaders()), ErrOutOfOrder))

	require.NoError(t, w.WriteStatusLine(StatusOK))
	assert.True(t, w.Started())
	assert.Equal(t, StatusOK, w.Status())
	assert.True(t, errors.Is(w.WriteStatusLine(StatusOK), ErrOutOfOrder))

	require.NoError(t, w.WriteHeaders(headers.Headers{"Content-Length": "2"}))
	n, err := w.WriteBody([]byte("hi"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = w.WriteBody([]byte("again"))
	assert.True(t, errors.Is(err, ErrOutOfOrder))
	assert.Equal(t, "HTTP/1.1 200 OK\r\nContent-Length: 2\r\n\r\nhi", buf.String())
}

func TestWriterWrite(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	err := w.Write(StatusFound, ContentTypeHTML, headers.Headers{"Location": "/index.html"}, nil)
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "HTTP/1.1 302 Found\r\n"))
	assert.Contains(t, out, "Location: /index.html\r\n")
	assert.Contains(t, out, "Content-Type: text/html;charset=utf-8\r\n")
	assert.Contains(t, out, "Content-Length: 0\r\n")
	assert.Contains(t, out, "Connection: close\r\n")
	assert.True(t, strings.HasSuffix(out, "\r\n\r\n"))
	assert.Equal(t, 1, strings.Count(out, "Content-Type"))
}

func TestContentTypeFor(t *testing.T) {
	cases := map[string]string{
		"/index.html":      "text/html;charset=utf-8",
		"/css/styles.css":  "text/css",
		"/js/scripts.js":   "application/javascript",
		"/assets/logo.SVG": "image/svg+xml",
		"/robots.txt":      "text/plain",
		"/noext":           "text/plain",
	}
	for p, want := range cases {
		assert.Equal(t, want, ContentTypeFor(p), p)
	}
}

func TestStatusCodeString(t *testing.T) {
	assert.Equal(t, "404 Not Found", StatusNotFound.String())
	assert.Equal(t, "", StatusCode(418).Reason())
}

package response

import (
	"fmt"
	"io"
	"time"

	"github.com/nhdewitt/jwp-dispatch/internal/headers"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const crlf = "\r\n"

func WriteStatusLine(w io.Writer, statusCode StatusCode) error {
	reason := statusCode.Reason()
	if reason == "" {
		return errors.Errorf("unsupported status code %d", statusCode)
	}
	_, err := fmt.Fprintf(w, "HTTP/1.1 %d %s%s", statusCode, reason, crlf)
	return err
}

func GetDefaultHeaders(contentLen int) headers.Headers {
	h := headers.NewHeaders()
	h.Set("Content-Length", fmt.Sprintf("%d", contentLen))
	h.Set("Connection", "close")
	h.Set("Content-Type", ContentTypePlain)
	h.Set("Date", time.Now().UTC().Format(time.RFC1123))

	return h
}

// WriteHeaders writes h in name order followed by the blank line.
func WriteHeaders(w io.Writer, h headers.Headers) error {
	caser := cases.Title(language.English)
	for _, k := range h.Keys() {
		line := caser.String(k) + ": " + h[k]
		_, err := w.Write([]byte(line + crlf))
		if err != nil {
			return errors.Wrap(err, "error writing header")
		}
	}
	_, err := w.Write([]byte(crlf))
	return err
}

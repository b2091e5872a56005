package response

import (
	"path"
	"strings"
)

const (
	ContentTypeHTML  = "text/html;charset=utf-8"
	ContentTypePlain = "text/plain"
)

var contentTypes = map[string]string{
	".html": ContentTypeHTML,
	".css":  "text/css",
	".js":   "application/javascript",
	".svg":  "image/svg+xml",
}

// ContentTypeFor picks a Content-Type from the file extension of p.
func ContentTypeFor(p string) string {
	if ct, ok := contentTypes[strings.ToLower(path.Ext(p))]; ok {
		return ct
	}
	return ContentTypePlain
}

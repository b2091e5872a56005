package static

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/nhdewitt/jwp-dispatch/internal/response"
	"github.com/pkg/errors"
)

const indexFile = "/index.html"

var ErrNotFound = errors.New("static resource not found")

// Dir serves files below a root directory.
type Dir struct {
	root string
}

func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// File is a resolved static resource.
type File struct {
	Path        string
	ContentType string
	Body        []byte
}

// Open resolves a request path to a file under the root. "/" maps to
// /index.html and a path without extension falls back to <path>.html.
func (d *Dir) Open(p string) (*File, error) {
	clean := path.Clean("/" + p)
	if clean == "/" {
		clean = indexFile
	}

	candidates := []string{clean}
	if path.Ext(clean) == "" {
		candidates = append(candidates, clean+".html")
	}

	for _, c := range candidates {
		full := filepath.Join(d.root, filepath.FromSlash(c))
		if rel, err := filepath.Rel(d.root, full); err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return nil, errors.Wrapf(ErrNotFound, "%s escapes root", p)
		}
		info, err := os.Stat(full)
		if err != nil || info.IsDir() {
			continue
		}
		body, err := os.ReadFile(full)
		if err != nil {
			return nil, errors.Wrapf(err, "error reading %s", c)
		}
		return &File{
			Path:        c,
			ContentType: response.ContentTypeFor(c),
			Body:        body,
		}, nil
	}

	return nil, errors.Wrap(ErrNotFound, p)
}

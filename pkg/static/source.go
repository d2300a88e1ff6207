package static

import (
	"context"
	"errors"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"
)

var (
	// ErrNotFound means the source has no file at the path.
	ErrNotFound = errors.New("static: file not found")

	// ErrInvalidPath means the request path tried to leave the root.
	ErrInvalidPath = errors.New("static: invalid path")
)

// File is an open static file. Body is an io.ReadSeeker when the source
// supports seeking, which enables range requests.
type File struct {
	Body        io.ReadCloser
	Size        int64
	ModTime     time.Time
	ContentType string
}

// Source opens static files by slash-separated relative path.
type Source interface {
	Open(ctx context.Context, name string) (*File, error)
}

// CleanPath turns a URL path into a relative file path. It returns
// ErrNotFound for the root and ErrInvalidPath for anything that could
// escape it: dot segments, backslashes, NUL bytes, doubled leading slashes
// and volume names.
func CleanPath(urlPath string) (string, error) {
	rel := strings.TrimPrefix(urlPath, "/")
	if rel == "" {
		return "", ErrNotFound
	}
	if strings.IndexByte(rel, 0) != -1 || strings.Contains(rel, "\\") || strings.HasPrefix(rel, "/") {
		return "", ErrInvalidPath
	}
	// Checked before cleaning so traversal is not cleaned into a valid path.
	for _, seg := range strings.Split(rel, "/") {
		if seg == "." || seg == ".." {
			return "", ErrInvalidPath
		}
	}

	clean := path.Clean(rel)
	osPath := filepath.FromSlash(clean)
	if filepath.IsAbs(osPath) || filepath.VolumeName(osPath) != "" {
		return "", ErrInvalidPath
	}
	if strings.HasSuffix(urlPath, "/") {
		return "", ErrNotFound
	}
	return clean, nil
}

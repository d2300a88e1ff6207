package router

import (
	"errors"
	"io/fs"
	"path"
	"strings"
)

// LayoutFile is the file name declaring a directory's layout.
const LayoutFile = "layout.go"

// ResolveLayouts returns the layout ids applying to the page in dir,
// outermost first. fsys is rooted at the pages directory and dir is
// slash-separated relative to it. The root is checked first, then every
// deeper directory prefix; a level without a layout is skipped.
func ResolveLayouts(fsys fs.FS, dir string) ([]string, error) {
	dir = strings.Trim(path.Clean("/"+dir), "/")

	levels := []string{"."}
	if dir != "" {
		parts := strings.Split(dir, "/")
		for i := range parts {
			levels = append(levels, strings.Join(parts[:i+1], "/"))
		}
	}

	var ids []string
	for _, level := range levels {
		_, err := fs.Stat(fsys, path.Join(level, LayoutFile))
		switch {
		case err == nil:
			ids = append(ids, LayoutID(level))
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, err
		}
	}
	return ids, nil
}

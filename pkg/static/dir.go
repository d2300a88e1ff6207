package static

import (
	"context"
	"errors"
	"io/fs"
	"mime"
	"os"
	"path"
)

// DirSource serves files from a file system, usually the public directory.
type DirSource struct {
	fsys fs.FS
}

// NewDir creates a source over root on disk.
func NewDir(root string) *DirSource {
	return &DirSource{fsys: os.DirFS(root)}
}

// NewFS creates a source over fsys.
func NewFS(fsys fs.FS) *DirSource {
	return &DirSource{fsys: fsys}
}

// Open opens name. Directories are not files.
func (d *DirSource) Open(_ context.Context, name string) (*File, error) {
	f, err := d.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, ErrNotFound
	}
	return &File{
		Body:        f,
		Size:        info.Size(),
		ModTime:     info.ModTime(),
		ContentType: mime.TypeByExtension(path.Ext(name)),
	}, nil
}

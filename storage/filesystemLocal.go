package storage

import (
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// FilesystemLocal implements the Filesystem interface for local storage below a base path
type FilesystemLocal struct {
	billy.Filesystem
	basePath string
}

// NewFilesystemLocal creates a new local filesystem instance with the specified base path
func NewFilesystemLocal(basePath string) Filesystem {
	return &FilesystemLocal{
		Filesystem: osfs.New(basePath),
		basePath:   basePath,
	}
}

// ListFiles returns a list of all files in the base path
func (fs *FilesystemLocal) ListFiles() ([]File, error) {
	return listFiles(fs.Filesystem)
}

package storage

import (
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
)

// FilesystemMemory implements the Filesystem interface for in-memory storage using go-billy's memfs
type FilesystemMemory struct {
	billy.Filesystem
}

// NewFilesystemMemory creates a new in-memory filesystem instance
func NewFilesystemMemory() Filesystem {
	return &FilesystemMemory{
		Filesystem: memfs.New(),
	}
}

// ListFiles returns a list of all files in the filesystem
func (fs *FilesystemMemory) ListFiles() ([]File, error) {
	return listFiles(fs.Filesystem)
}

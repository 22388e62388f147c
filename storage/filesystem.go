package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/siherrmann/jobSchema/helper"
)

const (
	STORAGE_MODE_LOCAL  = "local"
	STORAGE_MODE_S3     = "s3"
	STORAGE_MODE_MEMORY = "memory"
)

type File struct {
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
}

// Filesystem extends billy.Filesystem with listing of all contained files.
type Filesystem interface {
	billy.Filesystem
	ListFiles() ([]File, error)
}

// CreateFilesystemFromEnv creates the filesystem task catalogs are read from
// based on environment variables
func CreateFilesystemFromEnv() (Filesystem, error) {
	storageMode := strings.ToLower(helper.GetEnvOrDefault("JOBS_STORAGE_MODE", STORAGE_MODE_LOCAL))

	switch storageMode {
	case STORAGE_MODE_S3:
		config := S3Config{
			Endpoint:        os.Getenv("S3_ENDPOINT"),
			Region:          helper.GetEnvOrDefault("S3_REGION", "us-east-1"),
			BucketName:      os.Getenv("S3_BUCKET_NAME"),
			AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
			UseSSL:          helper.GetEnvOrDefault("S3_USE_SSL", "true") == "true",
		}
		if config.BucketName == "" || config.AccessKeyID == "" || config.SecretAccessKey == "" {
			return nil, fmt.Errorf("missing required S3 configuration: S3_BUCKET_NAME, S3_ACCESS_KEY_ID, S3_SECRET_ACCESS_KEY")
		}
		return NewFilesystemS3(config)
	case STORAGE_MODE_MEMORY:
		return NewFilesystemMemory(), nil
	case STORAGE_MODE_LOCAL:
		basePath := helper.GetEnvOrDefault("JOBS_STORAGE_PATH", "catalogs")
		return NewFilesystemLocal(basePath), nil
	default:
		return nil, fmt.Errorf("unsupported storage mode: %s (supported: local, s3, memory)", storageMode)
	}
}

// listFiles walks the directory tree of fs and returns all files with
// paths relative to its root
func listFiles(fs billy.Filesystem) ([]File, error) {
	var files []File

	var walk func(string) error
	walk = func(dirPath string) error {
		entries, err := fs.ReadDir(dirPath)
		if err != nil {
			return err
		}

		for _, entry := range entries {
			entryPath := fs.Join(dirPath, entry.Name())
			if entry.IsDir() {
				if err := walk(entryPath); err != nil {
					return err
				}
				continue
			}

			relPath := entryPath
			if dirPath == "." || dirPath == "" {
				relPath = entry.Name()
			}

			files = append(files, File{
				Name:     filepath.ToSlash(relPath),
				Size:     entry.Size(),
				MimeType: helper.GetMimeType(entry.Name()),
			})
		}
		return nil
	}

	if err := walk("."); err != nil {
		return nil, err
	}

	return files, nil
}

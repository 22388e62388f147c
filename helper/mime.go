package helper

import (
	"mime"
	"path/filepath"
	"strings"
)

var catalogMimeTypes = map[string]string{
	".json": "application/json",
	".yaml": "application/yaml",
	".yml":  "application/yaml",
}

// GetMimeType returns the MIME type for a file based on its extension.
// Catalog formats resolve the same on every system.
func GetMimeType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if mimeType, ok := catalogMimeTypes[ext]; ok {
		return mimeType
	}
	mimeType := mime.TypeByExtension(ext)
	if mimeType == "" {
		return "application/octet-stream" // Default for unknown file types
	}
	return mimeType
}

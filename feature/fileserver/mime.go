package fileserver

import (
	"path/filepath"
	"strings"
)

const (
	mimeDefault = "application/octet-stream"
	mimeListing = "text/html; charset=utf-8"
	mimeText    = "text/plain; charset=utf-8"
)

// mimeTypes is intentionally small; anything else is served as octet-stream.
var mimeTypes = map[string]string{
	"html": "text/html",
	"css":  "text/css",
	"js":   "application/javascript",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"svg":  "image/svg+xml",
	"json": "application/json",
}

// ContentType returns the content type served for the file at path.
func ContentType(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if t, ok := mimeTypes[ext]; ok {
		return t
	}
	return mimeDefault
}

package storage

import (
	"path"
	"strings"
)

// DefaultContentType is served for unknown or missing extensions.
const DefaultContentType = "application/octet-stream"

var contentTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
	"svg":  "image/svg+xml",
}

// ContentTypeFor infers the content type from the lowercase file extension only.
func ContentTypeFor(key string) string {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(key)), ".")
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}

	return DefaultContentType
}

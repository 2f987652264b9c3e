package devserver

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var mimeTypes = map[string]string{
	".html":  "text/html",
	".css":   "text/css",
	".js":    "text/javascript",
	".json":  "application/json",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".svg":   "image/svg+xml",
	".ico":   "image/x-icon",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".ttf":   "font/ttf",
	".otf":   "font/otf",
	".webp":  "image/webp",
}

// ContentType picks the type by extension, sniffing content for unknown ones.
func ContentType(name string, content []byte) string {
	if t, ok := mimeTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return t
	}
	if len(content) > 0 {
		if m := mimetype.Detect(content); m != nil {
			return m.String()
		}
	}
	return "application/octet-stream"
}

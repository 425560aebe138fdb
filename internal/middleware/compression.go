package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Compression returns a middleware that gzips responses for clients that accept it.
// PDF reports are already compressed and /metrics negotiates its own encoding.
func Compression() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression,
		gzip.WithExcludedExtensions([]string{".pdf", ".png"}),
		gzip.WithExcludedPaths([]string{"/metrics"}),
	)
}

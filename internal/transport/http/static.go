package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// staticHandler serves the client bundle from dir. Unknown paths fall back
// to index.html so client-side routes resolve.
func staticHandler(dir string) gin.HandlerFunc {
	index := filepath.Join(dir, "index.html")
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
			return
		}
		if dir == "" {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
			return
		}

		rel := filepath.FromSlash(strings.TrimPrefix(filepath.ToSlash(filepath.Clean("/"+c.Request.URL.Path)), "/"))
		if rel != "" && rel != "." {
			file := filepath.Join(dir, rel)
			if info, err := os.Stat(file); err == nil && !info.IsDir() {
				c.File(file)
				return
			}
		}

		if _, err := os.Stat(index); err != nil {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
			return
		}
		c.File(index)
	}
}

package middleware

import (
	"net/http"
	"path"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"

	"blog-api/internal/shared/response"
)

// StaticFiles serves the browser client from dir for GET and HEAD requests
// no route matched. Anything it cannot serve is passed on, so the
// route-not-found handler still answers. An empty dir disables it.
func StaticFiles(dir string) gin.HandlerFunc {
	if dir == "" {
		return func(c *gin.Context) { c.Next() }
	}

	serve := static.Serve("/", cleanFileSystem{static.LocalFile(dir, false)})

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Next()
			return
		}
		serve(c)
	}
}

// cleanFileSystem resolves lookups against the cleaned, rooted path so a
// ".." segment can never reach outside the served directory.
type cleanFileSystem struct {
	static.ServeFileSystem
}

func (fs cleanFileSystem) Exists(prefix, urlPath string) bool {
	return fs.ServeFileSystem.Exists(prefix, path.Clean("/"+urlPath))
}

// RouteNotFound answers every unmatched request.
func RouteNotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.NotFound(c, "Route not found")
	}
}

// Package web embeds and serves the single-page frontend.
package web

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

//go:embed static
var assets embed.FS

// Register mounts the frontend on the engine: index at /, assets under
// /assets, and an index fallback for non-API paths so deep links work.
func Register(r *gin.Engine) {
	index, err := assets.ReadFile("static/index.html")
	if err != nil {
		panic(err)
	}
	serveIndex := func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	}

	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}

	r.GET("/", serveIndex)
	r.StaticFS("/assets", http.FS(sub))
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
			return
		}
		serveIndex(c)
	})
}

package handlers

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v3"
)

//go:embed views
var viewsFS embed.FS

// NewViewEngine returns the template engine over the embedded views.
// Reload re-parses templates on every render, useful in development.
func NewViewEngine(reload bool) *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic("handlers: embedded views: " + err.Error())
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.Reload(reload)
	return engine
}

package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html
var files embed.FS

// NewEngine returns the html engine backed by the embedded templates so the
// binary renders pages regardless of its working directory.
func NewEngine() *html.Engine {
	return html.NewFileSystem(http.FS(files), ".html")
}

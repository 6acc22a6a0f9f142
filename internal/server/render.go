package server

import (
	"net/http"

	"github.com/gin-gonic/gin/render"
	g "maragu.dev/gomponents"
)

var htmlContentType = []string{"text/html; charset=utf-8"}

// nodeRender writes a gomponents tree as a gin response.
type nodeRender struct {
	node g.Node
}

var _ render.Render = nodeRender{}

func (r nodeRender) Render(w http.ResponseWriter) error {
	r.WriteContentType(w)
	return r.node.Render(w)
}

func (r nodeRender) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = htmlContentType
	}
}

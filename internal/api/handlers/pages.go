package handlers

import (
	"html/template"
	"net/http"
)

// PagesHandler serves the home page and the 404 fallthrough.
type PagesHandler struct {
	*Base
}

func NewPagesHandler(base *Base) *PagesHandler {
	return &PagesHandler{Base: base}
}

const homeContent = `<section class="hero">
  <p>Welcome to Motorlot. Browse our inventory by classification, or try the <a href="/inv/search">search page</a>.</p>
</section>`

func (h *PagesHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.RenderPage(w, r, http.StatusOK, "Home", template.HTML(homeContent))
}

func (h *PagesHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.RenderNotFound(w, r)
}

package handlers

import (
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/jthomsen/motorlot/internal/api/flash"
	"github.com/jthomsen/motorlot/internal/api/middleware"
	"github.com/jthomsen/motorlot/internal/service"
	"github.com/jthomsen/motorlot/internal/view"
)

// Base bundles what every page handler needs: the renderer, the
// inventory service for the navigation bar, and a logger.
type Base struct {
	Renderer  *view.Renderer
	Inventory *service.InventoryService
	Log       *zap.SugaredLogger
}

// RenderPage assembles navigation, flash messages and the signed-in
// account name around the page content, then writes the document.
// extraErrors are field-level validation messages from the current
// request, rendered alongside any flashed ones.
func (b *Base) RenderPage(w http.ResponseWriter, r *http.Request, status int, title string, content template.HTML, extraErrors ...string) {
	classifications, err := b.Inventory.Classifications(r.Context())
	if err != nil {
		b.RenderServerError(w, r, err)
		return
	}
	nav, err := b.Renderer.Nav(classifications)
	if err != nil {
		b.RenderServerError(w, r, err)
		return
	}

	notices, flashErrors := flash.Pop(w, r)
	page := view.Page{
		Title:   title,
		Nav:     nav,
		Notices: notices,
		Errors:  append(flashErrors, extraErrors...),
		Content: content,
	}
	if claims, ok := middleware.GetClaims(r.Context()); ok {
		page.Account = claims.FirstName
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := b.Renderer.Render(w, page); err != nil {
		b.Log.Errorw("render failed", "path", r.URL.Path, "error", err)
	}
}

// RenderNotFound renders the 404 page.
func (b *Base) RenderNotFound(w http.ResponseWriter, r *http.Request) {
	b.RenderPage(w, r, http.StatusNotFound, "404",
		template.HTML("<p>Sorry, we appear to have lost that page.</p>"))
}

// RenderServerError logs the internal error and renders the generic
// error page. The error text never reaches the client.
func (b *Base) RenderServerError(w http.ResponseWriter, r *http.Request, err error) {
	b.Log.Errorw("request failed", "path", r.URL.Path, "error", err)

	// Nav needs a storage call of its own; render without it if that
	// is what failed.
	var nav template.HTML
	if classifications, navErr := b.Inventory.Classifications(r.Context()); navErr == nil {
		nav, _ = b.Renderer.Nav(classifications)
	}
	page := view.Page{
		Title:   "Server Error",
		Nav:     nav,
		Content: template.HTML("<p>Oh no! There was a crash. Maybe try a different route?</p>"),
	}
	if claims, ok := middleware.GetClaims(r.Context()); ok {
		page.Account = claims.FirstName
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	if renderErr := b.Renderer.Render(w, page); renderErr != nil {
		b.Log.Errorw("error page render failed", "error", renderErr)
	}
}

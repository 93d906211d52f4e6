// Package handlers contains the page renderers. Each handler follows the
// same sequence: fetch through the API client, reshape the payload into a
// view model, render. A failed fetch becomes an error banner and that render
// branch is skipped; nothing is cached between renders.
package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"

	"libdash/internal/api"
	"libdash/internal/assets"
	"libdash/internal/middleware"
	"libdash/internal/view"
	"libdash/web/src/templates/layouts"
)

// Page bundles the plumbing every page handler shares: the API client and
// the branding loader for the sidebar.
type Page struct {
	API  *api.Client
	Logo *assets.LogoLoader
}

// NewPage creates the shared page plumbing.
func NewPage(client *api.Client, logo *assets.LogoLoader) *Page {
	return &Page{API: client, Logo: logo}
}

// probe runs the sidebar health check for this render pass. A failed probe
// is logged and reported as nil, which the status panel shows as
// disconnected.
func (p *Page) probe(c echo.Context) *api.HealthStatus {
	ctx := c.Request().Context()
	health, err := p.API.Health(ctx)
	if err != nil {
		middleware.FromContext(ctx).Warn("Health probe failed", "error", err)
		return nil
	}
	return health
}

// render wraps page content in the base layout and writes the response.
func (p *Page) render(c echo.Context, title string, health *api.HealthStatus, content cmp.Node) error {
	props := layouts.BaseProps{
		Title:  title,
		Active: title,
		Logo:   p.Logo.Load(),
		Health: health,
		Flash:  view.GetFlashData(c),
	}
	return c.Render(http.StatusOK, "", layouts.Base(props, content))
}

// StatusPartial serves the sidebar status panel as an HTMX fragment for the
// Health quick action.
func (p *Page) StatusPartial(c echo.Context) error {
	return c.Render(http.StatusOK, "", layouts.StatusPanel(p.probe(c)))
}

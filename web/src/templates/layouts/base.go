// Package layouts holds the page chrome shared by every dashboard view:
// the document head, the sidebar navigation, and the flash banner area.
package layouts

import (
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"libdash/internal/api"
	"libdash/internal/view"
	"libdash/web/src/templates/components"
)

// NavItem is one sidebar navigation entry.
type NavItem struct {
	Label string
	Path  string
}

// NavItems is the fixed five-page navigation of the dashboard.
var NavItems = []NavItem{
	{Label: "Dashboard", Path: "/"},
	{Label: "Books", Path: "/books"},
	{Label: "Users", Path: "/users"},
	{Label: "Transactions", Path: "/transactions"},
	{Label: "Analytics", Path: "/analytics"},
}

// BaseProps carries everything the chrome needs for one render pass. It is
// rebuilt from scratch on every request; nothing here survives across pages.
type BaseProps struct {
	Title  string
	Active string
	Logo   string
	Health *api.HealthStatus
	Flash  view.FlashData
}

// Base wraps page content in the full HTML document with sidebar and banners.
func Base(props BaseProps, content cmp.Node) cmp.Node {
	return g.Doctype(
		g.HTML(
			g.Lang("en"),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				g.TitleEl(cmp.Text(CalculateTitle(props.Title))),
				g.Script(g.Src("https://unpkg.com/htmx.org@1.9.12")),
				g.Script(g.Src("https://cdn.jsdelivr.net/npm/chart.js@4.4.3/dist/chart.umd.min.js")),
				g.Script(g.Src("https://cdn.tailwindcss.com")),
				components.ChartBootstrap(),
			),
			g.Body(
				g.Class("bg-gray-100 text-gray-800"),
				g.Div(
					g.Class("flex min-h-screen"),
					sidebar(props),
					g.Main(
						g.Class("flex-1 p-8 overflow-x-auto"),
						components.FlashBanners(props.Flash),
						content,
					),
				),
			),
		),
	)
}

// sidebar renders the brand block, navigation, system status, quick actions,
// and footer.
func sidebar(props BaseProps) cmp.Node {
	return g.Aside(
		g.Class("w-64 shrink-0 bg-gradient-to-b from-sky-950 to-sky-800 text-white flex flex-col"),
		g.Div(
			g.Class("text-center p-4 m-4 bg-white/10 rounded-lg"),
			cmp.Raw(props.Logo),
			g.H2(g.Class("mt-2 text-lg font-bold"), cmp.Text("LibDash")),
			g.P(g.Class("text-sm text-gray-300"), cmp.Text("Library Management")),
		),
		g.Nav(
			g.Class("px-4 space-y-1"),
			cmp.Map(NavItems, func(item NavItem) cmp.Node {
				classes := "block rounded-lg px-4 py-2 text-sm hover:bg-white/10"
				if item.Label == props.Active {
					classes += " bg-white/20 font-bold border border-white/30"
				}
				return g.A(g.Href(item.Path), g.Class(classes), cmp.Text(item.Label))
			}),
		),
		g.Div(
			g.Class("px-4 mt-6 border-t border-white/20 pt-4"),
			g.H3(g.Class("text-sm font-bold mb-2"), cmp.Text("System Status")),
			StatusPanel(props.Health),
		),
		g.Div(
			g.Class("px-4 mt-6 border-t border-white/20 pt-4"),
			g.H3(g.Class("text-sm font-bold mb-2"), cmp.Text("Quick Actions")),
			g.Div(
				g.Class("flex gap-2"),
				g.Button(
					g.Class("flex-1 rounded border border-white/40 px-2 py-1 text-sm hover:bg-white/10"),
					hx.Get("/partials/status"),
					hx.Target("#status-panel"),
					hx.Swap("outerHTML"),
					cmp.Text("Health"),
				),
				g.A(
					g.Href("javascript:location.reload()"),
					g.Class("flex-1 rounded border border-white/40 px-2 py-1 text-sm text-center hover:bg-white/10"),
					cmp.Text("Refresh"),
				),
			),
		),
		g.Div(
			g.Class("mt-auto p-4 text-center text-xs text-gray-400"),
			g.P(g.Class("font-semibold"), cmp.Text("LibDash Library Management")),
			g.P(cmp.Text("Version 2.0")),
		),
	)
}

// StatusPanel shows the backend connectivity plus the inner database
// sub-status. It is also served standalone as an HTMX fragment for the
// Health quick action.
func StatusPanel(health *api.HealthStatus) cmp.Node {
	if !health.OK() {
		return g.Div(
			g.ID("status-panel"),
			g.Div(
				g.Class("rounded bg-red-900/60 px-3 py-2 text-sm text-red-200"),
				cmp.Text("Backend Disconnected"),
			),
		)
	}

	dbClass := "text-red-300"
	if health.Database.Connected {
		dbClass = "text-green-300"
	}
	return g.Div(
		g.ID("status-panel"),
		g.Div(
			g.Class("rounded bg-green-900/60 px-3 py-2 text-sm text-green-200"),
			cmp.Text("Backend Connected"),
		),
		g.P(
			g.Class("mt-1 text-sm "+dbClass),
			cmp.Text("● Database: "+health.Database.Status),
		),
	)
}

package components

import (
	"net/url"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Tab is one selectable tab within a page.
type Tab struct {
	Key   string
	Label string
}

// TabBar renders page tabs as plain links. Switching tabs is a full render
// pass with fresh fetches, so no client state is involved.
func TabBar(basePath, active string, tabs []Tab) cmp.Node {
	return g.Div(
		g.Class("mb-6 flex gap-2 border-b pb-2"),
		cmp.Map(tabs, func(t Tab) cmp.Node {
			classes := "rounded px-4 py-2 text-sm border border-gray-300 hover:bg-gray-200"
			if t.Key == active {
				classes = "rounded px-4 py-2 text-sm bg-sky-700 text-white font-semibold"
			}
			return g.A(
				g.Href(basePath+"?tab="+url.QueryEscape(t.Key)),
				g.Class(classes),
				cmp.Text(t.Label),
			)
		}),
	)
}

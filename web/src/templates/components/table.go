package components

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Table renders a generic data table. Every page reshapes its API payload
// into headers plus string rows before display, so one component covers all
// of them.
func Table(headers []string, rows [][]string) cmp.Node {
	return g.Div(
		g.Class("overflow-x-auto rounded-lg bg-white shadow"),
		g.Table(
			g.Class("min-w-full text-sm"),
			g.THead(
				g.Tr(
					g.Class("border-b bg-gray-50 text-left"),
					cmp.Map(headers, func(h string) cmp.Node {
						return g.Th(g.Class("px-4 py-3 font-semibold"), cmp.Text(h))
					}),
				),
			),
			g.TBody(
				cmp.Map(rows, func(row []string) cmp.Node {
					return g.Tr(
						g.Class("border-b last:border-none hover:bg-gray-50"),
						cmp.Map(row, func(cell string) cmp.Node {
							return g.Td(g.Class("px-4 py-2"), cmp.Text(cell))
						}),
					)
				}),
			),
		),
	)
}

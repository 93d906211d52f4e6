package components

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Metric is one headline number with its label.
type Metric struct {
	Label string
	Value string
}

// MetricCards lays out a row of metric cards.
func MetricCards(metrics []Metric) cmp.Node {
	return g.Div(
		g.Class("grid gap-4 mb-6 grid-cols-2 md:grid-cols-3 lg:grid-cols-6"),
		cmp.Map(metrics, func(m Metric) cmp.Node {
			return g.Div(
				g.Class("rounded-lg bg-white p-4 shadow border-l-4 border-sky-700"),
				g.P(g.Class("text-xs uppercase text-gray-500"), cmp.Text(m.Label)),
				g.P(g.Class("text-2xl font-bold"), cmp.Text(m.Value)),
			)
		}),
	)
}

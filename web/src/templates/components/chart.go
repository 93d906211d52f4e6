package components

import (
	"encoding/json"

	"github.com/a-h/templ"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"libdash/internal/view"
)

// chartBootstrapJS defines the browser-side chart renderer consumed by every
// Chart node. Series payloads are embedded next to their canvas as JSON.
const chartBootstrapJS = `<script>
function renderChart(id, kind, series) {
  const el = document.getElementById(id);
  if (!el || !window.Chart) { return; }
  const palette = ["#2E86AB", "#A23B72", "#c0392b", "#1a5276", "#27ae60", "#f39c12"];
  const labels = series.length ? series[0].points.map(p => p.label) : [];
  const datasets = series.map((s, i) => ({
    label: s.name,
    data: s.points.map(p => p.value),
    backgroundColor: kind === "pie" ? palette : palette[i % palette.length],
    borderColor: palette[i % palette.length],
    borderWidth: 2,
  }));
  new Chart(el, {
    type: kind,
    data: { labels: labels, datasets: datasets },
    options: { responsive: true, maintainAspectRatio: false },
  });
}
</script>`

// ChartBootstrap emits the shared chart renderer script. It ships as a raw
// templ component bridged into the gomponents tree.
func ChartBootstrap() cmp.Node {
	return view.AdaptTemplToGomponent(templ.Raw(chartBootstrapJS))
}

// Chart renders a titled canvas plus the series payload that feeds it.
// Kind is a Chart.js chart type: "bar", "line", or "pie".
func Chart(id, kind, title string, series ...view.Series) cmp.Node {
	payload, err := json.Marshal(series)
	if err != nil {
		payload = []byte("[]")
	}
	return g.Div(
		g.Class("rounded-lg bg-white p-4 shadow"),
		g.H3(g.Class("mb-2 font-semibold"), cmp.Text(title)),
		g.Div(
			g.Class("relative h-72"),
			g.Canvas(g.ID(id)),
		),
		// encoding/json escapes <, >, and & so the payload is safe inline.
		g.Script(cmp.Rawf("renderChart(%q, %q, %s);", id, kind, payload)),
	)
}

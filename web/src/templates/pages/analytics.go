package pages

import (
	"fmt"
	"strconv"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"libdash/internal/api"
	"libdash/internal/view"
	"libdash/web/src/templates/components"
)

// Analytics page tab keys.
const (
	AnalyticsTabMostBorrowed = "most-borrowed"
	AnalyticsTabUsers        = "users"
	AnalyticsTabPatterns     = "patterns"
	AnalyticsTabMonthly      = "monthly"
)

var analyticsTabs = []components.Tab{
	{Key: AnalyticsTabMostBorrowed, Label: "Most Borrowed"},
	{Key: AnalyticsTabUsers, Label: "User Analysis"},
	{Key: AnalyticsTabPatterns, Label: "Reading Patterns"},
	{Key: AnalyticsTabMonthly, Label: "Monthly Report"},
}

// AnalyticsData is the view model for the analytics page. Each tab carries
// its own rows plus the series the handler derived through column fallback.
type AnalyticsData struct {
	Tab string

	// Most Borrowed tab.
	Limit          int
	Period         string
	MostBorrowed   []api.Row
	BorrowedSeries view.Series
	BorrowedErr    string

	// User Analysis tab.
	UserSeries view.Series
	UserErr    string

	// Reading Patterns tab.
	ActivitySeries view.Series
	DurationSeries view.Series
	HasDuration    bool
	PatternsErr    string

	// Monthly Report tab.
	Year          int
	Years         []int
	MonthlyRows   []api.Row
	MonthlySeries []view.Series
	MonthlyErr    string
}

// Analytics renders the analytics page for the active tab.
func Analytics(data AnalyticsData) cmp.Node {
	var content cmp.Node
	switch data.Tab {
	case AnalyticsTabUsers:
		content = userAnalysis(data)
	case AnalyticsTabPatterns:
		content = readingPatterns(data)
	case AnalyticsTabMonthly:
		content = monthlyReport(data)
	default:
		content = mostBorrowed(data)
	}

	return cmp.Group{
		subHeader("Analytics Dashboard"),
		components.TabBar("/analytics", data.Tab, analyticsTabs),
		content,
	}
}

func mostBorrowed(data AnalyticsData) cmp.Node {
	periodOptions := make([]components.SelectOption, 0, 4)
	for _, p := range []string{"all", "week", "month", "year"} {
		periodOptions = append(periodOptions, components.SelectOption{
			Value: p, Label: view.TitleLabel(p), Selected: p == data.Period,
		})
	}

	controls := g.FormEl(
		g.Method("get"),
		g.Action("/analytics"),
		g.Class("mb-6 flex items-end gap-4 rounded-lg bg-white p-4 shadow"),
		g.Input(g.Type("hidden"), g.Name("tab"), g.Value(AnalyticsTabMostBorrowed)),
		g.Div(
			g.Class("w-48"),
			components.NumberField("limit", "Number of books", data.Limit, 5, 50, false),
		),
		g.Div(
			g.Class("w-48"),
			components.SelectField("period", "Time Period", periodOptions, false),
		),
		components.SubmitButton("Apply"),
	)

	if data.BorrowedErr != "" {
		return cmp.Group{controls, components.ErrorPanel(data.BorrowedErr)}
	}
	if len(data.MostBorrowed) == 0 {
		return cmp.Group{controls, components.InfoPanel("No borrowing data for this period.")}
	}

	headers, rows := view.RowTable(data.MostBorrowed)
	return cmp.Group{
		controls,
		g.Div(
			g.Class("mb-6"),
			components.Chart("chart-most-borrowed", "bar",
				fmt.Sprintf("Most Borrowed Books (%s)", view.TitleLabel(data.Period)),
				data.BorrowedSeries),
		),
		components.Table(headers, rows),
	}
}

func userAnalysis(data AnalyticsData) cmp.Node {
	if data.UserErr != "" {
		return components.ErrorPanel(data.UserErr)
	}
	if data.UserSeries.Empty() {
		return components.InfoPanel("No borrowing data by user type yet.")
	}

	return g.Div(
		g.Class("grid gap-6 md:grid-cols-2"),
		components.Chart("chart-user-pie", "pie", "Borrowing Distribution by User Type", data.UserSeries),
		components.Chart("chart-user-bar", "bar", "Total Borrows by User Type", data.UserSeries),
	)
}

func readingPatterns(data AnalyticsData) cmp.Node {
	if data.PatternsErr != "" {
		return components.ErrorPanel(data.PatternsErr)
	}
	if data.ActivitySeries.Empty() {
		return components.InfoPanel("No reading pattern data yet.")
	}

	return g.Div(
		g.Class("grid gap-6 md:grid-cols-2"),
		components.Chart("chart-monthly-activity", "bar", "Monthly Borrowing Activity", data.ActivitySeries),
		cmp.If(data.HasDuration,
			components.Chart("chart-borrow-duration", "line", "Average Borrow Duration (Days)", data.DurationSeries)),
	)
}

func monthlyReport(data AnalyticsData) cmp.Node {
	yearOptions := make([]components.SelectOption, 0, len(data.Years))
	for _, y := range data.Years {
		yearOptions = append(yearOptions, components.SelectOption{
			Value: strconv.Itoa(y), Label: strconv.Itoa(y), Selected: y == data.Year,
		})
	}

	controls := g.FormEl(
		g.Method("get"),
		g.Action("/analytics"),
		g.Class("mb-6 flex items-end gap-4 rounded-lg bg-white p-4 shadow"),
		g.Input(g.Type("hidden"), g.Name("tab"), g.Value(AnalyticsTabMonthly)),
		g.Div(
			g.Class("w-48"),
			components.SelectField("year", "Select Year", yearOptions, false),
		),
		components.SubmitButton("Apply"),
	)

	if data.MonthlyErr != "" {
		return cmp.Group{controls, components.ErrorPanel(data.MonthlyErr)}
	}
	if len(data.MonthlyRows) == 0 {
		return cmp.Group{controls, components.InfoPanel("No activity recorded for this year.")}
	}

	totals := make([]components.Metric, 0, len(data.MonthlySeries))
	for _, s := range data.MonthlySeries {
		totals = append(totals, components.Metric{
			Label: s.Name,
			Value: view.FormatValue(s.Total()),
		})
	}

	headers, rows := view.RowTable(data.MonthlyRows)
	return cmp.Group{
		controls,
		g.Div(
			g.Class("mb-6"),
			components.Chart("chart-monthly-report", "line",
				fmt.Sprintf("Monthly Library Activity - %d", data.Year),
				data.MonthlySeries...),
		),
		components.MetricCards(totals),
		components.Table(headers, rows),
	}
}

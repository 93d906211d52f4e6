// Package pages holds the content component of each dashboard view. Pages
// receive a per-render view model built by their handler; nothing is cached
// between renders.
package pages

import (
	"strconv"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"libdash/internal/api"
	"libdash/internal/view"
	"libdash/web/src/templates/components"
)

// DashboardData is the view model for the main dashboard page.
type DashboardData struct {
	Stats          *api.DashboardStats
	CategorySeries view.Series
	UserTypeSeries view.Series
	Recent         []api.Transaction
	StatsErr       string
	RecentErr      string
}

// DashboardUnavailable is the blocking connectivity error shown instead of
// the dashboard when the health probe fails. No other content is rendered.
func DashboardUnavailable(baseURL string) cmp.Node {
	return cmp.Group{
		pageHeader("Library Management System"),
		components.ErrorPanel("Backend server is not connected. Please make sure the server is running on " + baseURL),
	}
}

// Dashboard renders the overview: headline metrics, two breakdown charts,
// and the most recent transactions.
func Dashboard(data DashboardData) cmp.Node {
	return cmp.Group{
		pageHeader("Library Management System"),
		subHeader("Dashboard Overview"),
		dashboardStats(data),
		subHeader("Recent Activity"),
		recentActivity(data),
	}
}

func dashboardStats(data DashboardData) cmp.Node {
	if data.StatsErr != "" {
		return components.ErrorPanel(data.StatsErr)
	}
	overview := data.Stats.Overview
	return cmp.Group{
		components.MetricCards([]components.Metric{
			{Label: "Total Books", Value: strconv.Itoa(overview.TotalBooks)},
			{Label: "Available Books", Value: strconv.Itoa(overview.AvailableBooks)},
			{Label: "Total Users", Value: strconv.Itoa(overview.TotalUsers)},
			{Label: "Active Borrows", Value: strconv.Itoa(overview.ActiveBorrows)},
			{Label: "Total Transactions", Value: strconv.Itoa(overview.TotalTransactions)},
			{Label: "Overdue Books", Value: strconv.Itoa(overview.OverdueBooks)},
		}),
		g.Div(
			g.Class("grid gap-6 mb-6 md:grid-cols-2"),
			cmp.If(!data.CategorySeries.Empty(),
				components.Chart("chart-categories", "pie", "Popular Book Categories", data.CategorySeries)),
			cmp.If(!data.UserTypeSeries.Empty(),
				components.Chart("chart-user-types", "bar", "Borrowing by User Type", data.UserTypeSeries)),
		),
	}
}

func recentActivity(data DashboardData) cmp.Node {
	if data.RecentErr != "" {
		return components.ErrorPanel(data.RecentErr)
	}
	if len(data.Recent) == 0 {
		return components.InfoPanel("No transactions recorded yet.")
	}

	rows := make([][]string, 0, len(data.Recent))
	for _, tx := range data.Recent {
		rows = append(rows, []string{
			tx.TransactionID, tx.BookTitle(), tx.UserName(), tx.Status, tx.BorrowDate,
		})
	}
	return components.Table(
		[]string{"Transaction ID", "Book", "User", "Status", "Borrow Date"},
		rows,
	)
}

func pageHeader(title string) cmp.Node {
	return g.H1(
		g.Class("mb-6 text-center text-3xl font-bold text-sky-900"),
		cmp.Text(title),
	)
}

func subHeader(title string) cmp.Node {
	return g.H2(
		g.Class("mb-4 text-xl font-bold text-pink-800"),
		cmp.Text(title),
	)
}

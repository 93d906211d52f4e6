package handlers

import (
	"github.com/labstack/echo/v4"

	"libdash/internal/api"
	"libdash/internal/view"
	"libdash/web/src/templates/pages"
)

// DashboardHandler renders the overview page.
type DashboardHandler struct {
	page *Page
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(page *Page) *DashboardHandler {
	return &DashboardHandler{page: page}
}

// DashboardGet shows the dashboard. When the health probe fails, only the
// blocking connectivity error is rendered and no analytics calls are made.
func (h *DashboardHandler) DashboardGet(c echo.Context) error {
	ctx := c.Request().Context()

	health := h.page.probe(c)
	if !health.OK() {
		return h.page.render(c, "Dashboard", health, pages.DashboardUnavailable(h.page.API.BaseURL()))
	}

	var data pages.DashboardData

	stats, err := h.page.API.DashboardStats(ctx)
	if err != nil {
		data.StatsErr = view.UserMessage(err)
	} else {
		data.Stats = stats
		data.CategorySeries = groupSeries("Books", stats.PopularCategories)
		data.UserTypeSeries = groupSeries("Borrows", stats.UserTypeStats)
	}

	recent, err := h.page.API.ListTransactions(ctx, api.TransactionQuery{Limit: 10})
	if err != nil {
		data.RecentErr = view.UserMessage(err)
	} else {
		data.Recent = recent
	}

	return h.page.render(c, "Dashboard", health, pages.Dashboard(data))
}

// groupSeries turns a grouped aggregate into a chart series.
func groupSeries(name string, groups []api.GroupCount) view.Series {
	s := view.Series{Name: name, Points: make([]view.Point, 0, len(groups))}
	for _, group := range groups {
		s.Points = append(s.Points, view.Point{Label: group.Label, Value: float64(group.Count)})
	}
	return s
}

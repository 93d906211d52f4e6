package api

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"strconv"
)

// OverviewStats are the headline counters on the dashboard.
type OverviewStats struct {
	TotalBooks        int `json:"totalBooks"`
	AvailableBooks    int `json:"availableBooks"`
	TotalUsers        int `json:"totalUsers"`
	ActiveBorrows     int `json:"activeBorrows"`
	TotalTransactions int `json:"totalTransactions"`
	OverdueBooks      int `json:"overdueBooks"`
}

// GroupCount is one slice of a grouped aggregate (category popularity,
// borrows per user type). The service labels the group key "_id".
type GroupCount struct {
	Label string `json:"_id"`
	Count int    `json:"count"`
}

// DashboardStats is the aggregate payload behind the dashboard page.
type DashboardStats struct {
	Overview          OverviewStats `json:"overview"`
	PopularCategories []GroupCount  `json:"popularCategories"`
	UserTypeStats     []GroupCount  `json:"userTypeStats"`
}

// Row is one record of an analytics result. Field names vary by endpoint and
// time window (borrowCount vs count, totalTransactions vs count, and so on),
// so rows stay generic and the view layer picks display columns through an
// ordered preference list.
type Row map[string]any

// Number returns the named field as a float64 when present and numeric.
func (r Row) Number(key string) (float64, bool) {
	v, ok := r[key].(float64)
	return v, ok
}

// Int returns the named field truncated to an int, when present and numeric.
func (r Row) Int(key string) (int, bool) {
	v, ok := r.Number(key)
	return int(v), ok
}

// String returns the named field as a string when present.
func (r Row) String(key string) (string, bool) {
	v, ok := r[key].(string)
	return v, ok
}

// Keys returns the row's field names in stable sorted order.
func (r Row) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DashboardStats fetches the aggregate counters and breakdowns for the
// dashboard page.
func (c *Client) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	env, err := c.do(ctx, http.MethodGet, "/analytics/dashboard", nil, nil)
	if err != nil {
		return nil, err
	}
	var stats DashboardStats
	if err := decodeData(env, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// MostBorrowed fetches the top borrowed books for a period ("all", "week",
// "month", or "year").
func (c *Client) MostBorrowed(ctx context.Context, limit int, period string) ([]Row, error) {
	v := url.Values{}
	v.Set("limit", strconv.Itoa(defaultLimit(limit)))
	if period != "" {
		v.Set("period", period)
	}
	return c.analyticsRows(ctx, "/analytics/most-borrowed", v)
}

// UserCategoryStats fetches borrowing aggregates grouped by user type.
func (c *Client) UserCategoryStats(ctx context.Context) ([]Row, error) {
	return c.analyticsRows(ctx, "/analytics/user-categories", nil)
}

// ReadingPatterns fetches per-month borrowing activity and duration stats.
func (c *Client) ReadingPatterns(ctx context.Context) ([]Row, error) {
	return c.analyticsRows(ctx, "/analytics/reading-patterns", nil)
}

// MonthlyReport fetches per-month borrow/return/overdue totals for a year.
func (c *Client) MonthlyReport(ctx context.Context, year int) ([]Row, error) {
	v := url.Values{}
	v.Set("year", strconv.Itoa(year))
	return c.analyticsRows(ctx, "/analytics/monthly-report", v)
}

func (c *Client) analyticsRows(ctx context.Context, path string, query url.Values) ([]Row, error) {
	env, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	var rows []Row
	if err := decodeData(env, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

package view

import (
	"libdash/internal/api"
)

// PickValueColumn evaluates an ordered preference list against a set of
// analytics rows and returns the first field name the rows actually carry as
// a number. When none of the preferred names is present it falls back to the
// first numeric column found (in stable key order). Different endpoints and
// time windows name their count column differently, so every chart goes
// through this once per payload.
func PickValueColumn(rows []api.Row, preferences ...string) (string, bool) {
	if len(rows) == 0 {
		return "", false
	}
	first := rows[0]

	for _, name := range preferences {
		if _, ok := first.Number(name); ok {
			return name, true
		}
	}
	for _, key := range first.Keys() {
		if _, ok := first.Number(key); ok {
			return key, true
		}
	}
	return "", false
}

// Point is one chart-ready label/value pair.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Series is a named sequence of points, marshaled into the page for the
// chart renderer.
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// SeriesFromRows projects one labeled numeric column out of analytics rows.
// Rows whose label field is missing are skipped; rows missing the value field
// contribute a zero point so the x-axis stays complete.
func SeriesFromRows(name string, rows []api.Row, labelKey, valueKey string) Series {
	s := Series{Name: name, Points: make([]Point, 0, len(rows))}
	for _, row := range rows {
		label, ok := rowLabel(row, labelKey)
		if !ok {
			continue
		}
		value, _ := row.Number(valueKey)
		s.Points = append(s.Points, Point{Label: label, Value: value})
	}
	return s
}

// Total sums the series values, for the metric cards under report charts.
func (s Series) Total() float64 {
	var total float64
	for _, p := range s.Points {
		total += p.Value
	}
	return total
}

// Empty reports whether the series carries no points.
func (s Series) Empty() bool {
	return len(s.Points) == 0
}

// rowLabel reads a label field that may be a string or a numeric month index.
func rowLabel(row api.Row, key string) (string, bool) {
	if s, ok := row.String(key); ok {
		return s, true
	}
	if n, ok := row.Int(key); ok {
		return MonthName(n), true
	}
	return "", false
}

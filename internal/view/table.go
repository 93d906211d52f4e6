package view

import (
	"errors"
	"fmt"
	"strconv"

	"libdash/internal/api"
)

// UserMessage maps a client error onto the banner text shown to the
// operator. Each failure class gets a distinct message; the taxonomy is the
// api package's.
func UserMessage(err error) string {
	var reqErr *api.RequestError
	switch {
	case errors.Is(err, api.ErrUnavailable):
		return "Cannot connect to the server. Please make sure the backend is running."
	case errors.Is(err, api.ErrTimeout):
		return "Request timeout. The server is taking too long to respond."
	case errors.As(err, &reqErr):
		return fmt.Sprintf("API Error (%d): %s", reqErr.Status, reqErr.Message)
	case err != nil:
		return "Error: " + err.Error()
	default:
		return ""
	}
}

// FormatValue renders an analytics cell for tabular display. JSON numbers
// arrive as float64; integral values drop the trailing ".0".
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', 2, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// RowTable flattens generic analytics rows into a header set and string
// cells. Headers come from the first row in stable sorted order; later rows
// missing a field produce empty cells rather than shifting columns.
func RowTable(rows []api.Row) ([]string, [][]string) {
	if len(rows) == 0 {
		return nil, nil
	}
	headers := rows[0].Keys()
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		line := make([]string, 0, len(headers))
		for _, h := range headers {
			line = append(line, FormatValue(row[h]))
		}
		cells = append(cells, line)
	}
	return headers, cells
}

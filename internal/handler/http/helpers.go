package http

import (
	"net/http"
	"strconv"
	"time"
)

// periodFromQuery reads month/year query parameters, defaulting to the
// current month when both are absent.
func periodFromQuery(r *http.Request) (month, year int, ok bool) {
	monthStr := r.URL.Query().Get("month")
	yearStr := r.URL.Query().Get("year")

	if monthStr == "" && yearStr == "" {
		now := time.Now()
		return int(now.Month()), now.Year(), true
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return 0, 0, false
	}
	year, err = strconv.Atoi(yearStr)
	if err != nil {
		return 0, 0, false
	}

	return month, year, true
}

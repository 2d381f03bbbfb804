package engine

import (
	"strconv"
	"strings"
	"time"
)

// NormalizeDate canonicalizes a raw date token to YYYY-MM-DD.
//
// Slash-separated tokens are read month-first (MM/DD/YYYY). For
// dash-separated tokens the first component decides: four digits means
// year-month-day, anything else day-month-year. Tokens that do not form
// a real calendar date yield ok=false; callers treat absence as "no
// date" and the candidate is discarded downstream.
func NormalizeDate(token string) (string, bool) {
	token = strings.TrimSpace(token)

	var sep string
	switch {
	case strings.Contains(token, "/"):
		sep = "/"
	case strings.Contains(token, "-"):
		sep = "-"
	default:
		return "", false
	}

	parts := strings.Split(token, sep)
	if len(parts) != 3 {
		return "", false
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return "", false
		}
		nums[i] = n
	}

	var year, month, day int
	switch {
	case sep == "/":
		month, day, year = nums[0], nums[1], nums[2]
	case len(parts[0]) == 4:
		year, month, day = nums[0], nums[1], nums[2]
	default:
		day, month, year = nums[0], nums[1], nums[2]
	}

	if year < 100 {
		year += 2000
	}

	// time.Date normalizes out-of-range components (month 13 becomes
	// January), so round-trip the parts to reject invalid dates.
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return "", false
	}
	return d.Format("2006-01-02"), true
}

package engine

import (
	"sort"

	"github.com/Kajalyadav4/Personal-Finance-Assistant/internal/models"
)

// ValidateAndSort filters invalid candidates and returns a new sequence
// sorted ascending by date. Candidates missing a date or description,
// or carrying a non-positive amount, are dropped. The sort is stable,
// so transactions sharing a date keep their source line order. Running
// it again on its own output changes nothing.
func ValidateAndSort(candidates []models.Transaction) []models.Transaction {
	kept := make([]models.Transaction, 0, len(candidates))
	for _, c := range candidates {
		if c.Date == "" || c.Description == "" || c.Amount <= 0 {
			continue
		}
		// Defensive: Categorize is total, so this should never fire.
		if c.Category == "" {
			c.Category = categoryFallback
		}
		kept = append(kept, c)
	}

	// Canonical YYYY-MM-DD strings order lexicographically.
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Date < kept[j].Date
	})
	return kept
}

// Summarize computes counts and the covered date range for a validated
// sequence. The range is absent when no transactions survived.
func Summarize(txs []models.Transaction) models.Summary {
	s := models.Summary{Total: len(txs)}
	if len(txs) == 0 {
		return s
	}

	r := models.DateRange{Earliest: txs[0].Date, Latest: txs[0].Date}
	for _, t := range txs {
		if t.Direction == models.DirectionIncome {
			s.Incomes++
		} else {
			s.Expenses++
		}
		if t.Date < r.Earliest {
			r.Earliest = t.Date
		}
		if t.Date > r.Latest {
			r.Latest = t.Date
		}
	}
	s.DateRange = &r
	return s
}

package engine

import (
	"regexp"
	"strings"
)

// Column-header and statement-furniture words. A line carrying one of
// these without a parsable amount is not a transaction.
var defaultHeaderKeywords = []string{
	"DATE", "DESCRIPTION", "AMOUNT", "BALANCE", "TRANSACTION",
	"ACCOUNT", "STATEMENT", "PERIOD", "PAGE", "SUMMARY",
}

// Balance announcement: keyword, optional currency marker, then a number
// directly after. "Balance transfer payment $200.00" does not match
// because no number follows the keyword.
var balancePattern = regexp.MustCompile(`(?i)\b(?:balance|total)\b[\s:]*[$£€]?\s*\d[\d,]*(?:\.\d{1,2})?`)

// Sub-balance qualifiers. An "available" or "pending" balance line is
// informational, not a balance announcement to suppress.
var subBalanceWords = []string{"AVAILABLE", "PENDING"}

// isHeaderLine reports whether the line looks like a column header or
// other statement furniture. A header row rarely carries a parsable
// amount, so lines with one are never headers even when they contain a
// header word.
func (e *Engine) isHeaderLine(line string) bool {
	upper := strings.ToUpper(line)
	for _, kw := range e.headerKeywords {
		if strings.Contains(upper, kw) {
			return !hasAmount(line)
		}
	}
	return false
}

// isBalanceLine reports whether the line announces a running or final
// account balance.
func (e *Engine) isBalanceLine(line string) bool {
	if !balancePattern.MatchString(line) {
		return false
	}
	upper := strings.ToUpper(line)
	for _, w := range subBalanceWords {
		if strings.Contains(upper, w) {
			return false
		}
	}
	return true
}

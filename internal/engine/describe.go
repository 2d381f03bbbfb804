package engine

import (
	"regexp"
	"strings"

	"github.com/Kajalyadav4/Personal-Finance-Assistant/internal/models"
)

var (
	leadingDigits  = regexp.MustCompile(`^\d+\s*`)
	referenceToken = regexp.MustCompile(`#\d+`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
)

// Descriptions containing one of these words mark money coming in when
// the line itself carried no explicit credit cue.
var defaultIncomeKeywords = []string{
	"deposit", "payroll", "salary", "wage", "income",
	"refund", "dividend", "interest", "bonus", "commission",
}

// NormalizeDescription cleans an extracted description prefix: leading
// digit runs, asterisks and #123-style reference tokens are removed,
// whitespace runs collapse to single spaces, and the result is
// sentence-cased. Returns "" when nothing readable remains.
func NormalizeDescription(s string) string {
	s = leadingDigits.ReplaceAllString(strings.TrimSpace(s), "")
	s = strings.ReplaceAll(s, "*", "")
	s = referenceToken.ReplaceAllString(s, "")
	s = whitespaceRun.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	runes := []rune(s)
	return strings.ToUpper(string(runes[0])) + strings.ToLower(string(runes[1:]))
}

// resolveDirection turns the extractor's cue into a final direction.
// An explicit cue is sufficient on its own; only when the line carried
// no cue does the normalized description decide, via the income keyword
// set. Anything else is an expense.
func (e *Engine) resolveDirection(signal directionSignal, description string) models.Direction {
	switch signal {
	case signalCredit:
		return models.DirectionIncome
	case signalDebit:
		return models.DirectionExpense
	}

	lower := strings.ToLower(description)
	for _, kw := range e.incomeKeywords {
		if strings.Contains(lower, kw) {
			return models.DirectionIncome
		}
	}
	return models.DirectionExpense
}

package engine

import (
	"regexp"
	"strconv"
	"strings"
)

// Date shapes tried in order; the first pattern that matches anywhere in
// the line wins and no further patterns are tried.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`),
	regexp.MustCompile(`\b\d{1,2}-\d{1,2}-\d{2,4}\b`),
	regexp.MustCompile(`\b\d{4}-\d{1,2}-\d{1,2}\b`),
}

// amountPattern pairs a regex (group 1 is the numeral) with whether the
// shape itself encodes a negative sign.
type amountPattern struct {
	re      *regexp.Regexp
	negates bool
}

// Amount shapes tried in order. For the first pattern that yields a
// match, the LAST non-overlapping match on the line is the amount —
// statements often print a running balance after the posted amount.
var amountPatterns = []amountPattern{
	{re: regexp.MustCompile(`[$£€]\s?(\d[\d,]*(?:\.\d{1,2})?)`)},
	{re: regexp.MustCompile(`(\d[\d,]*\.\d{2})\s*CR\b`)},
	{re: regexp.MustCompile(`(\d[\d,]*\.\d{2})\s*DR\b`)},
	{re: regexp.MustCompile(`-\s?[$£€]\s?(\d[\d,]*(?:\.\d{1,2})?)`), negates: true},
	{re: regexp.MustCompile(`(\d[\d,]*\.\d{2})-`), negates: true},
}

var (
	creditToken = regexp.MustCompile(`\bCR\b`)
	debitToken  = regexp.MustCompile(`\bDR\b`)
	depositWord = regexp.MustCompile(`(?i)\bDEPOSIT\b`)
)

// directionSignal is the debit/credit lean recovered from the line
// itself, before the description-based income heuristic runs.
type directionSignal int

const (
	signalNone directionSignal = iota
	signalCredit
	signalDebit
)

// fields holds what the extractor recovered from one candidate line.
type fields struct {
	date        string // canonical YYYY-MM-DD, "" when absent or not a real date
	dateToken   string // matched substring before normalization
	amount      float64
	hasAmount   bool
	signal      directionSignal
	description string // normalized, "" when nothing readable remains
}

// extractFields recovers date, amount, direction signal and description
// from a transaction-candidate line. A line without an amount is not a
// transaction; its other fields are left unset.
func extractFields(line string) fields {
	var f fields

	for _, p := range datePatterns {
		if m := p.FindString(line); m != "" {
			f.dateToken = m
			f.date, _ = NormalizeDate(m)
			break
		}
	}

	var matchStart int
	var patternNegates bool
	for _, p := range amountPatterns {
		ms := p.re.FindAllStringSubmatchIndex(line, -1)
		if len(ms) == 0 {
			continue
		}
		last := ms[len(ms)-1]
		numeral := strings.ReplaceAll(line[last[2]:last[3]], ",", "")
		amt, err := strconv.ParseFloat(numeral, 64)
		if err == nil {
			f.amount = amt
			f.hasAmount = true
			matchStart = last[0]
			patternNegates = p.negates
		}
		break
	}
	if !f.hasAmount {
		return f
	}

	f.signal = directionCue(line, matchStart, patternNegates)

	// A sign attached to the amount belongs to the amount, not the
	// description prefix.
	prefix := strings.TrimRight(line[:matchStart], " \t")
	prefix = strings.TrimSuffix(prefix, "-")
	if f.dateToken != "" {
		prefix = strings.Replace(prefix, f.dateToken, "", 1)
	}
	f.description = NormalizeDescription(prefix)
	return f
}

// directionCue derives the debit/credit lean. An explicit CR/DR token
// (or the word DEPOSIT) outranks a bare sign; a sign only counts when it
// is attached to the matched amount, so dashes inside dates never read
// as debits.
func directionCue(line string, amountStart int, patternNegates bool) directionSignal {
	if creditToken.MatchString(line) || depositWord.MatchString(line) {
		return signalCredit
	}
	if debitToken.MatchString(line) {
		return signalDebit
	}
	if patternNegates || precededByMinus(line, amountStart) {
		return signalDebit
	}
	return signalNone
}

func precededByMinus(line string, start int) bool {
	for i := start - 1; i >= 0; i-- {
		switch line[i] {
		case ' ', '\t':
			continue
		case '-':
			return true
		default:
			return false
		}
	}
	return false
}

// hasAmount reports whether any amount shape appears on the line.
func hasAmount(line string) bool {
	for _, p := range amountPatterns {
		if p.re.MatchString(line) {
			return true
		}
	}
	return false
}

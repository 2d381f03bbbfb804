// Package engine interprets raw bank-statement text, recovering discrete
// transactions without any per-bank schema. It is purely computational:
// no I/O, no shared mutable state, best-effort per line.
package engine

import (
	"unicode/utf8"

	"github.com/Kajalyadav4/Personal-Finance-Assistant/internal/models"
)

// Engine runs the interpretation pipeline. The keyword tables are built
// once and shared by reference across the pipeline stages; they are
// never mutated, so an Engine is safe for concurrent use.
type Engine struct {
	headerKeywords []string
	incomeKeywords []string
	categoryRules  []models.CategoryRule
}

// New returns an Engine with the default keyword tables.
func New() *Engine {
	return &Engine{
		headerKeywords: defaultHeaderKeywords,
		incomeKeywords: defaultIncomeKeywords,
		categoryRules:  defaultCategoryRules,
	}
}

// NewWithRules returns an Engine using a custom ordered category table.
func NewWithRules(rules []models.CategoryRule) *Engine {
	e := New()
	e.categoryRules = rules
	return e
}

// skipReason records why a line produced no candidate.
type skipReason int

const (
	skipNone skipReason = iota
	skipHeader
	skipBalance
	skipNoAmount
)

// lineOutcome is the discriminated per-line result: either a candidate
// transaction or a typed skip. Candidates may still be dropped by
// validation (absent date, non-positive amount, empty description).
type lineOutcome struct {
	candidate *models.Transaction
	skip      skipReason
}

// processLine runs classification, extraction and assembly for one line.
// Lines are independent; misses are silent.
func (e *Engine) processLine(line models.RawLine) lineOutcome {
	if e.isHeaderLine(line.Text) {
		return lineOutcome{skip: skipHeader}
	}
	if e.isBalanceLine(line.Text) {
		return lineOutcome{skip: skipBalance}
	}

	f := extractFields(line.Text)
	if !f.hasAmount {
		// Date-only or description-only lines are not transactions.
		return lineOutcome{skip: skipNoAmount}
	}

	tx := models.Transaction{
		Date:        f.date,
		Amount:      f.amount,
		Direction:   e.resolveDirection(f.signal, f.description),
		Description: f.description,
		Category:    e.Categorize(f.description),
		RawLine:     line.Original,
	}
	return lineOutcome{candidate: &tx}
}

// ProcessText interprets one statement document's text and returns the
// surviving transactions plus a summary. Per-line extraction misses are
// absorbed silently; only input that cannot be decoded is reported as a
// document-level failure. An empty transaction list with Success=true
// is a normal outcome.
func (e *Engine) ProcessText(text string) *models.ProcessingResult {
	if !utf8.ValidString(text) {
		return models.FailureResult("statement text is not valid UTF-8")
	}

	candidates := []models.Transaction{}
	for _, line := range SegmentLines(text) {
		if out := e.processLine(line); out.candidate != nil {
			candidates = append(candidates, *out.candidate)
		}
	}

	txs := ValidateAndSort(candidates)
	return &models.ProcessingResult{
		Success:      true,
		Transactions: txs,
		RawText:      text,
		Summary:      Summarize(txs),
	}
}

package models

// Direction classifies a transaction as money in or money out.
type Direction string

const (
	DirectionIncome  Direction = "income"
	DirectionExpense Direction = "expense"
)

// RawLine is a single trimmed, non-empty statement line. Original keeps
// the untouched source text for audit.
type RawLine struct {
	Text     string `json:"text"`
	Original string `json:"original"`
}

// Transaction represents a single transaction recovered from statement
// text. Immutable once assembled; validation never edits a transaction
// in place, it produces a new filtered sequence.
type Transaction struct {
	Date        string    `json:"date"` // canonical YYYY-MM-DD
	Amount      float64   `json:"amount"`
	Direction   Direction `json:"direction"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	RawLine     string    `json:"rawLine"` // original source line, for traceability
}

// DateRange is the span covered by a set of transactions.
type DateRange struct {
	Earliest string `json:"earliest"`
	Latest   string `json:"latest"`
}

// Summary aggregates a processed transaction sequence.
type Summary struct {
	Total     int        `json:"total"`
	Expenses  int        `json:"expenses"`
	Incomes   int        `json:"incomes"`
	DateRange *DateRange `json:"dateRange,omitempty"` // nil when no transactions survived
}

// ProcessingResult is the engine's output for one statement document.
// An empty transaction list with Success=true is a normal outcome; a
// failure result means the source text itself could not be obtained or
// decoded.
type ProcessingResult struct {
	Success      bool          `json:"success"`
	Error        string        `json:"error,omitempty"`
	Transactions []Transaction `json:"transactions"`
	RawText      string        `json:"rawText,omitempty"` // retained for manual re-inspection
	Summary      Summary       `json:"summary"`
}

// FailureResult builds the document-level failure value. No partial
// transaction list is ever attached to a failure.
func FailureResult(msg string) *ProcessingResult {
	return &ProcessingResult{
		Success:      false,
		Error:        msg,
		Transactions: []Transaction{},
	}
}

// CategoryRule maps a case-insensitive keyword to a category label.
// Rule tables are ordered; earlier rules win.
type CategoryRule struct {
	Keyword  string `json:"keyword"`
	Category string `json:"category"`
}

// TransactionRecord is a Transaction prepared for downstream
// persistence: the caller's user identifier is attached and a record ID
// assigned. Statement imports have no associated receipt image, so
// ReceiptID is always nil.
type TransactionRecord struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Date        string    `json:"date"`
	Amount      float64   `json:"amount"`
	Direction   Direction `json:"direction"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	RawLine     string    `json:"rawLine"`
	ReceiptID   *string   `json:"receiptId"`
}

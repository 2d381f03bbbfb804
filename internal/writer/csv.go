package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Kajalyadav4/Personal-Finance-Assistant/internal/models"
)

// CSVWriter renders a ProcessingResult as CSV.
type CSVWriter struct {
	IncludeSummary bool
}

// WriteToFile writes the result to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, result *models.ProcessingResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, result)
}

// Write writes the result in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, result *models.ProcessingResult) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	if w.IncludeSummary {
		writer.Write([]string{"# Transactions", strconv.Itoa(result.Summary.Total)})
		writer.Write([]string{"# Expenses", strconv.Itoa(result.Summary.Expenses)})
		writer.Write([]string{"# Incomes", strconv.Itoa(result.Summary.Incomes)})
		if r := result.Summary.DateRange; r != nil {
			writer.Write([]string{"# Period", r.Earliest + " to " + r.Latest})
		}
	}

	header := []string{"Date", "Description", "Category", "Direction", "Amount"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, txn := range result.Transactions {
		row := []string{
			txn.Date,
			txn.Description,
			txn.Category,
			string(txn.Direction),
			strconv.FormatFloat(txn.Amount, 'f', 2, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return writer.Error()
}

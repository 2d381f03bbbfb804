package engine

import (
	"github.com/google/uuid"

	"github.com/Kajalyadav4/Personal-Finance-Assistant/internal/models"
)

// PrepareRecords maps surviving transactions to persistence-ready
// records for the given user. Transactions extracted from a
// multi-transaction document have no single receipt image, so ReceiptID
// stays nil. The engine itself never stores anything.
func PrepareRecords(userID string, txs []models.Transaction) []models.TransactionRecord {
	records := make([]models.TransactionRecord, 0, len(txs))
	for _, t := range txs {
		records = append(records, models.TransactionRecord{
			ID:          uuid.NewString(),
			UserID:      userID,
			Date:        t.Date,
			Amount:      t.Amount,
			Direction:   t.Direction,
			Description: t.Description,
			Category:    t.Category,
			RawLine:     t.RawLine,
			ReceiptID:   nil,
		})
	}
	return records
}

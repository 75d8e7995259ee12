package statistics

import (
	"time"

	"gagyebu/internal/models"
)

// DueEntry pairs a due with its owning record. The record must carry its
// Category and Emotion associations so the aggregator can group by them.
type DueEntry struct {
	Due    models.InstallmentDue
	Record models.Record
}

// Source supplies the raw material for aggregation. Implementations perform
// all I/O up front; the aggregator itself never touches storage.
//
// The two queries deliberately use different date fields: plain records are
// recognized by their transaction date, dues by their scheduled (due) date.
type Source interface {
	// Records returns non-installment records of the given type for the
	// user, with record date inside [start, end] inclusive, Category and
	// Emotion populated.
	Records(userID uint, recordType models.RecordType, start, end time.Time) ([]models.Record, error)

	// DueEntries returns dues with scheduled date inside [start, end]
	// inclusive, joined with their owning records.
	DueEntries(userID uint, start, end time.Time) ([]DueEntry, error)
}

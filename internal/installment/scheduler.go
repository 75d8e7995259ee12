// Package installment materializes installment purchases into monthly dues.
package installment

import (
	"time"

	apperrors "gagyebu/internal/errors"
	"gagyebu/internal/models"
)

// Schedule produces the full due set for an installment record: one due per
// month, indices 1..InstallmentMonths, dates one calendar month apart.
//
// The per-month amount is Amount / InstallmentMonths with integer division
// for every due. The remainder is intentionally not redistributed, so the
// dues may sum to slightly less than the record amount; callers relying on
// exact totals must use the record amount, not the due sum.
func Schedule(record *models.Record) ([]models.InstallmentDue, error) {
	if !record.IsInstallment {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "record is not an installment purchase")
	}
	if record.InstallmentMonths < 1 {
		return nil, apperrors.ErrInvalidInstallment
	}

	monthlyAmount := record.Amount / int64(record.InstallmentMonths)

	dues := make([]models.InstallmentDue, 0, record.InstallmentMonths)
	for i := 0; i < record.InstallmentMonths; i++ {
		dues = append(dues, models.InstallmentDue{
			RecordID:      record.ID,
			Index:         i + 1,
			ScheduledDate: dueDate(record.Date, i),
			MonthlyAmount: monthlyAmount,
		})
	}
	return dues, nil
}

// dueDate returns the base date shifted forward by monthOffset calendar
// months. The day-of-month is clamped to the last valid day of the target
// month (Jan 31 + 1 month = Feb 28/29), and the time-of-day is preserved.
func dueDate(base time.Time, monthOffset int) time.Time {
	// AddDate on the first of the month never rolls past the target month,
	// so resolve the target month independently of the base day.
	firstOfTarget := time.Date(base.Year(), base.Month(), 1, 0, 0, 0, 0, base.Location()).
		AddDate(0, monthOffset, 0)

	day := base.Day()
	if last := lastDayOfMonth(firstOfTarget); day > last {
		day = last
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		base.Hour(), base.Minute(), base.Second(), base.Nanosecond(), base.Location())
}

func lastDayOfMonth(firstOfMonth time.Time) int {
	return firstOfMonth.AddDate(0, 1, -1).Day()
}

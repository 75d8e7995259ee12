package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "gagyebu/internal/errors"
	"gagyebu/internal/models"
	"gagyebu/internal/statistics"
)

// gormStatisticsSource implements statistics.Source over the records and
// installment_dues tables. It is the only place the aggregation engine
// touches storage; the aggregator itself stays pure.
type gormStatisticsSource struct {
	db *gorm.DB
}

// NewStatisticsSource creates a statistics.Source backed by GORM.
func NewStatisticsSource(db *gorm.DB) statistics.Source {
	return &gormStatisticsSource{db: db}
}

// Records returns the user's non-installment records of one type whose
// transaction date falls inside [start, end].
func (s *gormStatisticsSource) Records(userID uint, recordType models.RecordType, start, end time.Time) ([]models.Record, error) {
	var records []models.Record
	err := s.db.Preload("Category").Preload("Emotion").
		Where("user_id = ? AND type = ? AND is_installment = ? AND date BETWEEN ? AND ?",
			userID, recordType, false, start, end).
		Find(&records).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return records, nil
}

// DueEntries returns dues scheduled inside [start, end] joined with their
// owning records. Recognition is by due date: the owning record's purchase
// date plays no part here.
func (s *gormStatisticsSource) DueEntries(userID uint, start, end time.Time) ([]statistics.DueEntry, error) {
	var dues []models.InstallmentDue
	err := s.db.Preload("Record").Preload("Record.Category").Preload("Record.Emotion").
		Joins("JOIN records ON records.id = installment_dues.record_id AND records.deleted_at IS NULL").
		Where("records.user_id = ? AND installment_dues.scheduled_date BETWEEN ? AND ?", userID, start, end).
		Find(&dues).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	entries := make([]statistics.DueEntry, 0, len(dues))
	for _, d := range dues {
		record := d.Record
		d.Record = models.Record{}
		entries = append(entries, statistics.DueEntry{Due: d, Record: record})
	}
	return entries, nil
}

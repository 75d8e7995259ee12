package models

import "time"

// InstallmentDue is one month's obligation derived from an installment
// record. Dues are owned by their record: the write path deletes and
// regenerates the whole set whenever the record's installment terms change,
// so a record always carries exactly InstallmentMonths contiguous dues.
type InstallmentDue struct {
	Base
	RecordID      uint      `gorm:"not null;index" json:"record_id"`
	Index         int       `gorm:"column:installment_index;not null" json:"index"`
	ScheduledDate time.Time `gorm:"not null;index" json:"scheduled_date"`
	MonthlyAmount int64     `gorm:"type:bigint;not null" json:"monthly_amount"`

	Record Record `gorm:"foreignKey:RecordID" json:"record,omitempty"`
}

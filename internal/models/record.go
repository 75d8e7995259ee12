package models

import "time"

// RecordType represents the type of a ledger record
type RecordType string

const (
	RecordTypeIncome  RecordType = "income"
	RecordTypeExpense RecordType = "expense"
)

// PaymentMethod represents how a record was paid
type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodOther      PaymentMethod = "other"
)

// DisplayName returns a human-readable label for the payment method.
func (p PaymentMethod) DisplayName() string {
	switch p {
	case PaymentMethodCreditCard:
		return "Credit Card"
	case PaymentMethodDebitCard:
		return "Debit Card"
	case PaymentMethodCash:
		return "Cash"
	default:
		return "Other"
	}
}

// Record represents a single logged income or expense transaction.
// Amounts are stored in the smallest currency unit.
type Record struct {
	Base
	UserID            uint          `gorm:"not null;index:idx_record_user_date;index:idx_record_user_type" json:"user_id"`
	Amount            int64         `gorm:"type:bigint;not null" json:"amount"`
	Type              RecordType    `gorm:"not null;size:10;index:idx_record_user_type" json:"type"`
	Date              time.Time     `gorm:"not null;index:idx_record_user_date" json:"date"`
	CategoryID        uint          `gorm:"not null" json:"category_id"`
	EmotionID         uint          `gorm:"not null" json:"emotion_id"`
	PaymentMethod     PaymentMethod `gorm:"size:20" json:"payment_method"`
	IsInstallment     bool          `gorm:"not null;default:false" json:"is_installment"`
	InstallmentMonths int           `json:"installment_months,omitempty"`
	Memo              string        `gorm:"size:500" json:"memo,omitempty"`

	// Relationships
	Category Category         `gorm:"foreignKey:CategoryID" json:"category"`
	Emotion  Emotion          `gorm:"foreignKey:EmotionID" json:"emotion"`
	Dues     []InstallmentDue `gorm:"foreignKey:RecordID" json:"dues,omitempty"`
}

// IsIncome reports whether the record is an income record.
func (r *Record) IsIncome() bool { return r.Type == RecordTypeIncome }

// IsExpense reports whether the record is an expense record.
func (r *Record) IsExpense() bool { return r.Type == RecordTypeExpense }

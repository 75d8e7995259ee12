package statistics

import "time"

// Overview summarizes income and spending for the requested period,
// compared against the immediately preceding period.
type Overview struct {
	TotalIncome       int64   `json:"total_income"`
	TotalExpense      int64   `json:"total_expense"`
	LastPeriodExpense int64   `json:"last_period_expense"`
	NetIncome         int64   `json:"net_income"`
	ChangePercent     float64 `json:"change_percent"`
}

// CategorySpending is one category's share of the period's expenses,
// installment dues included.
type CategorySpending struct {
	CategoryID       uint    `json:"category_id"`
	CategoryName     string  `json:"category_name"`
	CategoryIcon     string  `json:"category_icon"`
	Amount           int64   `json:"amount"`
	Percentage       float64 `json:"percentage"`
	TransactionCount int     `json:"transaction_count"`
}

// EmotionalSpending is one emotion's share of the period's expenses.
type EmotionalSpending struct {
	EmotionID        uint    `json:"emotion_id"`
	EmotionName      string  `json:"emotion_name"`
	EmotionIcon      string  `json:"emotion_icon"`
	Amount           int64   `json:"amount"`
	Percentage       float64 `json:"percentage"`
	TransactionCount int     `json:"transaction_count"`
}

// PaymentMethodSpending is one payment method's share of the period's expenses.
type PaymentMethodSpending struct {
	PaymentMethod     string  `json:"payment_method"`
	PaymentMethodName string  `json:"payment_method_name"`
	Amount            int64   `json:"amount"`
	Percentage        float64 `json:"percentage"`
	TransactionCount  int     `json:"transaction_count"`
}

// InstallmentDetail describes a single due falling inside the period.
type InstallmentDetail struct {
	RecordID      uint      `json:"record_id"`
	Description   string    `json:"description"`
	TotalAmount   int64     `json:"total_amount"`
	MonthlyAmount int64     `json:"monthly_amount"`
	CurrentMonth  int       `json:"current_month"`
	TotalMonths   int       `json:"total_months"`
	Progress      string    `json:"progress"`
	ScheduledDate time.Time `json:"scheduled_date"`
}

// InstallmentSummary aggregates the period's installment obligations.
type InstallmentSummary struct {
	ActiveCount    int                 `json:"active_count"`
	MonthlyPayment int64               `json:"monthly_payment"`
	PaymentRatio   float64             `json:"payment_ratio"`
	Details        []InstallmentDetail `json:"details"`
}

// Insight is a rule-based warning or tip. Generation is not implemented;
// the field stays in the contract so clients can rely on its presence.
type Insight struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Suggestion  string `json:"suggestion"`
	Emoji       string `json:"emoji"`
	Priority    int    `json:"priority"`
}

// Snapshot is the complete statistics response for one (user, period) pair.
// It is computed on demand and never persisted.
type Snapshot struct {
	Overview              Overview                `json:"overview"`
	CategorySpending      []CategorySpending      `json:"category_spending"`
	EmotionalSpending     []EmotionalSpending     `json:"emotional_spending"`
	PaymentMethodSpending []PaymentMethodSpending `json:"payment_method_spending"`
	Installments          InstallmentSummary      `json:"installments"`
	Insights              []Insight               `json:"insights"`
}

package services

import (
	"time"

	"gagyebu/internal/models"
	"gagyebu/internal/pagination"
	"gagyebu/internal/statistics"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, nickname string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// RecordInput carries the caller-supplied fields for creating a record.
type RecordInput struct {
	Amount            int64
	Type              models.RecordType
	Date              time.Time
	CategoryID        uint
	EmotionID         uint
	PaymentMethod     models.PaymentMethod
	IsInstallment     bool
	InstallmentMonths int
	Memo              string
}

// RecordUpdate carries the optional fields for updating a record. Nil
// pointers leave the stored value untouched; installment terms are always
// re-derived after an update.
type RecordUpdate struct {
	Amount            *int64
	Type              *models.RecordType
	Date              *time.Time
	CategoryID        *uint
	EmotionID         *uint
	PaymentMethod     *models.PaymentMethod
	IsInstallment     *bool
	InstallmentMonths *int
	Memo              *string
}

// RecordFilter holds optional filter parameters for listing records.
type RecordFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Type     *models.RecordType
}

// RecordView is one row of the merged monthly ledger: either a plain record
// or a single installment due presented at its scheduled date.
type RecordView struct {
	ID                uint                 `json:"id"`
	Amount            int64                `json:"amount"`
	Type              models.RecordType    `json:"type"`
	Date              time.Time            `json:"date"`
	CategoryID        uint                 `json:"category_id"`
	CategoryName      string               `json:"category_name"`
	CategoryIcon      string               `json:"category_icon"`
	EmotionID         uint                 `json:"emotion_id"`
	EmotionName       string               `json:"emotion_name"`
	EmotionIcon       string               `json:"emotion_icon"`
	PaymentMethod     models.PaymentMethod `json:"payment_method"`
	IsInstallment     bool                 `json:"is_installment"`
	InstallmentMonths int                  `json:"installment_months,omitempty"`
	Memo              string               `json:"memo,omitempty"`

	// Set only for installment dues.
	MonthlyAmount       *int64 `json:"monthly_amount,omitempty"`
	InstallmentProgress string `json:"installment_progress,omitempty"`
}

// RecordServicer defines the contract for record-related business logic.
type RecordServicer interface {
	CreateRecord(userID uint, in RecordInput) (*models.Record, error)
	UpdateRecord(userID, recordID uint, upd RecordUpdate) (*models.Record, error)
	GetRecordByID(userID, recordID uint) (*models.Record, error)
	GetUserRecords(userID uint, page pagination.PageRequest, filter RecordFilter) (*pagination.PageResponse[models.Record], error)
	GetMonthlyRecords(userID uint, year, month int) ([]RecordView, error)
}

// StatisticsServicer defines the contract for statistics computation.
type StatisticsServicer interface {
	GetStatistics(userID uint, kind string, year int, month *int) (*statistics.Snapshot, error)
}

// CategoryServicer exposes the category catalog visible to a user.
type CategoryServicer interface {
	GetVisibleCategories(userID uint) ([]models.Category, error)
	GetCategoryByID(userID, categoryID uint) (*models.Category, error)
}

// EmotionServicer exposes the emotion catalog visible to a user.
type EmotionServicer interface {
	GetVisibleEmotions(userID uint) ([]models.Emotion, error)
	GetEmotionByID(userID, emotionID uint) (*models.Emotion, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}

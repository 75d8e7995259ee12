package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// CatalogScope distinguishes the seeded default catalog entries from
// user-created ones. Shared by categories and emotions.
type CatalogScope string

const (
	ScopeDefault CatalogScope = "default"
	ScopeCustom  CatalogScope = "custom"
)

// Category represents a spending/income category. Default categories are
// seeded by the migrations and have no owner.
type Category struct {
	Base
	UserID    *uint        `gorm:"index" json:"user_id,omitempty"`
	Name      string       `gorm:"not null;size:50" json:"name"`
	Type      CategoryType `gorm:"not null;size:10" json:"type"`
	Scope     CatalogScope `gorm:"not null;size:10;default:default" json:"scope"`
	IconName  string       `gorm:"size:50" json:"icon_name"`
	SortOrder int          `gorm:"not null;default:0" json:"sort_order"`

	// Relationships
	Records []Record `gorm:"foreignKey:CategoryID" json:"records,omitempty"`
}

package models

// Emotion represents the feeling a user attaches to a record. Default
// emotions are seeded by the migrations and have no owner.
type Emotion struct {
	Base
	UserID    *uint        `gorm:"index" json:"user_id,omitempty"`
	Name      string       `gorm:"not null;size:50" json:"name"`
	Scope     CatalogScope `gorm:"not null;size:10;default:default" json:"scope"`
	IconName  string       `gorm:"size:50" json:"icon_name"`
	SortOrder int          `gorm:"not null;default:0" json:"sort_order"`

	// Relationships
	Records []Record `gorm:"foreignKey:EmotionID" json:"records,omitempty"`
}

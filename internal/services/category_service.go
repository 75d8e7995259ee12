package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "gagyebu/internal/errors"
	"gagyebu/internal/models"
)

// categoryService exposes the category catalog. Categories are reference
// data: the seeded defaults plus the user's own custom entries. Catalog
// management (create/update/visibility) is handled elsewhere.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// GetVisibleCategories returns the default catalog plus the user's custom
// categories, in sort order.
func (s *categoryService) GetVisibleCategories(userID uint) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.
		Where("scope = ? OR user_id = ?", models.ScopeDefault, userID).
		Order("type, sort_order, id").
		Find(&categories).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// GetCategoryByID returns a category if it is a default one or belongs to
// the user.
func (s *categoryService) GetCategoryByID(userID, categoryID uint) (*models.Category, error) {
	var category models.Category
	err := s.db.
		Where("id = ? AND (scope = ? OR user_id = ?)", categoryID, models.ScopeDefault, userID).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "gagyebu/internal/errors"
	"gagyebu/internal/models"
)

// emotionService exposes the emotion catalog, mirroring categoryService.
type emotionService struct {
	db *gorm.DB
}

// NewEmotionService creates a new EmotionServicer.
func NewEmotionService(db *gorm.DB) EmotionServicer {
	return &emotionService{db: db}
}

// GetVisibleEmotions returns the default catalog plus the user's custom
// emotions, in sort order.
func (s *emotionService) GetVisibleEmotions(userID uint) ([]models.Emotion, error) {
	var emotions []models.Emotion
	err := s.db.
		Where("scope = ? OR user_id = ?", models.ScopeDefault, userID).
		Order("sort_order, id").
		Find(&emotions).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return emotions, nil
}

// GetEmotionByID returns an emotion if it is a default one or belongs to
// the user.
func (s *emotionService) GetEmotionByID(userID, emotionID uint) (*models.Emotion, error) {
	var emotion models.Emotion
	err := s.db.
		Where("id = ? AND (scope = ? OR user_id = ?)", emotionID, models.ScopeDefault, userID).
		First(&emotion).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmotionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &emotion, nil
}

package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gagyebu/internal/installment"
	"gagyebu/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateDefaultCategory creates an unowned default category of the given type.
func CreateDefaultCategory(t *testing.T, db *gorm.DB, categoryType models.CategoryType) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:  fmt.Sprintf("Test Category %d", nextID()),
		Type:  categoryType,
		Scope: models.ScopeDefault,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create default category: %v", err)
	}
	return category
}

// CreateTestCategory creates a custom category owned by the given user.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID uint, categoryType models.CategoryType) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: &userID,
		Name:   fmt.Sprintf("Test Category %d", nextID()),
		Type:   categoryType,
		Scope:  models.ScopeCustom,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateDefaultEmotion creates an unowned default emotion.
func CreateDefaultEmotion(t *testing.T, db *gorm.DB) *models.Emotion {
	t.Helper()

	emotion := &models.Emotion{
		Name:  fmt.Sprintf("Test Emotion %d", nextID()),
		Scope: models.ScopeDefault,
	}
	if err := db.Create(emotion).Error; err != nil {
		t.Fatalf("failed to create default emotion: %v", err)
	}
	return emotion
}

// CreateTestEmotion creates a custom emotion owned by the given user.
func CreateTestEmotion(t *testing.T, db *gorm.DB, userID uint) *models.Emotion {
	t.Helper()

	emotion := &models.Emotion{
		UserID: &userID,
		Name:   fmt.Sprintf("Test Emotion %d", nextID()),
		Scope:  models.ScopeCustom,
	}
	if err := db.Create(emotion).Error; err != nil {
		t.Fatalf("failed to create test emotion: %v", err)
	}
	return emotion
}

// CreateTestRecord creates a non-installment record of the given type and
// amount on the given date.
func CreateTestRecord(t *testing.T, db *gorm.DB, userID, categoryID, emotionID uint, recordType models.RecordType, amount int64, date time.Time) *models.Record {
	t.Helper()

	record := &models.Record{
		UserID:        userID,
		Amount:        amount,
		Type:          recordType,
		Date:          date,
		CategoryID:    categoryID,
		EmotionID:     emotionID,
		PaymentMethod: models.PaymentMethodCash,
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create test record: %v", err)
	}
	return record
}

// CreateTestInstallmentRecord creates an installment expense record together
// with its generated payment schedule.
func CreateTestInstallmentRecord(t *testing.T, db *gorm.DB, userID, categoryID, emotionID uint, amount int64, months int, date time.Time) *models.Record {
	t.Helper()

	record := &models.Record{
		UserID:            userID,
		Amount:            amount,
		Type:              models.RecordTypeExpense,
		Date:              date,
		CategoryID:        categoryID,
		EmotionID:         emotionID,
		PaymentMethod:     models.PaymentMethodCreditCard,
		IsInstallment:     true,
		InstallmentMonths: months,
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create test installment record: %v", err)
	}

	dues, err := installment.Schedule(record)
	if err != nil {
		t.Fatalf("failed to schedule installment dues: %v", err)
	}
	if err := db.Create(&dues).Error; err != nil {
		t.Fatalf("failed to create test installment dues: %v", err)
	}
	record.Dues = dues
	return record
}

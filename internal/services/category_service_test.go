package services

import (
	"testing"

	"gagyebu/internal/models"
	"gagyebu/internal/testutil"
)

func TestGetVisibleCategories(t *testing.T) {
	t.Run("returns defaults plus own custom categories", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)

		testutil.CreateDefaultCategory(t, db, models.CategoryTypeExpense)
		testutil.CreateDefaultCategory(t, db, models.CategoryTypeIncome)
		mine := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		testutil.CreateTestCategory(t, db, other.ID, models.CategoryTypeExpense)

		categories, err := svc.GetVisibleCategories(user.ID)
		testutil.AssertNoError(t, err)

		if len(categories) != 3 {
			t.Fatalf("expected 3 visible categories, got %d", len(categories))
		}
		found := false
		for _, c := range categories {
			if c.ID == mine.ID {
				found = true
			}
			if c.UserID != nil && *c.UserID == other.ID {
				t.Error("another user's custom category leaked into the list")
			}
		}
		if !found {
			t.Error("expected the user's own custom category in the list")
		}
	})

	t.Run("empty catalog yields empty list", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		user := testutil.CreateTestUser(t, db)
		categories, err := svc.GetVisibleCategories(user.ID)
		testutil.AssertNoError(t, err)
		if len(categories) != 0 {
			t.Errorf("expected no categories, got %d", len(categories))
		}
	})
}

func TestGetCategoryByID(t *testing.T) {
	t.Run("default category visible to anyone", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		user := testutil.CreateTestUser(t, db)
		def := testutil.CreateDefaultCategory(t, db, models.CategoryTypeExpense)

		got, err := svc.GetCategoryByID(user.ID, def.ID)
		testutil.AssertNoError(t, err)
		if got.ID != def.ID {
			t.Errorf("expected category %d, got %d", def.ID, got.ID)
		}
	})

	t.Run("custom category hidden from other users", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		owner := testutil.CreateTestUser(t, db)
		stranger := testutil.CreateTestUser(t, db)
		custom := testutil.CreateTestCategory(t, db, owner.ID, models.CategoryTypeExpense)

		_, err := svc.GetCategoryByID(owner.ID, custom.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.GetCategoryByID(stranger.ID, custom.ID)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("unknown ID yields not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		user := testutil.CreateTestUser(t, db)
		_, err := svc.GetCategoryByID(user.ID, 99999)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

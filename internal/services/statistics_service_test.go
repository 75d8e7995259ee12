package services

import (
	"testing"
	"time"

	"gagyebu/internal/models"
	"gagyebu/internal/testutil"

	"gorm.io/gorm"
)

func setupStatisticsService(t *testing.T) (*gorm.DB, StatisticsServicer, *models.User) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	user := testutil.CreateTestUser(t, db)
	svc := NewStatisticsService(NewStatisticsSource(db))
	return db, svc, user
}

func intPtr(v int) *int { return &v }

func TestGetStatisticsValidation(t *testing.T) {
	t.Run("monthly without month fails before touching data", func(t *testing.T) {
		_, svc, user := setupStatisticsService(t)

		_, err := svc.GetStatistics(user.ID, "monthly", 2025, nil)
		testutil.AssertAppError(t, err, "INVALID_PERIOD")
	})

	t.Run("rejects out-of-range month", func(t *testing.T) {
		_, svc, user := setupStatisticsService(t)

		_, err := svc.GetStatistics(user.ID, "monthly", 2025, intPtr(13))
		testutil.AssertAppError(t, err, "INVALID_PERIOD")
	})

	t.Run("rejects unknown period type", func(t *testing.T) {
		_, svc, user := setupStatisticsService(t)

		_, err := svc.GetStatistics(user.ID, "weekly", 2025, intPtr(7))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetStatisticsDeletedRecords(t *testing.T) {
	t.Run("ignores dues of a soft-deleted record", func(t *testing.T) {
		db, svc, user := setupStatisticsService(t)

		category := testutil.CreateDefaultCategory(t, db, models.CategoryTypeExpense)
		emotion := testutil.CreateDefaultEmotion(t, db)

		record := testutil.CreateTestInstallmentRecord(t, db, user.ID, category.ID, emotion.ID,
			30000, 3, time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC))
		testutil.AssertNoError(t, db.Delete(record).Error)

		snap, err := svc.GetStatistics(user.ID, "monthly", 2025, intPtr(7))
		testutil.AssertNoError(t, err)

		if snap.Overview.TotalExpense != 0 {
			t.Errorf("expected no expense from deleted record, got %d", snap.Overview.TotalExpense)
		}
		if snap.Installments.ActiveCount != 0 {
			t.Errorf("expected no active installments, got %d", snap.Installments.ActiveCount)
		}
	})
}

func TestGetStatisticsMonthly(t *testing.T) {
	t.Run("computes a snapshot over records and dues", func(t *testing.T) {
		db, svc, user := setupStatisticsService(t)

		expenseCat := testutil.CreateDefaultCategory(t, db, models.CategoryTypeExpense)
		incomeCat := testutil.CreateDefaultCategory(t, db, models.CategoryTypeIncome)
		emotion := testutil.CreateDefaultEmotion(t, db)

		// July 2025: salary, a plain expense, and the second due of a
		// 3-month installment bought in June.
		testutil.CreateTestRecord(t, db, user.ID, incomeCat.ID, emotion.ID,
			models.RecordTypeIncome, 100000, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC))
		testutil.CreateTestRecord(t, db, user.ID, expenseCat.ID, emotion.ID,
			models.RecordTypeExpense, 15000, time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC))
		testutil.CreateTestInstallmentRecord(t, db, user.ID, expenseCat.ID, emotion.ID,
			30000, 3, time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC))

		snap, err := svc.GetStatistics(user.ID, "monthly", 2025, intPtr(7))
		testutil.AssertNoError(t, err)

		if snap.Overview.TotalIncome != 100000 {
			t.Errorf("expected total income 100000, got %d", snap.Overview.TotalIncome)
		}
		// 15000 plain + 10000 installment due scheduled in July.
		if snap.Overview.TotalExpense != 25000 {
			t.Errorf("expected total expense 25000, got %d", snap.Overview.TotalExpense)
		}
		if snap.Overview.NetIncome != 75000 {
			t.Errorf("expected net income 75000, got %d", snap.Overview.NetIncome)
		}

		// The installment purchase itself must not appear as a July expense;
		// only its due does. June carried the first due.
		if snap.Overview.LastPeriodExpense != 10000 {
			t.Errorf("expected last period expense 10000, got %d", snap.Overview.LastPeriodExpense)
		}

		if snap.Installments.ActiveCount != 1 {
			t.Errorf("expected 1 active installment, got %d", snap.Installments.ActiveCount)
		}
		if snap.Installments.MonthlyPayment != 10000 {
			t.Errorf("expected monthly payment 10000, got %d", snap.Installments.MonthlyPayment)
		}
		if snap.Installments.PaymentRatio != 10.0 {
			t.Errorf("expected payment ratio 10.0, got %v", snap.Installments.PaymentRatio)
		}
		if len(snap.Installments.Details) != 1 {
			t.Fatalf("expected 1 installment detail, got %d", len(snap.Installments.Details))
		}
		if snap.Installments.Details[0].Progress != "2/3" {
			t.Errorf("expected progress 2/3, got %q", snap.Installments.Details[0].Progress)
		}
	})

	t.Run("excludes other users' data", func(t *testing.T) {
		db, svc, user := setupStatisticsService(t)

		other := testutil.CreateTestUser(t, db)
		cat := testutil.CreateDefaultCategory(t, db, models.CategoryTypeExpense)
		emotion := testutil.CreateDefaultEmotion(t, db)
		testutil.CreateTestRecord(t, db, other.ID, cat.ID, emotion.ID,
			models.RecordTypeExpense, 5000, time.Date(2025, time.July, 2, 0, 0, 0, 0, time.UTC))

		snap, err := svc.GetStatistics(user.ID, "monthly", 2025, intPtr(7))
		testutil.AssertNoError(t, err)

		if snap.Overview.TotalExpense != 0 {
			t.Errorf("expected no expenses, got %d", snap.Overview.TotalExpense)
		}
	})
}

func TestGetStatisticsYearly(t *testing.T) {
	t.Run("covers all dues scheduled in the year", func(t *testing.T) {
		db, svc, user := setupStatisticsService(t)

		cat := testutil.CreateDefaultCategory(t, db, models.CategoryTypeExpense)
		emotion := testutil.CreateDefaultEmotion(t, db)

		// 6-month installment bought in November 2024: two dues fall in
		// 2024, four in 2025.
		testutil.CreateTestInstallmentRecord(t, db, user.ID, cat.ID, emotion.ID,
			60000, 6, time.Date(2024, time.November, 15, 0, 0, 0, 0, time.UTC))

		snap, err := svc.GetStatistics(user.ID, "yearly", 2025, nil)
		testutil.AssertNoError(t, err)

		if snap.Overview.TotalExpense != 40000 {
			t.Errorf("expected 4 dues totalling 40000, got %d", snap.Overview.TotalExpense)
		}
		if snap.Overview.LastPeriodExpense != 20000 {
			t.Errorf("expected 2 dues totalling 20000 in 2024, got %d", snap.Overview.LastPeriodExpense)
		}
		if len(snap.Installments.Details) != 4 {
			t.Errorf("expected 4 details, got %d", len(snap.Installments.Details))
		}
	})

	t.Run("month parameter is ignored for yearly", func(t *testing.T) {
		_, svc, user := setupStatisticsService(t)

		snap, err := svc.GetStatistics(user.ID, "yearly", 2025, intPtr(3))
		testutil.AssertNoError(t, err)
		if snap == nil {
			t.Fatal("expected a snapshot")
		}
	})
}

package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "gagyebu/internal/errors"
	"gagyebu/internal/services"
	"gagyebu/internal/statistics"
)

// --- mock statistics service ---

type mockStatisticsService struct {
	getStatisticsFn func(userID uint, kind string, year int, month *int) (*statistics.Snapshot, error)
}

func (m *mockStatisticsService) GetStatistics(userID uint, kind string, year int, month *int) (*statistics.Snapshot, error) {
	if m.getStatisticsFn != nil {
		return m.getStatisticsFn(userID, kind, year, month)
	}
	return &statistics.Snapshot{Insights: []statistics.Insight{}}, nil
}

var _ services.StatisticsServicer = (*mockStatisticsService)(nil)

func setupStatisticsRouter(handler *StatisticsHandler) *gin.Engine {
	r := gin.New()
	r.GET("/statistics", injectUserID(1), handler.GetStatistics)
	return r
}

// --- tests ---

func TestStatisticsHandler_GetStatistics(t *testing.T) {
	t.Run("returns the snapshot", func(t *testing.T) {
		var gotKind string
		var gotMonth *int
		statsSvc := &mockStatisticsService{
			getStatisticsFn: func(_ uint, kind string, year int, month *int) (*statistics.Snapshot, error) {
				gotKind = kind
				gotMonth = month
				return &statistics.Snapshot{
					Overview: statistics.Overview{TotalIncome: 100000, TotalExpense: 25000, NetIncome: 75000},
					Insights: []statistics.Insight{},
				}, nil
			},
		}
		handler := NewStatisticsHandler(statsSvc)
		r := setupStatisticsRouter(handler)

		rec := doRequest(r, "GET", "/statistics?type=monthly&year=2025&month=7", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotKind != "monthly" {
			t.Errorf("expected kind monthly, got %q", gotKind)
		}
		if gotMonth == nil || *gotMonth != 7 {
			t.Errorf("expected month pointer to 7, got %v", gotMonth)
		}

		result := parseJSON(t, rec)
		overview := result["overview"].(map[string]interface{})
		if overview["net_income"].(float64) != 75000 {
			t.Errorf("expected net income 75000, got %v", overview["net_income"])
		}
		if result["insights"] == nil {
			t.Error("expected insights to be present even when empty")
		}
	})

	t.Run("type defaults to monthly", func(t *testing.T) {
		var gotKind string
		statsSvc := &mockStatisticsService{
			getStatisticsFn: func(_ uint, kind string, _ int, _ *int) (*statistics.Snapshot, error) {
				gotKind = kind
				return &statistics.Snapshot{Insights: []statistics.Insight{}}, nil
			},
		}
		handler := NewStatisticsHandler(statsSvc)
		r := setupStatisticsRouter(handler)

		rec := doRequest(r, "GET", "/statistics?year=2025&month=7", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotKind != "monthly" {
			t.Errorf("expected default kind monthly, got %q", gotKind)
		}
	})

	t.Run("omitted month stays nil for yearly requests", func(t *testing.T) {
		var gotMonth *int
		statsSvc := &mockStatisticsService{
			getStatisticsFn: func(_ uint, _ string, _ int, month *int) (*statistics.Snapshot, error) {
				gotMonth = month
				return &statistics.Snapshot{Insights: []statistics.Insight{}}, nil
			},
		}
		handler := NewStatisticsHandler(statsSvc)
		r := setupStatisticsRouter(handler)

		rec := doRequest(r, "GET", "/statistics?type=yearly&year=2025", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotMonth != nil {
			t.Errorf("expected nil month, got %v", *gotMonth)
		}
	})

	t.Run("returns 400 when year is missing", func(t *testing.T) {
		handler := NewStatisticsHandler(&mockStatisticsService{})
		r := setupStatisticsRouter(handler)

		rec := doRequest(r, "GET", "/statistics?type=monthly&month=7", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 for an unknown period type", func(t *testing.T) {
		handler := NewStatisticsHandler(&mockStatisticsService{})
		r := setupStatisticsRouter(handler)

		rec := doRequest(r, "GET", "/statistics?type=weekly&year=2025", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("propagates period validation errors", func(t *testing.T) {
		statsSvc := &mockStatisticsService{
			getStatisticsFn: func(uint, string, int, *int) (*statistics.Snapshot, error) {
				return nil, apperrors.ErrInvalidPeriod
			},
		}
		handler := NewStatisticsHandler(statsSvc)
		r := setupStatisticsRouter(handler)

		rec := doRequest(r, "GET", "/statistics?type=monthly&year=2025", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_PERIOD")
	})
}

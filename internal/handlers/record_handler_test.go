package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "gagyebu/internal/errors"
	"gagyebu/internal/models"
	"gagyebu/internal/pagination"
	"gagyebu/internal/services"
)

// --- mock record service ---

type mockRecordService struct {
	createRecordFn      func(userID uint, in services.RecordInput) (*models.Record, error)
	updateRecordFn      func(userID, recordID uint, upd services.RecordUpdate) (*models.Record, error)
	getRecordByIDFn     func(userID, recordID uint) (*models.Record, error)
	getUserRecordsFn    func(userID uint, page pagination.PageRequest, filter services.RecordFilter) (*pagination.PageResponse[models.Record], error)
	getMonthlyRecordsFn func(userID uint, year, month int) ([]services.RecordView, error)
}

func (m *mockRecordService) CreateRecord(userID uint, in services.RecordInput) (*models.Record, error) {
	if m.createRecordFn != nil {
		return m.createRecordFn(userID, in)
	}
	return &models.Record{}, nil
}

func (m *mockRecordService) UpdateRecord(userID, recordID uint, upd services.RecordUpdate) (*models.Record, error) {
	if m.updateRecordFn != nil {
		return m.updateRecordFn(userID, recordID, upd)
	}
	return &models.Record{}, nil
}

func (m *mockRecordService) GetRecordByID(userID, recordID uint) (*models.Record, error) {
	if m.getRecordByIDFn != nil {
		return m.getRecordByIDFn(userID, recordID)
	}
	return &models.Record{}, nil
}

func (m *mockRecordService) GetUserRecords(userID uint, page pagination.PageRequest, filter services.RecordFilter) (*pagination.PageResponse[models.Record], error) {
	if m.getUserRecordsFn != nil {
		return m.getUserRecordsFn(userID, page, filter)
	}
	resp := pagination.NewPageResponse([]models.Record{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockRecordService) GetMonthlyRecords(userID uint, year, month int) ([]services.RecordView, error) {
	if m.getMonthlyRecordsFn != nil {
		return m.getMonthlyRecordsFn(userID, year, month)
	}
	return []services.RecordView{}, nil
}

var _ services.RecordServicer = (*mockRecordService)(nil)

func setupRecordRouter(handler *RecordHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.POST("/records", handler.CreateRecord)
	auth.GET("/records", handler.GetUserRecords)
	auth.GET("/records/monthly", handler.GetMonthlyRecords)
	auth.GET("/records/:id", handler.GetRecord)
	auth.PUT("/records/:id", handler.UpdateRecord)
	return r
}

// --- tests ---

func TestRecordHandler_CreateRecord(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		recSvc := &mockRecordService{
			createRecordFn: func(userID uint, in services.RecordInput) (*models.Record, error) {
				return &models.Record{
					Base:          models.Base{ID: 1},
					UserID:        userID,
					Amount:        in.Amount,
					Type:          in.Type,
					Date:          in.Date,
					CategoryID:    in.CategoryID,
					EmotionID:     in.EmotionID,
					PaymentMethod: in.PaymentMethod,
				}, nil
			},
		}
		handler := NewRecordHandler(recSvc, &mockAuditService{})
		r := setupRecordRouter(handler)

		rec := doRequest(r, "POST", "/records",
			`{"amount":5000,"type":"expense","date":"2025-07-10T12:00:00Z","category_id":1,"emotion_id":2,"payment_method":"cash"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["amount"].(float64) != 5000 {
			t.Errorf("expected amount 5000, got %v", result["amount"])
		}
	})

	t.Run("passes installment terms through", func(t *testing.T) {
		var got services.RecordInput
		recSvc := &mockRecordService{
			createRecordFn: func(_ uint, in services.RecordInput) (*models.Record, error) {
				got = in
				return &models.Record{}, nil
			},
		}
		handler := NewRecordHandler(recSvc, &mockAuditService{})
		r := setupRecordRouter(handler)

		rec := doRequest(r, "POST", "/records",
			`{"amount":120000,"type":"expense","date":"2025-07-01T00:00:00Z","category_id":1,"emotion_id":2,"payment_method":"credit_card","is_installment":true,"installment_months":12}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if !got.IsInstallment || got.InstallmentMonths != 12 {
			t.Errorf("expected installment terms forwarded, got %+v", got)
		}
	})

	t.Run("returns 400 on invalid type", func(t *testing.T) {
		handler := NewRecordHandler(&mockRecordService{}, &mockAuditService{})
		r := setupRecordRouter(handler)

		rec := doRequest(r, "POST", "/records",
			`{"amount":5000,"type":"transfer","date":"2025-07-10T12:00:00Z","category_id":1,"emotion_id":2,"payment_method":"cash"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on missing amount", func(t *testing.T) {
		handler := NewRecordHandler(&mockRecordService{}, &mockAuditService{})
		r := setupRecordRouter(handler)

		rec := doRequest(r, "POST", "/records",
			`{"type":"expense","date":"2025-07-10T12:00:00Z","category_id":1,"emotion_id":2,"payment_method":"cash"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when the category is unknown", func(t *testing.T) {
		recSvc := &mockRecordService{
			createRecordFn: func(uint, services.RecordInput) (*models.Record, error) {
				return nil, apperrors.ErrCategoryNotFound
			},
		}
		handler := NewRecordHandler(recSvc, &mockAuditService{})
		r := setupRecordRouter(handler)

		rec := doRequest(r, "POST", "/records",
			`{"amount":5000,"type":"expense","date":"2025-07-10T12:00:00Z","category_id":99,"emotion_id":2,"payment_method":"cash"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CATEGORY_NOT_FOUND")
	})
}

func TestRecordHandler_UpdateRecord(t *testing.T) {
	t.Run("returns 200 with the updated record", func(t *testing.T) {
		recSvc := &mockRecordService{
			updateRecordFn: func(_, recordID uint, upd services.RecordUpdate) (*models.Record, error) {
				rec := &models.Record{Base: models.Base{ID: recordID}, Amount: 9999}
				if upd.Amount != nil {
					rec.Amount = *upd.Amount
				}
				return rec, nil
			},
		}
		handler := NewRecordHandler(recSvc, &mockAuditService{})
		r := setupRecordRouter(handler)

		rec := doRequest(r, "PUT", "/records/5", `{"amount":7500}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["amount"].(float64) != 7500 {
			t.Errorf("expected amount 7500, got %v", result["amount"])
		}
	})

	t.Run("returns 400 on non-numeric ID", func(t *testing.T) {
		handler := NewRecordHandler(&mockRecordService{}, &mockAuditService{})
		r := setupRecordRouter(handler)

		rec := doRequest(r, "PUT", "/records/abc", `{"amount":100}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when the record does not exist", func(t *testing.T) {
		recSvc := &mockRecordService{
			updateRecordFn: func(uint, uint, services.RecordUpdate) (*models.Record, error) {
				return nil, apperrors.ErrRecordNotFound
			},
		}
		handler := NewRecordHandler(recSvc, &mockAuditService{})
		r := setupRecordRouter(handler)

		rec := doRequest(r, "PUT", "/records/42", `{"amount":100}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "RECORD_NOT_FOUND")
	})
}

func TestRecordHandler_GetMonthlyRecords(t *testing.T) {
	t.Run("returns the merged month view", func(t *testing.T) {
		monthly := int64(10000)
		recSvc := &mockRecordService{
			getMonthlyRecordsFn: func(_ uint, year, month int) ([]services.RecordView, error) {
				return []services.RecordView{
					{
						ID:     1,
						Amount: 4000,
						Type:   models.RecordTypeExpense,
						Date:   time.Date(year, time.Month(month), 20, 0, 0, 0, 0, time.UTC),
					},
					{
						ID:                  2,
						Amount:              30000,
						Type:                models.RecordTypeExpense,
						Date:                time.Date(year, time.Month(month), 5, 0, 0, 0, 0, time.UTC),
						IsInstallment:       true,
						MonthlyAmount:       &monthly,
						InstallmentProgress: "2/3",
					},
				}, nil
			},
		}
		handler := NewRecordHandler(recSvc, &mockAuditService{})
		r := setupRecordRouter(handler)

		rec := doRequest(r, "GET", "/records/monthly?year=2025&month=7", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		records := result["records"].([]interface{})
		if len(records) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(records))
		}
		due := records[1].(map[string]interface{})
		if due["installment_progress"] != "2/3" {
			t.Errorf("expected progress 2/3, got %v", due["installment_progress"])
		}
	})

	t.Run("returns 400 when year is missing", func(t *testing.T) {
		handler := NewRecordHandler(&mockRecordService{}, &mockAuditService{})
		r := setupRecordRouter(handler)

		rec := doRequest(r, "GET", "/records/monthly?month=7", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on out-of-range month", func(t *testing.T) {
		handler := NewRecordHandler(&mockRecordService{}, &mockAuditService{})
		r := setupRecordRouter(handler)

		rec := doRequest(r, "GET", "/records/monthly?year=2025&month=13", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestRecordHandler_GetUserRecords(t *testing.T) {
	t.Run("forwards filters to the service", func(t *testing.T) {
		var gotFilter services.RecordFilter
		recSvc := &mockRecordService{
			getUserRecordsFn: func(_ uint, page pagination.PageRequest, filter services.RecordFilter) (*pagination.PageResponse[models.Record], error) {
				gotFilter = filter
				resp := pagination.NewPageResponse([]models.Record{}, page.Page, page.PageSize, 0)
				return &resp, nil
			},
		}
		handler := NewRecordHandler(recSvc, &mockAuditService{})
		r := setupRecordRouter(handler)

		rec := doRequest(r, "GET", "/records?page=2&page_size=10&type=expense&from_date=2025-07-01T00:00:00Z", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotFilter.Type == nil || *gotFilter.Type != models.RecordTypeExpense {
			t.Error("expected expense type filter")
		}
		if gotFilter.FromDate == nil {
			t.Error("expected from_date filter")
		}
	})

	t.Run("returns 400 on malformed date filter", func(t *testing.T) {
		handler := NewRecordHandler(&mockRecordService{}, &mockAuditService{})
		r := setupRecordRouter(handler)

		rec := doRequest(r, "GET", "/records?from_date=yesterday", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on unknown type filter", func(t *testing.T) {
		handler := NewRecordHandler(&mockRecordService{}, &mockAuditService{})
		r := setupRecordRouter(handler)

		rec := doRequest(r, "GET", "/records?type=transfer", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestRecordHandler_GetRecord(t *testing.T) {
	t.Run("returns the record", func(t *testing.T) {
		recSvc := &mockRecordService{
			getRecordByIDFn: func(_, recordID uint) (*models.Record, error) {
				return &models.Record{Base: models.Base{ID: recordID}, Amount: 5000}, nil
			},
		}
		handler := NewRecordHandler(recSvc, &mockAuditService{})
		r := setupRecordRouter(handler)

		rec := doRequest(r, "GET", "/records/3", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["id"].(float64) != 3 {
			t.Errorf("expected id 3, got %v", result["id"])
		}
	})

	t.Run("returns 404 for a missing record", func(t *testing.T) {
		recSvc := &mockRecordService{
			getRecordByIDFn: func(uint, uint) (*models.Record, error) {
				return nil, apperrors.ErrRecordNotFound
			},
		}
		handler := NewRecordHandler(recSvc, &mockAuditService{})
		r := setupRecordRouter(handler)

		rec := doRequest(r, "GET", "/records/404", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

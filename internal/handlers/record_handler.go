package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "gagyebu/internal/errors"
	"gagyebu/internal/models"
	"gagyebu/internal/pagination"
	"gagyebu/internal/services"
)

// RecordHandler handles ledger record requests
type RecordHandler struct {
	recordService services.RecordServicer
	auditService  services.AuditServicer
}

// NewRecordHandler creates a new RecordHandler
func NewRecordHandler(recordService services.RecordServicer, auditService services.AuditServicer) *RecordHandler {
	return &RecordHandler{
		recordService: recordService,
		auditService:  auditService,
	}
}

// CreateRecordRequest represents the payload for creating a record
type CreateRecordRequest struct {
	Amount            int64     `json:"amount" binding:"required,gt=0"`
	Type              string    `json:"type" binding:"required,record_type"`
	Date              time.Time `json:"date" binding:"required"`
	CategoryID        uint      `json:"category_id" binding:"required"`
	EmotionID         uint      `json:"emotion_id" binding:"required"`
	PaymentMethod     string    `json:"payment_method" binding:"required,payment_method"`
	IsInstallment     bool      `json:"is_installment"`
	InstallmentMonths int       `json:"installment_months" binding:"omitempty,min=1,max=120"`
	Memo              string    `json:"memo" binding:"max=500"`
}

// UpdateRecordRequest represents the payload for updating a record.
// Omitted fields keep their stored values.
type UpdateRecordRequest struct {
	Amount            *int64     `json:"amount" binding:"omitempty,gt=0"`
	Type              *string    `json:"type" binding:"omitempty,record_type"`
	Date              *time.Time `json:"date"`
	CategoryID        *uint      `json:"category_id"`
	EmotionID         *uint      `json:"emotion_id"`
	PaymentMethod     *string    `json:"payment_method" binding:"omitempty,payment_method"`
	IsInstallment     *bool      `json:"is_installment"`
	InstallmentMonths *int       `json:"installment_months" binding:"omitempty,min=1,max=120"`
	Memo              *string    `json:"memo" binding:"omitempty,max=500"`
}

// CreateRecord handles creating a new record
// @Summary     Create a record
// @Description Create an income or expense record; installment expenses get a payment schedule
// @Tags        records
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateRecordRequest true "Record data"
// @Success     201 {object} models.Record "Record created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category or emotion not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /records [post]
func (h *RecordHandler) CreateRecord(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	record, err := h.recordService.CreateRecord(userID, services.RecordInput{
		Amount:            req.Amount,
		Type:              models.RecordType(req.Type),
		Date:              req.Date,
		CategoryID:        req.CategoryID,
		EmotionID:         req.EmotionID,
		PaymentMethod:     models.PaymentMethod(req.PaymentMethod),
		IsInstallment:     req.IsInstallment,
		InstallmentMonths: req.InstallmentMonths,
		Memo:              req.Memo,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_RECORD", "record", record.ID, c.ClientIP(), map[string]interface{}{
		"amount":         record.Amount,
		"type":           record.Type,
		"is_installment": record.IsInstallment,
	})

	c.JSON(http.StatusCreated, record)
}

// UpdateRecord handles updating an existing record
// @Summary     Update a record
// @Description Update a record; the installment schedule is regenerated from the new terms
// @Tags        records
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                 true "Record ID"
// @Param       request body UpdateRecordRequest true "Fields to update"
// @Success     200 {object} models.Record "Record updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Record not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /records/{id} [put]
func (h *RecordHandler) UpdateRecord(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	recordID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	upd := services.RecordUpdate{
		Amount:            req.Amount,
		Date:              req.Date,
		CategoryID:        req.CategoryID,
		EmotionID:         req.EmotionID,
		IsInstallment:     req.IsInstallment,
		InstallmentMonths: req.InstallmentMonths,
		Memo:              req.Memo,
	}
	if req.Type != nil {
		t := models.RecordType(*req.Type)
		upd.Type = &t
	}
	if req.PaymentMethod != nil {
		pm := models.PaymentMethod(*req.PaymentMethod)
		upd.PaymentMethod = &pm
	}

	record, err := h.recordService.UpdateRecord(userID, recordID, upd)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_RECORD", "record", record.ID, c.ClientIP(), map[string]interface{}{
		"amount":         record.Amount,
		"type":           record.Type,
		"is_installment": record.IsInstallment,
	})

	c.JSON(http.StatusOK, record)
}

// GetRecord handles fetching a single record
// @Summary     Get a record
// @Description Get a record by ID, including its installment schedule
// @Tags        records
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Record ID"
// @Success     200 {object} models.Record "Record details"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Record not found"
// @Router      /records/{id} [get]
func (h *RecordHandler) GetRecord(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	recordID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	record, err := h.recordService.GetRecordByID(userID, recordID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// GetMonthlyRecords handles fetching the merged monthly ledger
// @Summary     Get monthly records
// @Description Get a month's ledger with installment dues merged in at their scheduled dates
// @Tags        records
// @Produce     json
// @Security    BearerAuth
// @Param       year  query int true "Year"
// @Param       month query int true "Month (1-12)"
// @Success     200 {object} map[string]interface{} "Monthly records"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /records/monthly [get]
func (h *RecordHandler) GetMonthlyRecords(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	year, err := parseQueryInt(c, "year")
	if err != nil {
		respondWithError(c, err)
		return
	}

	month, err := parseQueryInt(c, "month")
	if err != nil {
		respondWithError(c, err)
		return
	}
	if month < 1 || month > 12 {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12"))
		return
	}

	views, err := h.recordService.GetMonthlyRecords(userID, year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":    year,
		"month":   month,
		"records": views,
	})
}

// GetUserRecords handles listing records with pagination and filters
// @Summary     List records
// @Description List the user's records with pagination and optional date/type filters
// @Tags        records
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int    false "Page number"
// @Param       page_size query int    false "Page size"
// @Param       from_date query string false "Start date (RFC3339)"
// @Param       to_date   query string false "End date (RFC3339)"
// @Param       type      query string false "Record type (income or expense)"
// @Success     200 {object} pagination.PageResponse[models.Record] "Paginated records"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /records [get]
func (h *RecordHandler) GetUserRecords(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var filter services.RecordFilter
	if raw := c.Query("from_date"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid from_date"))
			return
		}
		filter.FromDate = &from
	}
	if raw := c.Query("to_date"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid to_date"))
			return
		}
		filter.ToDate = &to
	}
	if raw := c.Query("type"); raw != "" {
		t := models.RecordType(raw)
		if t != models.RecordTypeIncome && t != models.RecordTypeExpense {
			respondWithError(c, apperrors.ErrInvalidRecordType)
			return
		}
		filter.Type = &t
	}

	resp, err := h.recordService.GetUserRecords(userID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

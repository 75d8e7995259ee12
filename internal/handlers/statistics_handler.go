package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "gagyebu/internal/errors"
	"gagyebu/internal/services"
)

// StatisticsHandler handles spending statistics requests
type StatisticsHandler struct {
	statisticsService services.StatisticsServicer
}

// NewStatisticsHandler creates a new StatisticsHandler
func NewStatisticsHandler(statisticsService services.StatisticsServicer) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService}
}

// StatisticsQuery represents the query parameters for a statistics request
type StatisticsQuery struct {
	Type  string `form:"type,default=monthly" binding:"omitempty,period_kind"`
	Year  int    `form:"year" binding:"required"`
	Month *int   `form:"month"`
}

// GetStatistics handles fetching a statistics snapshot
// @Summary     Get statistics
// @Description Get a monthly or yearly spending snapshot with category, emotion and payment method breakdowns
// @Tags        statistics
// @Produce     json
// @Security    BearerAuth
// @Param       type  query string false "Period type (monthly or yearly)" default(monthly)
// @Param       year  query int    true  "Year"
// @Param       month query int    false "Month (1-12, required for monthly)"
// @Success     200 {object} statistics.Snapshot "Statistics snapshot"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /statistics [get]
func (h *StatisticsHandler) GetStatistics(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query StatisticsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	snapshot, err := h.statisticsService.GetStatistics(userID, query.Type, query.Year, query.Month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gagyebu/internal/services"
)

// EmotionHandler handles emotion catalog requests
type EmotionHandler struct {
	emotionService services.EmotionServicer
}

// NewEmotionHandler creates a new EmotionHandler
func NewEmotionHandler(emotionService services.EmotionServicer) *EmotionHandler {
	return &EmotionHandler{emotionService: emotionService}
}

// GetEmotions handles listing the emotions visible to the user
// @Summary     List emotions
// @Description List default emotions plus the user's own custom emotions
// @Tags        emotions
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Visible emotions"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /emotions [get]
func (h *EmotionHandler) GetEmotions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	emotions, err := h.emotionService.GetVisibleEmotions(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"emotions": emotions})
}

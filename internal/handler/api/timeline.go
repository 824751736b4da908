package api

import (
	"net/http"
	"strconv"

	resdto "carreserve/internal/handler/dto/response"
	"carreserve/internal/usecase"

	"github.com/gin-gonic/gin"
)

const maxTimelineDays = 31

type TimelineHandler struct {
	timelineUseCase usecase.TimelineUseCase
}

func NewTimelineHandler(timelineUseCase usecase.TimelineUseCase) *TimelineHandler {
	return &TimelineHandler{
		timelineUseCase: timelineUseCase,
	}
}

// @Summary Reservation timeline
// @Description Chart-ready layout of upcoming reservations across the fleet
// @Tags timeline
// @Produce json
// @Security BearerAuth
// @Param days query int false "Number of visible days (default from config)"
// @Success 200 {object} resdto.TimelineResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /timeline [get]
func (h *TimelineHandler) GetTimeline(c *gin.Context) {
	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxTimelineDays {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid days parameter",
			})
			return
		}
		days = parsed
	}

	result, err := h.timelineUseCase.GetTimeline(c.Request.Context(), days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromTimelineResult(result))
}

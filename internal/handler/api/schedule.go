package api

import (
	"errors"
	"net/http"

	reqdto "arcade-booking/internal/handler/dto/request"
	resdto "arcade-booking/internal/handler/dto/response"
	"arcade-booking/internal/pkg/errs"
	"arcade-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	engine *usecase.Engine
}

func NewScheduleHandler(engine *usecase.Engine) *ScheduleHandler {
	return &ScheduleHandler{engine: engine}
}

// Get reports the schedule configuration plus the live open state; IsOpenNow
// runs first so the cached flag in the snapshot is current.
func (h *ScheduleHandler) Get(c *gin.Context) {
	h.engine.IsOpenNow()
	c.JSON(http.StatusOK, resdto.FromShop(h.engine.Schedule()))
}

func (h *ScheduleHandler) OpenState(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.OpenStateResponse{IsOpen: h.engine.IsOpenNow()})
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	var req reqdto.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	window, err := req.ToWindow()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid time, expected HH:MM",
		})
		return
	}

	updated := h.engine.UpdateSchedule(window, req.AutoMode)
	c.JSON(http.StatusOK, resdto.FromShop(updated))
}

func (h *ScheduleHandler) Override(c *gin.Context) {
	var req reqdto.ManualOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.engine.SetManualOverride(*req.Open); err != nil {
		switch {
		case errors.Is(err, errs.ErrAutoScheduleActive):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Automatic schedule is active; disable it before overriding",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromShop(h.engine.Schedule()))
}

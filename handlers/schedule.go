package handlers

import (
	"net/http"

	"conectcliente/services/schedule"
	"conectcliente/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler serves the booked-flights overview.
type ScheduleHandler struct {
	Service schedule.ScheduleService
	Logger  *zap.Logger
}

func NewScheduleHandler(svc schedule.ScheduleService, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{Service: svc, Logger: logger}
}

// Overview returns all bookings grouped by date, sorted by slot within a day.
func (h *ScheduleHandler) Overview(c *gin.Context) {
	grouped, err := h.Service.Overview(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to load schedule overview", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load schedule", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": grouped})
}

// MyBookings returns the authenticated client's bookings.
func (h *ScheduleHandler) MyBookings(c *gin.Context) {
	bookings, err := h.Service.ClientBookings(c.Request.Context(), c.GetString("clientID"))
	if err != nil {
		h.Logger.Error("failed to load client bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

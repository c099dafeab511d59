package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/field-reservation/internal/clock"
)

// ClockHandler reports the service's regional wall time, so clients can
// judge which reservations are past without trusting the device clock.
type ClockHandler struct {
	Clock *clock.Regional
}

func NewClockHandler(c *clock.Regional) *ClockHandler {
	return &ClockHandler{Clock: c}
}

// Time returns the current regional time and date.
func (h *ClockHandler) Time(c echo.Context) error {
	hour, date := h.Clock.Now()
	return c.JSON(http.StatusOK, echo.Map{"time": hour, "date": date})
}

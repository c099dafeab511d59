package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/field-reservation/internal/model"
	"github.com/iliyamo/field-reservation/internal/repository"
	"github.com/iliyamo/field-reservation/internal/service"
)

// ReservationHandler exposes the booking service over HTTP.
type ReservationHandler struct {
	Svc *service.ReservationService
}

func NewReservationHandler(svc *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{Svc: svc}
}

type createReservationReq struct {
	VenueID    string `json:"venue_id"`
	FieldID    string `json:"field_id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	NationalID string `json:"national_id"`
	Contact    string `json:"contact"`
	Name       string `json:"name"`
	VenueName  string `json:"venue_name"`
	FieldLabel string `json:"field_label"`
}

type pruneReq struct {
	IDs []string `json:"ids"`
}

// Create books a slot.  Missing fields map to 400, a taken slot to 409.
func (h *ReservationHandler) Create(c echo.Context) error {
	var req createReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	// The JWT middleware guarantees a subject on this route; its absence
	// means the token contract is broken, not a guest caller.  Bookings
	// with an empty owner subject exist only for direct service callers.
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	owner := strconv.FormatUint(uid, 10)

	id, err := h.Svc.Create(c.Request().Context(), model.Reservation{
		VenueID:    req.VenueID,
		FieldID:    req.FieldID,
		Date:       req.Date,
		Time:       req.Time,
		NationalID: req.NationalID,
		Contact:    req.Contact,
		Name:       req.Name,
		VenueName:  req.VenueName,
		FieldLabel: req.FieldLabel,
	}, owner)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing required fields"})
		case errors.Is(err, repository.ErrSlotTaken):
			return c.JSON(http.StatusConflict, echo.Map{"error": "slot already reserved"})
		default:
			log.Printf("reservation create failed: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create reservation failed"})
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "reservation confirmed", "id": id})
}

// ListBySlot returns the bookings for one field on one date, keyed by the
// venue_id, field_id and date query parameters.
func (h *ReservationHandler) ListBySlot(c echo.Context) error {
	venueID := c.QueryParam("venue_id")
	fieldID := c.QueryParam("field_id")
	date := c.QueryParam("date")

	out, err := h.Svc.ListBySlot(c.Request().Context(), venueID, fieldID, date)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "venue_id, field_id and date are required"})
		}
		log.Printf("reservation list failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list reservations failed"})
	}
	return c.JSON(http.StatusOK, out)
}

// ListByContact returns every booking made under a contact number.
func (h *ReservationHandler) ListByContact(c echo.Context) error {
	contact := c.QueryParam("contact")

	out, err := h.Svc.ListByContact(c.Request().Context(), contact)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "contact is required"})
		}
		log.Printf("reservation list by contact failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list reservations failed"})
	}
	return c.JSON(http.StatusOK, out)
}

// Prune removes the reservations named in the body and reports how many
// rows actually went away.  Callers pass ids they have already judged
// expired against the regional clock.
func (h *ReservationHandler) Prune(c echo.Context) error {
	var req pruneReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	deleted, err := h.Svc.DeletePast(c.Request().Context(), req.IDs)
	if err != nil {
		if errors.Is(err, service.ErrNoIDs) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "ids is required"})
		}
		log.Printf("reservation prune failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "prune failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": deleted})
}

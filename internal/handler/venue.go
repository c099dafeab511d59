package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/field-reservation/internal/repository"
)

// VenueHandler serves the venue catalog.
type VenueHandler struct {
	Venues *repository.VenueRepo
}

func NewVenueHandler(v *repository.VenueRepo) *VenueHandler {
	return &VenueHandler{Venues: v}
}

// List returns every venue without its field detail.  The route sits
// behind the response cache since the catalog changes rarely.
func (h *VenueHandler) List(c echo.Context) error {
	out, err := h.Venues.ListAll(c.Request().Context())
	if err != nil {
		log.Printf("venue list failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list venues failed"})
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns one venue with its fields.  Venue ids are opaque strings.
func (h *VenueHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "venue id is required"})
	}

	v, err := h.Venues.GetWithFields(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		log.Printf("venue fetch failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fetch venue failed"})
	}
	return c.JSON(http.StatusOK, v)
}

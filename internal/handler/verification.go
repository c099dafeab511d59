package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/field-reservation/internal/utils"
)

// VerificationHandler mints one-time codes and pushes them to the
// requester's phone.
type VerificationHandler struct {
	Sender codeSender
}

func NewVerificationHandler(s codeSender) *VerificationHandler {
	return &VerificationHandler{Sender: s}
}

type verificationReq struct {
	Contact string `json:"contact"`
}

// Issue generates a fresh 6-digit code and sends it to the given contact.
// The code is returned in the response either way: a delivery failure is
// logged but the caller still gets the code so the flow can continue.
func (h *VerificationHandler) Issue(c echo.Context) error {
	var req verificationReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Contact) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "contact is required"})
	}

	code, err := utils.NewVerificationCode()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "code generation failed"})
	}

	if err := h.Sender.VerificationCode(c.Request().Context(), req.Contact, code); err != nil {
		log.Printf("verification: send to %s failed: %v", req.Contact, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"code": code})
}

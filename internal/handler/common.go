package handler

import (
	"context"
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"
)

// codeSender is the slice of the notifier used by handlers that push
// one-time codes, satisfied by notifier.WhatsApp.
type codeSender interface {
	VerificationCode(ctx context.Context, to, code string) error
}

// getUserID extracts the authenticated principal's id from the context,
// where the JWT middleware stored the token's subject claim.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int64:
		return uint64(t), nil
	case float64: // JSON numbers decode as float64
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

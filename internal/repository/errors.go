// Package repository defines error types that are reused across multiple
// repositories.  These sentinel values allow higher layers such as the
// reservation service and handlers to distinguish between different
// failure scenarios, e.g. translating ErrSlotTaken into an HTTP 409
// response while any other store error becomes a 500.
package repository

import "errors"

// ErrSlotTaken is returned when an insert collides with an existing
// reservation for the same (venue, field, date, time) slot.  Handlers
// should translate this into an HTTP 409 response.
var ErrSlotTaken = errors.New("slot already reserved")

// ErrEmptySlotKey is returned when a slot lookup is attempted with one or
// more empty key components.  The composite key is only meaningful when
// all of its parts are present.
var ErrEmptySlotKey = errors.New("empty slot key component")

// ErrEmailExists is returned when registering a user with an email that is
// already taken.
var ErrEmailExists = errors.New("email already exists")

// ErrVenueNotFound is returned when a venue lookup matches no row.
var ErrVenueNotFound = errors.New("venue not found")

// ErrResetInvalid is returned when a password reset code does not match,
// has expired or was already consumed.
var ErrResetInvalid = errors.New("invalid or expired reset code")

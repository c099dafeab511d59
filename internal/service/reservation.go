// Package service contains the reservation orchestrator.  It owns input
// validation, slot conflict handling and the post-commit notification
// hand-off; persistence and messaging are injected so tests can substitute
// fakes.
package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/field-reservation/internal/model"
	"github.com/iliyamo/field-reservation/internal/queue"
	"github.com/iliyamo/field-reservation/internal/repository"
)

// ErrMissingFields is returned when a booking or lookup request omits a
// required field.  Handlers translate this into an HTTP 400 response.
var ErrMissingFields = errors.New("missing required fields")

// ErrNoIDs is returned when a prune request carries no reservation ids.
var ErrNoIDs = errors.New("no reservation ids provided")

// ReservationStore is the persistence surface the service depends on,
// satisfied by repository.ReservationRepo.
type ReservationStore interface {
	SlotExists(ctx context.Context, venueID, fieldID, date, timeKey string) (bool, error)
	Create(ctx context.Context, res *model.Reservation) error
	ListBySlot(ctx context.Context, venueID, fieldID, date string) ([]model.Reservation, error)
	ListByContact(ctx context.Context, contact string) ([]model.Reservation, error)
	DeleteByIDs(ctx context.Context, ids []string) (int64, error)
}

// ConfirmationPublisher hands confirmed bookings to the notification
// pipeline, satisfied by queue.Publisher.
type ConfirmationPublisher interface {
	PublishReservationConfirmed(ctx context.Context, event queue.ReservationConfirmedEvent) error
}

// ReservationService coordinates slot booking.  The slot uniqueness
// invariant itself lives in the store (unique index over the composite
// slot key); the service's job is to validate input, map the duplicate-key
// outcome to repository.ErrSlotTaken and fire the confirmation event after
// the insert has committed.
type ReservationService struct {
	store     ReservationStore
	publisher ConfirmationPublisher
}

// NewReservationService wires the service to its store and publisher.
func NewReservationService(store ReservationStore, publisher ConfirmationPublisher) *ReservationService {
	if store == nil || publisher == nil {
		panic("nil dependency passed to NewReservationService")
	}
	return &ReservationService{store: store, publisher: publisher}
}

// Create books a slot.  The input's ID and OwnerSubject are assigned here:
// the id is a fresh UUID chosen before the insert so the stored record is
// self-describing from its first write, and the owner subject comes from
// the authenticated principal (empty for guest bookings).
//
// Validation and the fast conflict pre-check run before any write.  The
// pre-check gives the common "slot taken" case a cheap answer, but it is
// advisory only: two concurrent calls can both pass it, and the unique
// index decides the winner when the loser's insert returns ErrSlotTaken.
//
// The confirmation event is published on a detached goroutine after the
// insert commits.  Publish failures are logged inside the publisher and
// never influence the returned result.
func (s *ReservationService) Create(ctx context.Context, res model.Reservation, ownerSubject string) (string, error) {
	res.OwnerSubject = ownerSubject
	if !res.Complete() {
		return "", ErrMissingFields
	}

	taken, err := s.store.SlotExists(ctx, res.VenueID, res.FieldID, res.Date, res.Time)
	if err != nil {
		return "", err
	}
	if taken {
		return "", repository.ErrSlotTaken
	}

	res.ID = uuid.New().String()
	if err := s.store.Create(ctx, &res); err != nil {
		return "", err
	}

	log.Printf("reservation created | id=%s | venue=%s | field=%s | slot=%s %s",
		res.ID, res.VenueID, res.FieldID, res.Date, res.Time)

	go func(ev queue.ReservationConfirmedEvent) {
		_ = s.publisher.PublishReservationConfirmed(context.WithoutCancel(ctx), ev)
	}(queue.ReservationConfirmedEvent{
		ReservationID: res.ID,
		VenueID:       res.VenueID,
		FieldID:       res.FieldID,
		Date:          res.Date,
		Time:          res.Time,
		Contact:       res.Contact,
		Name:          res.Name,
		VenueName:     res.VenueName,
		ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
	})

	return res.ID, nil
}

// ListBySlot returns the reservations for one field of a venue on a date.
// A slot with no bookings yields an empty slice, not an error.
func (s *ReservationService) ListBySlot(ctx context.Context, venueID, fieldID, date string) ([]model.Reservation, error) {
	if venueID == "" || fieldID == "" || date == "" {
		return nil, ErrMissingFields
	}
	return s.store.ListBySlot(ctx, venueID, fieldID, date)
}

// ListByContact returns every reservation made under a contact number.
// Any authenticated caller may query any number.
func (s *ReservationService) ListByContact(ctx context.Context, contact string) ([]model.Reservation, error) {
	if contact == "" {
		return nil, ErrMissingFields
	}
	return s.store.ListByContact(ctx, contact)
}

// DeletePast removes the reservations named by ids and returns how many
// were actually deleted.  The caller decides which reservations are in
// the past (using the regional clock); this method has no notion of now.
// Ids that match nothing are skipped silently, so the returned count can
// be lower than len(ids).
func (s *ReservationService) DeletePast(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrNoIDs
	}
	return s.store.DeleteByIDs(ctx, ids)
}

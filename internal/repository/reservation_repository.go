package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/field-reservation/internal/model"
)

// ReservationRepo provides CRUD operations for reservations.  A
// reservation claims exactly one slot, and the table carries a unique
// index over (venue_id, field_id, slot_date, slot_time) so that claiming
// a slot is a single conditional write: the insert either lands or fails
// with a duplicate-key error.  There is no separate lock or transaction
// around check-then-insert; the index is the arbiter under concurrency.
//
// Expected schema:
//
//	CREATE TABLE reservations (
//	    id            VARCHAR(36)  NOT NULL PRIMARY KEY,
//	    venue_id      VARCHAR(64)  NOT NULL,
//	    field_id      VARCHAR(64)  NOT NULL,
//	    slot_date     VARCHAR(10)  NOT NULL,
//	    slot_time     VARCHAR(32)  NOT NULL,
//	    national_id   VARCHAR(32)  NOT NULL,
//	    contact       VARCHAR(32)  NOT NULL,
//	    name          VARCHAR(128) NOT NULL,
//	    owner_subject VARCHAR(64)  NOT NULL DEFAULT '',
//	    venue_name    VARCHAR(128) NOT NULL,
//	    field_label   VARCHAR(128) NOT NULL,
//	    created_at    DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
//	    UNIQUE KEY uq_slot (venue_id, field_id, slot_date, slot_time)
//	);
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

const reservationColumns = `id, venue_id, field_id, slot_date, slot_time,
	national_id, contact, name, owner_subject, venue_name, field_label`

// SlotExists reports whether a reservation already occupies the exact
// (venue, field, date, time) slot.  All four key components must be
// non-empty; otherwise ErrEmptySlotKey is returned without querying.
// Partial matches (same date and time on a different field, for example)
// do not count.
func (r *ReservationRepo) SlotExists(ctx context.Context, venueID, fieldID, date, timeKey string) (bool, error) {
	if venueID == "" || fieldID == "" || date == "" || timeKey == "" {
		return false, ErrEmptySlotKey
	}
	const q = `SELECT 1 FROM reservations
	           WHERE venue_id=? AND field_id=? AND slot_date=? AND slot_time=? LIMIT 1`
	var one int
	err := r.db.QueryRowContext(ctx, q, venueID, fieldID, date, timeKey).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create inserts a reservation with its client-chosen id.  The caller is
// responsible for filling every required field (see model.Reservation).
// When the slot is already claimed, the unique index rejects the insert
// and ErrSlotTaken is returned.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) error {
	const q = `INSERT INTO reservations (` + reservationColumns + `)
	           VALUES (?,?,?,?,?,?,?,?,?,?,?)`
	_, err := r.db.ExecContext(ctx, q,
		res.ID, res.VenueID, res.FieldID, res.Date, res.Time,
		res.NationalID, res.Contact, res.Name, res.OwnerSubject,
		res.VenueName, res.FieldLabel)
	if err != nil {
		// MySQL error 1062 = duplicate entry on uq_slot
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrSlotTaken
		}
		return err
	}
	return nil
}

// ListBySlot returns every reservation for a venue's field on one date,
// ordered by slot time.  An empty slice (not an error) is returned when
// nothing is booked.
func (r *ReservationRepo) ListBySlot(ctx context.Context, venueID, fieldID, date string) ([]model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations
	           WHERE venue_id=? AND field_id=? AND slot_date=?
	           ORDER BY slot_time`
	return r.list(ctx, q, venueID, fieldID, date)
}

// ListByContact returns every reservation whose contact number matches,
// newest date first.
func (r *ReservationRepo) ListByContact(ctx context.Context, contact string) ([]model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations
	           WHERE contact=?
	           ORDER BY slot_date DESC, slot_time`
	return r.list(ctx, q, contact)
}

// DeleteByIDs removes every reservation whose id is in the given set and
// returns the number of rows actually deleted.  Ids that match nothing
// simply do not contribute to the count; they are not an error.  Passing
// an empty set is a no-op.
func (r *ReservationRepo) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	placeholders := make([]string, 0, len(ids))
	args := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		placeholders = append(placeholders, "?")
		args = append(args, id)
	}
	q := `DELETE FROM reservations WHERE id IN (` + strings.Join(placeholders, ",") + `)`
	result, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *ReservationRepo) list(ctx context.Context, query string, args ...interface{}) ([]model.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Reservation, 0)
	for rows.Next() {
		var res model.Reservation
		if err := rows.Scan(
			&res.ID, &res.VenueID, &res.FieldID, &res.Date, &res.Time,
			&res.NationalID, &res.Contact, &res.Name, &res.OwnerSubject,
			&res.VenueName, &res.FieldLabel,
		); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

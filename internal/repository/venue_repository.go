package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/field-reservation/internal/model"
)

// VenueRepo reads the venue catalog.  Venues and their fields are managed
// out of band (there is no write path here); the service only needs to
// list them and resolve one venue with its fields for the booking UI.
type VenueRepo struct{ DB *sql.DB }

func NewVenueRepo(db *sql.DB) *VenueRepo { return &VenueRepo{DB: db} }

// ListAll returns every venue without its fields, ordered by name.
func (r *VenueRepo) ListAll(ctx context.Context) ([]model.Venue, error) {
	const q = `SELECT id, name, address, phone FROM venues ORDER BY name`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Venue, 0)
	for rows.Next() {
		var v model.Venue
		var address, phone sql.NullString
		if err := rows.Scan(&v.ID, &v.Name, &address, &phone); err != nil {
			return nil, err
		}
		v.Address = address.String
		v.Phone = phone.String
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetWithFields returns one venue together with all of its fields.  It
// returns ErrVenueNotFound when the id matches no venue.
func (r *VenueRepo) GetWithFields(ctx context.Context, id string) (*model.Venue, error) {
	const q = `SELECT id, name, address, phone FROM venues WHERE id=? LIMIT 1`
	var v model.Venue
	var address, phone sql.NullString
	err := r.DB.QueryRowContext(ctx, q, id).Scan(&v.ID, &v.Name, &address, &phone)
	if err == sql.ErrNoRows {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, err
	}
	v.Address = address.String
	v.Phone = phone.String

	const fq = `SELECT id, venue_id, label, surface FROM fields WHERE venue_id=? ORDER BY label`
	rows, err := r.DB.QueryContext(ctx, fq, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	v.Fields = make([]model.Field, 0)
	for rows.Next() {
		var f model.Field
		var surface sql.NullString
		if err := rows.Scan(&f.ID, &f.VenueID, &f.Label, &surface); err != nil {
			return nil, err
		}
		f.Surface = surface.String
		v.Fields = append(v.Fields, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &v, nil
}

package model

// Reservation records a booking of one field within a venue for a single
// slot.  The slot is identified by the composite key (VenueID, FieldID,
// Date, Time); a unique index over those four columns guarantees that no
// two reservations ever share a slot.
//
// Fields:
//
//	ID           – client-chosen UUID, written with the record at insert
//	               time so the stored document is self-describing.
//	VenueID      – identifier of the venue being booked.
//	FieldID      – identifier of the field within the venue.
//	Date         – calendar date of the slot, "YYYY-MM-DD", expressed in
//	               the regional time zone.
//	Time         – slot key within the date.  Treated as an opaque string
//	               and compared only for equality, never parsed.
//	NationalID   – national id document of the person booking.
//	Contact      – phone number the confirmation is sent to.
//	Name         – display name of the person booking.
//	OwnerSubject – subject of the authenticated principal, empty for
//	               guest bookings made on someone's behalf.
//	VenueName    – display-only copy of the venue name.
//	FieldLabel   – display-only copy of the field label.
type Reservation struct {
	ID           string `json:"id"`
	VenueID      string `json:"venue_id"`
	FieldID      string `json:"field_id"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	NationalID   string `json:"national_id"`
	Contact      string `json:"contact"`
	Name         string `json:"name"`
	OwnerSubject string `json:"owner_subject,omitempty"`
	VenueName    string `json:"venue_name"`
	FieldLabel   string `json:"field_label"`
}

// Complete reports whether every required booking field is present.  The
// owner subject is the only optional field; everything else must be
// non-empty before the store is touched.
func (r *Reservation) Complete() bool {
	return r.VenueID != "" && r.FieldID != "" && r.Date != "" && r.Time != "" &&
		r.NationalID != "" && r.Contact != "" && r.Name != "" &&
		r.VenueName != "" && r.FieldLabel != ""
}

package model

// Venue is a bookable complex containing one or more fields.  Venue and
// field identifiers are opaque strings; the booking core never interprets
// them beyond equality.
type Venue struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address,omitempty"`
	Phone   string  `json:"phone,omitempty"`
	Fields  []Field `json:"fields,omitempty"`
}

// Field is a single bookable surface inside a venue, e.g. "Cancha 2".
type Field struct {
	ID      string `json:"id"`
	VenueID string `json:"venue_id"`
	Label   string `json:"label"`
	Surface string `json:"surface,omitempty"`
}

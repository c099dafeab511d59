// Package queue defines message payloads exchanged over the message broker
// and the background consumer that turns them into WhatsApp sends.
package queue

// ReservationConfirmedEvent is published after a reservation commits.  It
// carries everything the notification consumer needs, so the consumer
// never reads the primary database.  Delivery of the resulting message is
// best effort; the booking that produced the event is already final.
type ReservationConfirmedEvent struct {
	ReservationID string `json:"reservation_id"`
	VenueID       string `json:"venue_id"`
	FieldID       string `json:"field_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Contact       string `json:"contact"`
	Name          string `json:"name"`
	VenueName     string `json:"venue_name"`
	ConfirmedAt   string `json:"confirmed_at"`
}

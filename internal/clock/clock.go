// Package clock resolves the current time in the single regional time zone
// used for all bookings.  Reservation dates and the expiry decisions made
// by clients are expressed in this zone regardless of where the server
// happens to run, so this package is the only source of "now" in the
// service.
package clock

import "time"

// Regional reports the current wall clock in a fixed time zone.
type Regional struct {
	loc *time.Location
	now func() time.Time // replaced in tests
}

// New loads the named IANA time zone (e.g. "America/Guayaquil") and
// returns a Regional clock for it.  Loading fails only when the zone name
// is unknown to the host's tz database.
func New(zone string) (*Regional, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, err
	}
	return &Regional{loc: loc, now: time.Now}, nil
}

// Now returns the current time of day ("HH:mm:ss") and date ("YYYY-MM-DD")
// in the regional zone.  The host's local zone never leaks into the
// output.
func (c *Regional) Now() (timeOfDay, date string) {
	t := c.now().In(c.loc)
	return t.Format("15:04:05"), t.Format("2006-01-02")
}

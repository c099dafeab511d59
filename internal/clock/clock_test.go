package clock

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnknownZone(t *testing.T) {
	_, err := New("Mars/Olympus_Mons")
	require.Error(t, err)
}

func TestNowFormats(t *testing.T) {
	c, err := New("America/Guayaquil")
	require.NoError(t, err)

	timeOfDay, date := c.Now()
	assert.Regexp(t, regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`), timeOfDay)
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), date)
}

// The regional output must not depend on the host zone.  Pin the
// underlying instant and compare against the known UTC-5 offset of
// America/Guayaquil (no DST).
func TestNowIndependentOfHostZone(t *testing.T) {
	c, err := New("America/Guayaquil")
	require.NoError(t, err)

	// 2024-03-01 23:30:00 UTC is 18:30:00 on the same day in Guayaquil.
	instant := time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)

	for _, zone := range []string{"UTC", "Asia/Tokyo", "Europe/Berlin"} {
		loc, err := time.LoadLocation(zone)
		require.NoError(t, err)
		c.now = func() time.Time { return instant.In(loc) }

		timeOfDay, date := c.Now()
		assert.Equal(t, "18:30:00", timeOfDay, "host zone %s", zone)
		assert.Equal(t, "2024-03-01", date, "host zone %s", zone)
	}
}

// A late-evening instant in Guayaquil falls on the next calendar day in
// UTC; the date must follow the regional zone, not UTC.
func TestNowDateRollsWithRegionalZone(t *testing.T) {
	c, err := New("America/Guayaquil")
	require.NoError(t, err)

	c.now = func() time.Time { return time.Date(2024, 3, 2, 2, 0, 0, 0, time.UTC) }
	_, date := c.Now()
	assert.Equal(t, "2024-03-01", date)
}

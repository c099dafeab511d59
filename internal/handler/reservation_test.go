package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/field-reservation/internal/model"
	"github.com/iliyamo/field-reservation/internal/queue"
	"github.com/iliyamo/field-reservation/internal/service"
)

// stubStore backs the handler tests with a single-slot in-memory store.
type stubStore struct {
	taken   map[string]bool
	created []model.Reservation
}

func newStubStore() *stubStore { return &stubStore{taken: map[string]bool{}} }

func key(venueID, fieldID, date, timeKey string) string {
	return venueID + "|" + fieldID + "|" + date + "|" + timeKey
}

func (s *stubStore) SlotExists(ctx context.Context, venueID, fieldID, date, timeKey string) (bool, error) {
	return s.taken[key(venueID, fieldID, date, timeKey)], nil
}

func (s *stubStore) Create(ctx context.Context, res *model.Reservation) error {
	s.taken[key(res.VenueID, res.FieldID, res.Date, res.Time)] = true
	s.created = append(s.created, *res)
	return nil
}

func (s *stubStore) ListBySlot(ctx context.Context, venueID, fieldID, date string) ([]model.Reservation, error) {
	out := make([]model.Reservation, 0)
	for _, r := range s.created {
		if r.VenueID == venueID && r.FieldID == fieldID && r.Date == date {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubStore) ListByContact(ctx context.Context, contact string) ([]model.Reservation, error) {
	return []model.Reservation{}, nil
}

func (s *stubStore) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	return int64(len(ids)), nil
}

type stubPublisher struct{}

func (stubPublisher) PublishReservationConfirmed(ctx context.Context, ev queue.ReservationConfirmedEvent) error {
	return nil
}

func doCreate(t *testing.T, h *ReservationHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/reservations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "7")
	require.NoError(t, h.Create(c))
	return rec
}

const fullBooking = `{
	"venue_id": "V1", "field_id": "F1",
	"date": "2024-03-01", "time": "18:00",
	"national_id": "0912345678", "contact": "+593999999999",
	"name": "Ana Lopez", "venue_name": "Complejo Norte", "field_label": "Cancha 1"
}`

func TestCreateReturnsCreated(t *testing.T) {
	store := newStubStore()
	h := NewReservationHandler(service.NewReservationService(store, stubPublisher{}))

	rec := doCreate(t, h, fullBooking)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id"`)
	require.Len(t, store.created, 1)
	assert.Equal(t, "7", store.created[0].OwnerSubject)
}

func TestCreateWithoutSubjectReturnsUnauthorized(t *testing.T) {
	store := newStubStore()
	h := NewReservationHandler(service.NewReservationService(store, stubPublisher{}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/reservations", strings.NewReader(fullBooking))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Create(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, store.created)
}

func TestCreateMissingFieldReturnsBadRequest(t *testing.T) {
	h := NewReservationHandler(service.NewReservationService(newStubStore(), stubPublisher{}))

	rec := doCreate(t, h, `{"venue_id": "V1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateTakenSlotReturnsConflict(t *testing.T) {
	store := newStubStore()
	h := NewReservationHandler(service.NewReservationService(store, stubPublisher{}))

	first := doCreate(t, h, fullBooking)
	require.Equal(t, http.StatusCreated, first.Code)

	second := doCreate(t, h, fullBooking)
	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Len(t, store.created, 1)
}

func TestListBySlotRequiresKey(t *testing.T) {
	h := NewReservationHandler(service.NewReservationService(newStubStore(), stubPublisher{}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/reservations?venue_id=V1&date=2024-03-01", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.ListBySlot(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPruneReportsDeletedCount(t *testing.T) {
	h := NewReservationHandler(service.NewReservationService(newStubStore(), stubPublisher{}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/reservations/prune", strings.NewReader(`{"ids":["a","b"]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Prune(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"deleted":2`)
}

package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendTemplateDisabled(t *testing.T) {
	w := NewWhatsApp("", "")
	err := w.ReservationConfirmed(context.Background(), "+593999999999", "Ana")
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestVerificationCodePayload(t *testing.T) {
	var got templateMessage
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		rw.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w := NewWhatsApp(srv.URL, "secret-token")
	err := w.VerificationCode(context.Background(), "+593999999999", "042187")
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-token", auth)
	assert.Equal(t, "whatsapp", got.MessagingProduct)
	assert.Equal(t, "individual", got.RecipientType)
	assert.Equal(t, "+593999999999", got.To)
	assert.Equal(t, "template", got.Type)
	assert.Equal(t, "codigo", got.Template.Name)
	assert.Equal(t, "es", got.Template.Language.Code)
	require.Len(t, got.Template.Components, 2)
	assert.Equal(t, "body", got.Template.Components[0].Type)
	assert.Equal(t, "042187", got.Template.Components[0].Parameters[0].Text)
	assert.Equal(t, "button", got.Template.Components[1].Type)
	assert.Equal(t, "url", got.Template.Components[1].SubType)
	assert.Equal(t, "042187", got.Template.Components[1].Parameters[0].Text)
}

func TestReservationConfirmedPayload(t *testing.T) {
	var got templateMessage
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		rw.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w := NewWhatsApp(srv.URL, "tok")
	err := w.ReservationConfirmed(context.Background(), "+593988888888", "Carlos")
	require.NoError(t, err)

	assert.Equal(t, "reserva_confirmacion", got.Template.Name)
	require.Len(t, got.Template.Components, 1)
	assert.Equal(t, "Carlos", got.Template.Components[0].Parameters[0].Text)
}

func TestSendTemplateProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		http.Error(rw, `{"error":"template not found"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	w := NewWhatsApp(srv.URL, "tok")
	err := w.ReservationConfirmed(context.Background(), "+593", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

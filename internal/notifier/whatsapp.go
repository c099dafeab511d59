// Package notifier sends templated WhatsApp messages through the Cloud
// API.  Delivery is strictly best effort: one attempt per invocation, no
// retry and no receipt tracking.  Callers log failures and move on; a
// failed send must never roll back or fail the operation that triggered
// it.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// ErrDisabled is returned when the notifier has no endpoint or token
// configured.  The service treats this the same as any other send
// failure: log and continue.
var ErrDisabled = errors.New("whatsapp notifier disabled")

// WhatsApp posts template messages to the Cloud API messages endpoint.
type WhatsApp struct {
	url    string
	key    string
	lang   string
	client *http.Client
}

// NewWhatsApp builds a notifier for the given endpoint and bearer token.
// When either is empty the notifier is disabled and every send returns
// ErrDisabled; this keeps local development working without credentials.
func NewWhatsApp(url, key string) *WhatsApp {
	if url == "" || key == "" {
		log.Printf("notifier: whatsapp credentials missing, sends disabled")
	}
	return &WhatsApp{
		url:    url,
		key:    key,
		lang:   "es",
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type templateParam struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type templateComponent struct {
	Type       string          `json:"type"`
	SubType    string          `json:"sub_type,omitempty"`
	Index      string          `json:"index,omitempty"`
	Parameters []templateParam `json:"parameters"`
}

type templateMessage struct {
	MessagingProduct string `json:"messaging_product"`
	RecipientType    string `json:"recipient_type"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Template         struct {
		Name     string `json:"name"`
		Language struct {
			Code string `json:"code"`
		} `json:"language"`
		Components []templateComponent `json:"components"`
	} `json:"template"`
}

// SendTemplate performs a single outbound call delivering the named
// template to the recipient with the given components.  Non-2xx responses
// are reported as errors with the provider's body included for debugging.
func (w *WhatsApp) SendTemplate(ctx context.Context, name, to string, components []templateComponent) error {
	if w.url == "" || w.key == "" {
		return ErrDisabled
	}
	msg := templateMessage{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "template",
	}
	msg.Template.Name = name
	msg.Template.Language.Code = w.lang
	msg.Template.Components = components

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+w.key)

	resp, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("whatsapp: template %q to %s: status %d: %s", name, to, resp.StatusCode, detail)
	}
	return nil
}

// VerificationCode delivers a one-time code using the "codigo" template.
// The code appears both in the message body and in the copy-code button.
func (w *WhatsApp) VerificationCode(ctx context.Context, to, code string) error {
	return w.SendTemplate(ctx, "codigo", to, []templateComponent{
		{Type: "body", Parameters: []templateParam{{Type: "text", Text: code}}},
		{Type: "button", SubType: "url", Index: "0", Parameters: []templateParam{{Type: "text", Text: code}}},
	})
}

// ReservationConfirmed delivers a booking confirmation addressed to the
// person by name, using the "reserva_confirmacion" template.
func (w *WhatsApp) ReservationConfirmed(ctx context.Context, to, name string) error {
	return w.SendTemplate(ctx, "reserva_confirmacion", to, []templateComponent{
		{Type: "body", Parameters: []templateParam{{Type: "text", Text: name}}},
	})
}

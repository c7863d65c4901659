package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"samarlodge/internal/config"
	"samarlodge/internal/mailer"
	"samarlodge/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	sent   []mailer.Message
	failAt int
	err    error
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Send(msg mailer.Message) error {
	f.sent = append(f.sent, msg)
	if f.failAt != 0 && len(f.sent) == f.failAt {
		return f.err
	}
	return nil
}

func mailConfig() config.MailConfig {
	return config.MailConfig{
		Host:     "smtp.gmail.com",
		Port:     587,
		User:     "lodge@example.com",
		Pass:     "secret",
		Receiver: "frontdesk@example.com",
	}
}

func newHandler(cfg config.MailConfig, fake *fakeProvider) *ReservationHandler {
	return NewReservationHandler(service.NewReservationService(cfg, fake, nil))
}

const validBody = `{"name":"Anil Shah","email":"anil@example.com","phone":"9841000000",` +
	`"checkIn":"2025-03-01","checkOut":"2025-03-05","adults":2,"children":1,` +
	`"roomType":"Family Suite","rooms":1,"specialRequests":"late checkout"}`

func doRequest(t *testing.T, h *ReservationHandler, method, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, "/api/reserve", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.CreateReservation(rec, req)
	return rec
}

func decodeStatus(t *testing.T, rec *httptest.ResponseRecorder) StatusResponse {
	t.Helper()
	var resp StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func assertCORS(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
}

func TestReserveValidRequest(t *testing.T) {
	fake := &fakeProvider{}
	rec := doRequest(t, newHandler(mailConfig(), fake), http.MethodPost, validBody)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeStatus(t, rec).Success)
	assertCORS(t, rec)

	require.Len(t, fake.sent, 2)
	assert.Equal(t, "frontdesk@example.com", fake.sent[0].To)
	assert.Equal(t, "anil@example.com", fake.sent[1].To)
}

func TestReserveInvalidGuestEmailStillSucceeds(t *testing.T) {
	fake := &fakeProvider{}
	body := strings.Replace(validBody, "anil@example.com", "not-an-email", 1)
	rec := doRequest(t, newHandler(mailConfig(), fake), http.MethodPost, body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeStatus(t, rec).Success)
	require.Len(t, fake.sent, 1, "only the hotel email goes out")
	assert.Equal(t, "frontdesk@example.com", fake.sent[0].To)
}

func TestReserveEmailNotConfigured(t *testing.T) {
	fake := &fakeProvider{}
	cfg := mailConfig()
	cfg.User = ""
	rec := doRequest(t, newHandler(cfg, fake), http.MethodPost, validBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeStatus(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "Email not configured", resp.Error)
	assert.Empty(t, fake.sent)
	assertCORS(t, rec)
}

func TestReserveMethodNotAllowed(t *testing.T) {
	fake := &fakeProvider{}
	rec := doRequest(t, newHandler(mailConfig(), fake), http.MethodGet, "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	resp := decodeStatus(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "Method not allowed", resp.Error)
	assert.Empty(t, fake.sent)
	assertCORS(t, rec)
}

func TestReserveOptionsPreflight(t *testing.T) {
	fake := &fakeProvider{}
	rec := doRequest(t, newHandler(mailConfig(), fake), http.MethodOptions, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	assertCORS(t, rec)
}

func TestReserveSendFailure(t *testing.T) {
	fake := &fakeProvider{failAt: 1, err: errors.New("535 authentication failed")}
	rec := doRequest(t, newHandler(mailConfig(), fake), http.MethodPost, validBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeStatus(t, rec)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "535 authentication failed")
	assert.Len(t, fake.sent, 1, "guest email never attempted after hotel failure")
	assertCORS(t, rec)
}

func TestReserveAcceptsStringEncodedBody(t *testing.T) {
	fake := &fakeProvider{}
	encoded, err := json.Marshal(validBody)
	require.NoError(t, err)
	rec := doRequest(t, newHandler(mailConfig(), fake), http.MethodPost, string(encoded))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeStatus(t, rec).Success)
	require.Len(t, fake.sent, 2)
}

func TestReserveMalformedBody(t *testing.T) {
	fake := &fakeProvider{}
	rec := doRequest(t, newHandler(mailConfig(), fake), http.MethodPost, "{not json")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeStatus(t, rec)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
	assert.Empty(t, fake.sent)
	assertCORS(t, rec)
}

func TestReserveIgnoresUnknownFields(t *testing.T) {
	fake := &fakeProvider{}
	body := strings.TrimSuffix(validBody, "}") + `,"admin":true,"static":"x"}`
	rec := doRequest(t, newHandler(mailConfig(), fake), http.MethodPost, body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeStatus(t, rec).Success)
	require.Len(t, fake.sent, 2)
	assert.NotContains(t, fake.sent[0].HTML, "admin")
}

func TestReserveEmptyBodyStillNotifiesHotel(t *testing.T) {
	fake := &fakeProvider{}
	rec := doRequest(t, newHandler(mailConfig(), fake), http.MethodPost, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeStatus(t, rec).Success)
	require.Len(t, fake.sent, 1)
	assert.Contains(t, fake.sent[0].HTML, "–")
}

func TestSiteHandlers(t *testing.T) {
	h := NewSiteHandler()

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.ListRooms(rec, httptest.NewRequest(http.MethodGet, "/api/rooms", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	var rooms []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rooms))
	assert.Len(t, rooms, 6)
	assert.Equal(t, "Standard Room", rooms[0]["name"])
}

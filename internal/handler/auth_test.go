package handler

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/field-reservation/internal/config"
	"github.com/iliyamo/field-reservation/internal/model"
	"github.com/iliyamo/field-reservation/internal/repository"
	"github.com/iliyamo/field-reservation/internal/utils"
)

// fakeUserStore keeps users in memory and hashes passwords exactly like
// the real repository does.
type fakeUserStore struct {
	users  map[uint64]model.User
	nextID uint64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[uint64]model.User{}, nextID: 1}
}

func (f *fakeUserStore) Create(ctx context.Context, u *model.User, password string, cost int) (uint64, error) {
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	for _, existing := range f.users {
		if existing.Email == strings.ToLower(strings.TrimSpace(u.Email)) {
			return 0, repository.ErrEmailExists
		}
	}
	id := f.nextID
	f.nextID++
	stored := *u
	stored.ID = id
	stored.Email = strings.ToLower(strings.TrimSpace(u.Email))
	stored.PasswordHash = hash
	f.users[id] = stored
	return id, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, sql.ErrNoRows
}

func (f *fakeUserStore) GetByID(ctx context.Context, id uint64) (model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return model.User{}, sql.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserStore) SetPassword(ctx context.Context, id uint64, password string, cost int) error {
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return err
	}
	u := f.users[id]
	u.PasswordHash = hash
	f.users[id] = u
	return nil
}

type resetEntry struct {
	hash string
	exp  time.Time
}

// fakeResetStore mirrors the real repository's consume semantics: a row
// matching user and hash is removed before the expiry check, so a code
// can never be presented twice, while a hash mismatch leaves the pending
// row untouched.
type fakeResetStore struct {
	entries map[uint64]resetEntry
}

func newFakeResetStore() *fakeResetStore {
	return &fakeResetStore{entries: map[uint64]resetEntry{}}
}

func (f *fakeResetStore) Store(ctx context.Context, userID uint64, codeHash string, exp time.Time) error {
	f.entries[userID] = resetEntry{hash: codeHash, exp: exp}
	return nil
}

func (f *fakeResetStore) Consume(ctx context.Context, userID uint64, codeHash string) error {
	e, ok := f.entries[userID]
	if !ok || e.hash != codeHash {
		return repository.ErrResetInvalid
	}
	delete(f.entries, userID)
	if time.Now().UTC().After(e.exp) {
		return repository.ErrResetInvalid
	}
	return nil
}

// fakeCodeSender hands delivered codes to a channel so tests can wait for
// the detached send goroutine.
type fakeCodeSender struct {
	codes chan string
}

func newFakeCodeSender() *fakeCodeSender {
	return &fakeCodeSender{codes: make(chan string, 4)}
}

func (f *fakeCodeSender) VerificationCode(ctx context.Context, to, code string) error {
	f.codes <- code
	return nil
}

func waitCode(t *testing.T, sender *fakeCodeSender) string {
	t.Helper()
	select {
	case code := <-sender.codes:
		return code
	case <-time.After(time.Second):
		t.Fatal("no reset code was sent")
		return ""
	}
}

func newAuthFixture(t *testing.T) (*AuthHandler, *fakeUserStore, *fakeResetStore, *fakeCodeSender) {
	t.Helper()
	users := newFakeUserStore()
	resets := newFakeResetStore()
	sender := newFakeCodeSender()
	cfg := config.Config{JWTSecret: "test-secret", AccessTTLMin: 60, BcryptCost: 4}
	h := NewAuthHandler(cfg, users, resets, sender)

	hash, err := utils.HashPassword("old-password", 4)
	require.NoError(t, err)
	users.users[1] = model.User{
		ID: 1, Name: "Ana Lopez", Email: "ana@example.com",
		Phone: "+593999999999", PasswordHash: hash,
	}
	users.nextID = 2
	return h, users, resets, sender
}

func postJSON(t *testing.T, h echo.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func TestPasswordResetFlow(t *testing.T) {
	h, users, resets, sender := newAuthFixture(t)

	rec := postJSON(t, h.RequestPasswordReset, "/v1/auth/password-reset", `{"email":"ana@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	code := waitCode(t, sender)
	require.Regexp(t, `^[0-9]{6}$`, code)

	// Only the hash is at rest; the raw code never touches the store.
	entry := resets.entries[1]
	assert.Equal(t, utils.HashResetCode(code), entry.hash)
	assert.NotEqual(t, code, entry.hash)
	assert.WithinDuration(t, time.Now().UTC().Add(15*time.Minute), entry.exp, time.Minute)

	rec = postJSON(t, h.ConfirmPasswordReset, "/v1/auth/password-reset/confirm",
		`{"email":"ana@example.com","code":"`+code+`","new_password":"brand-new"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.True(t, utils.VerifyPassword(users.users[1].PasswordHash, "brand-new"))
	assert.False(t, utils.VerifyPassword(users.users[1].PasswordHash, "old-password"))
}

func TestPasswordResetCodeSingleUse(t *testing.T) {
	h, users, _, sender := newAuthFixture(t)

	postJSON(t, h.RequestPasswordReset, "/v1/auth/password-reset", `{"email":"ana@example.com"}`)
	code := waitCode(t, sender)

	confirm := `{"email":"ana@example.com","code":"` + code + `","new_password":"first"}`
	rec := postJSON(t, h.ConfirmPasswordReset, "/v1/auth/password-reset/confirm", confirm)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postJSON(t, h.ConfirmPasswordReset, "/v1/auth/password-reset/confirm",
		`{"email":"ana@example.com","code":"`+code+`","new_password":"second"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.True(t, utils.VerifyPassword(users.users[1].PasswordHash, "first"),
		"the replayed code must not change the password again")
}

func TestPasswordResetExpiredCode(t *testing.T) {
	h, users, resets, _ := newAuthFixture(t)

	resets.entries[1] = resetEntry{
		hash: utils.HashResetCode("123456"),
		exp:  time.Now().UTC().Add(-time.Minute),
	}

	rec := postJSON(t, h.ConfirmPasswordReset, "/v1/auth/password-reset/confirm",
		`{"email":"ana@example.com","code":"123456","new_password":"too-late"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.True(t, utils.VerifyPassword(users.users[1].PasswordHash, "old-password"))
	assert.NotContains(t, resets.entries, uint64(1), "an expired code is still consumed")
}

func TestPasswordResetWrongCode(t *testing.T) {
	h, _, _, sender := newAuthFixture(t)

	postJSON(t, h.RequestPasswordReset, "/v1/auth/password-reset", `{"email":"ana@example.com"}`)
	code := waitCode(t, sender)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	rec := postJSON(t, h.ConfirmPasswordReset, "/v1/auth/password-reset/confirm",
		`{"email":"ana@example.com","code":"`+wrong+`","new_password":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// A mismatch does not burn the pending code; the real one still works.
	rec = postJSON(t, h.ConfirmPasswordReset, "/v1/auth/password-reset/confirm",
		`{"email":"ana@example.com","code":"`+code+`","new_password":"still-good"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPasswordResetUnknownEmail(t *testing.T) {
	h, _, _, _ := newAuthFixture(t)

	rec := postJSON(t, h.RequestPasswordReset, "/v1/auth/password-reset", `{"email":"nobody@example.com"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

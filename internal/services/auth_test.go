package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mercadito/internal/logging"
	"mercadito/internal/models"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

var dbSeq int

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	dbSeq++
	dsn := fmt.Sprintf("file:authsvc%d?mode=memory&cache=shared", dbSeq)
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE kv (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newAuth(t *testing.T, db *sql.DB) *AuthService {
	t.Helper()
	svc := NewAuthService(db, testLogger())
	svc.Restore(context.Background())
	return svc
}

func storedValue(t *testing.T, db *sql.DB, key string) string {
	t.Helper()
	var v string
	err := db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return ""
	}
	require.NoError(t, err)
	return v
}

// ---- tests ----

func TestRegister_EstablishesSessionWithEmptyPhoto(t *testing.T) {
	db := setupDB(t)
	svc := newAuth(t, db)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "ana@example.com", "secret", "Ana"))

	user, ok := svc.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "Ana", user.Name)
	assert.Nil(t, user.Photo)
	assert.NotEmpty(t, user.ID)
}

func TestRegister_DuplicateEmail_LeavesExistingAccountUnchanged(t *testing.T) {
	db := setupDB(t)
	svc := newAuth(t, db)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "ana@example.com", "secret", "Ana"))
	before := storedValue(t, db, "auth:accounts")

	err := svc.Register(ctx, "ana@example.com", "other", "Impostor")
	require.ErrorIs(t, err, ErrDuplicateAccount)

	assert.Equal(t, before, storedValue(t, db, "auth:accounts"))

	require.NoError(t, svc.Login(ctx, "ana@example.com", "secret"), "original password must still work")
}

func TestRegister_OverwritesPriorSession(t *testing.T) {
	db := setupDB(t)
	svc := newAuth(t, db)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "first@example.com", "pw1", "First"))
	require.NoError(t, svc.Register(ctx, "second@example.com", "pw2", "Second"))

	user, ok := svc.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "second@example.com", user.Email)
}

func TestLogin_Succeeds_WithExactCredentials(t *testing.T) {
	db := setupDB(t)
	svc := newAuth(t, db)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "ana@example.com", "secret", "Ana"))
	svc.Logout(ctx)

	require.NoError(t, svc.Login(ctx, "ana@example.com", "secret"))

	user, ok := svc.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "Ana", user.Name)
}

func TestLogin_UnknownEmail(t *testing.T) {
	db := setupDB(t)
	svc := newAuth(t, db)

	err := svc.Login(context.Background(), "nobody@example.com", "pw")
	require.ErrorIs(t, err, ErrAccountNotFound)
}

func TestLogin_WrongPassword_LeavesPriorSessionUnchanged(t *testing.T) {
	db := setupDB(t)
	svc := newAuth(t, db)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "ana@example.com", "secret", "Ana"))

	err := svc.Login(ctx, "ana@example.com", "SECRET")
	require.ErrorIs(t, err, ErrInvalidCredentials, "comparison is case-sensitive")

	user, ok := svc.CurrentUser()
	require.True(t, ok, "prior session must survive a failed login")
	assert.Equal(t, "ana@example.com", user.Email)
}

func TestLogout_ClearsSession_AndIsIdempotent(t *testing.T) {
	db := setupDB(t)
	svc := newAuth(t, db)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "ana@example.com", "secret", "Ana"))
	svc.Logout(ctx)

	_, ok := svc.CurrentUser()
	assert.False(t, ok)
	assert.Empty(t, storedValue(t, db, "auth:session"))

	svc.Logout(ctx) // no session: still fine
}

func TestUpdateProfile_PersistsAcrossLogoutAndLogin(t *testing.T) {
	db := setupDB(t)
	svc := newAuth(t, db)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "ana@example.com", "secret", "Ana"))

	name := "Ana María"
	photo := "file:///photos/ana.jpg"
	svc.UpdateProfile(ctx, models.ProfileUpdate{Name: &name, Photo: &photo})

	user, ok := svc.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "Ana María", user.Name)
	require.NotNil(t, user.Photo)
	assert.Equal(t, photo, *user.Photo)

	svc.Logout(ctx)
	require.NoError(t, svc.Login(ctx, "ana@example.com", "secret"))

	user, ok = svc.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "Ana María", user.Name, "update must be written back into the account")
}

func TestUpdateProfile_WithoutSession_IsNoOp(t *testing.T) {
	db := setupDB(t)
	svc := newAuth(t, db)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "ana@example.com", "secret", "Ana"))
	svc.Logout(ctx)

	accountsBefore := storedValue(t, db, "auth:accounts")
	sessionBefore := storedValue(t, db, "auth:session")

	name := "X"
	svc.UpdateProfile(ctx, models.ProfileUpdate{Name: &name})

	assert.Equal(t, accountsBefore, storedValue(t, db, "auth:accounts"), "no account record may change")
	assert.Equal(t, sessionBefore, storedValue(t, db, "auth:session"), "no storage write may occur")
}

func TestRestore_LoadsPersistedSession(t *testing.T) {
	db := setupDB(t)
	svc := newAuth(t, db)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "ana@example.com", "secret", "Ana"))

	// Fresh service over the same database simulates an app restart.
	restarted := NewAuthService(db, testLogger())
	require.True(t, restarted.Loading())
	restarted.Restore(ctx)

	assert.False(t, restarted.Loading())
	user, ok := restarted.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "ana@example.com", user.Email)
}

func TestRestore_NoStoredSession(t *testing.T) {
	db := setupDB(t)
	svc := NewAuthService(db, testLogger())

	svc.Restore(context.Background())

	assert.False(t, svc.Loading())
	_, ok := svc.CurrentUser()
	assert.False(t, ok)
}

func TestRestore_CorruptSession_IsTreatedAsAbsent(t *testing.T) {
	db := setupDB(t)
	_, err := db.Exec(`INSERT INTO kv (key, value) VALUES ('auth:session', 'not json')`)
	require.NoError(t, err)

	svc := NewAuthService(db, testLogger())
	svc.Restore(context.Background())

	assert.False(t, svc.Loading())
	_, ok := svc.CurrentUser()
	assert.False(t, ok)
}

func TestRestore_RunsOnlyOnce(t *testing.T) {
	db := setupDB(t)
	svc := newAuth(t, db)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "ana@example.com", "secret", "Ana"))

	// A second Restore must not re-read storage or clobber the session.
	svc.Restore(ctx)
	user, ok := svc.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "ana@example.com", user.Email)
}

func TestRegisterAndLogin_StorageFailure_DegradesToGenericError(t *testing.T) {
	db := setupDB(t)
	svc := newAuth(t, db)
	require.NoError(t, db.Close())

	err := svc.Register(context.Background(), "ana@example.com", "secret", "Ana")
	require.ErrorIs(t, err, ErrStorageUnavailable)

	err = svc.Login(context.Background(), "ana@example.com", "secret")
	require.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestSessionRecord_IsStoredAsJSONUserSnapshot(t *testing.T) {
	db := setupDB(t)
	svc := newAuth(t, db)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "ana@example.com", "secret", "Ana"))

	var stored models.User
	require.NoError(t, json.Unmarshal([]byte(storedValue(t, db, "auth:session")), &stored))

	user, _ := svc.CurrentUser()
	assert.Equal(t, user, stored)
}

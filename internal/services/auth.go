// Package services contains the two application stores: AuthService (the
// credential/session store) and CatalogService (the listing catalog).
// This file implements AuthService: registration, login, logout, profile
// updates, and session restore from the on-device key-value store.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"mercadito/internal/dbx"
	"mercadito/internal/logging"
	"mercadito/internal/models"
	"mercadito/internal/repositories/kv"
)

// Logical keys in the durable key-value store. The session is kept under
// its own key so Restore only reads one record, not the whole directory.
const (
	sessionKey  = "auth:session"
	accountsKey = "auth:accounts"
)

// AuthService owns the registered-account directory and the single active
// session. At most one session exists per process; registering or logging
// in replaces it, logging out clears it.
//
// Storage failures never escape raw: Register and Login degrade to
// ErrStorageUnavailable, Restore/Logout/UpdateProfile log and no-op.
// Mutating operations are serialized by an internal mutex.
type AuthService struct {
	db  *sql.DB
	log logging.Logger

	mu       sync.Mutex
	session  *models.User
	loading  bool
	restored bool
}

// NewAuthService constructs an AuthService over the given database.
// The service starts in the loading state until Restore has run.
func NewAuthService(db *sql.DB, log logging.Logger) *AuthService {
	return &AuthService{db: db, log: log, loading: true}
}

func (s *AuthService) repo(db dbx.DBTX) kv.Repository {
	return kv.NewSQLiteRepository(db)
}

// Restore loads the persisted session, if any. It runs at most once per
// process; read and parse failures are swallowed and treated as "no
// session". The loading flag is cleared on every exit path.
func (s *AuthService) Restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.restored {
		return
	}
	s.restored = true
	defer func() { s.loading = false }()

	raw, err := s.repo(s.db).Get(ctx, sessionKey)
	if err != nil {
		s.log.Error(ctx, "error loading session", "error", err)
		return
	}
	if raw == "" {
		return
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.log.Error(ctx, "error parsing stored session", "error", err)
		return
	}
	s.session = &user
}

// Register creates an account for email and establishes it as the new
// session, overwriting any prior one. Returns ErrDuplicateAccount when the
// email is already registered. The account directory and the session record
// are written in a single transaction.
func (s *AuthService) Register(ctx context.Context, email, password, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir, err := s.loadAccounts(ctx)
	if err != nil {
		s.log.Error(ctx, "error registering", "error", err)
		return ErrStorageUnavailable
	}

	if _, exists := dir[email]; exists {
		return ErrDuplicateAccount
	}

	user := models.User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  name,
		Photo: nil,
	}
	dir[email] = models.Account{Password: password, User: user}

	if err := s.persist(ctx, dir, &user); err != nil {
		s.log.Error(ctx, "error registering", "error", err)
		return ErrStorageUnavailable
	}

	s.session = &user
	s.log.Info(ctx, "account registered", "email", email)
	return nil
}

// Login verifies the credentials against the account directory and, on
// success, establishes and persists the session. The password comparison
// is exact and case-sensitive. A failed login leaves any prior session
// unchanged.
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir, err := s.loadAccounts(ctx)
	if err != nil {
		s.log.Error(ctx, "error logging in", "error", err)
		return ErrStorageUnavailable
	}

	account, exists := dir[email]
	if !exists {
		return ErrAccountNotFound
	}
	if account.Password != password {
		return ErrInvalidCredentials
	}

	user := account.User
	if err := s.persistSession(ctx, s.repo(s.db), &user); err != nil {
		s.log.Error(ctx, "error logging in", "error", err)
		return ErrStorageUnavailable
	}

	s.session = &user
	s.log.Info(ctx, "logged in", "email", email)
	return nil
}

// Logout removes the persisted session and clears it in memory. Calling
// it with no active session is not an error; a storage failure is logged
// and leaves state as it was.
func (s *AuthService) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo(s.db).Delete(ctx, sessionKey); err != nil {
		s.log.Error(ctx, "error logging out", "error", err)
		return
	}
	s.session = nil
}

// UpdateProfile merges the partial update into the active session, writes
// it back into the owning account, and persists both records in a single
// transaction so future logins see the change. Without an active session
// it is a no-op, as is any storage failure (logged, memory untouched).
func (s *AuthService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return
	}

	merged := *s.session
	if update.Name != nil {
		merged.Name = *update.Name
	}
	if update.Photo != nil {
		merged.Photo = update.Photo
	}

	dir, err := s.loadAccounts(ctx)
	if err != nil {
		s.log.Error(ctx, "error updating profile", "error", err)
		return
	}

	if account, exists := dir[merged.Email]; exists {
		account.User = merged
		dir[merged.Email] = account
	}

	if err := s.persist(ctx, dir, &merged); err != nil {
		s.log.Error(ctx, "error updating profile", "error", err)
		return
	}

	s.session = &merged
}

// CurrentUser returns a snapshot of the active session's profile.
func (s *AuthService) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return models.User{}, false
	}
	return *s.session, true
}

// IsAuthenticated reports whether a session is active.
func (s *AuthService) IsAuthenticated() bool {
	_, ok := s.CurrentUser()
	return ok
}

// Loading reports whether the initial session restore is still pending.
func (s *AuthService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// loadAccounts reads and decodes the account directory. A missing key
// yields an empty directory.
func (s *AuthService) loadAccounts(ctx context.Context) (models.AccountDirectory, error) {
	raw, err := s.repo(s.db).Get(ctx, accountsKey)
	if err != nil {
		return nil, err
	}

	dir := models.AccountDirectory{}
	if raw == "" {
		return dir, nil
	}
	if err := json.Unmarshal([]byte(raw), &dir); err != nil {
		return nil, err
	}
	return dir, nil
}

// persist writes the account directory and the session record as one
// transaction, so a crash cannot leave the two keys out of step.
func (s *AuthService) persist(ctx context.Context, dir models.AccountDirectory, user *models.User) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		encoded, err := json.Marshal(dir)
		if err != nil {
			return err
		}
		if err := repo.Set(ctx, accountsKey, string(encoded)); err != nil {
			return err
		}
		return s.persistSession(ctx, repo, user)
	})
}

func (s *AuthService) persistSession(ctx context.Context, repo kv.Repository, user *models.User) error {
	encoded, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return repo.Set(ctx, sessionKey, string(encoded))
}

// Package models defines the domain records shared by the credential and
// catalog stores: user profiles, the registered-account directory, and
// product listings. Persisted types carry JSON tags; writing a record to
// the key-value store and reading it back must reproduce it structurally.
package models

// User is the profile snapshot held by the active session and embedded
// in each registered account.
type User struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  string  `json:"name"`
	Photo *string `json:"photo"`
}

// Account is one entry of the registered-account directory. The password
// is stored as entered; see the project design notes on credential storage.
type Account struct {
	Password string `json:"password"`
	User     User   `json:"user"`
}

// AccountDirectory maps email (the only account identifier) to its account.
type AccountDirectory map[string]Account

// ProfileUpdate carries a partial profile change. Nil fields are left
// untouched by the merge.
type ProfileUpdate struct {
	Name  *string
	Photo *string
}

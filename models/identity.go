package models

import "time"

// Identity is the person record a session registers or authenticates.
//
// ID is zero until the datastore assigns it on a successful registration and
// never changes afterwards. Telephone is the login handle and is stored in
// E.164 form.
type Identity struct {
	// ID is the datastore-generated identifier. Zero means "not yet persisted".
	ID int64 `json:"id,omitempty"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Telephone is the unique login handle.
	Telephone string `json:"telephone"`

	// Secret is the clear-text secret typed by the user. It only lives in
	// memory for the duration of a submit and is never serialised.
	Secret Secret `json:"-"`

	// SecretHash is the encoded argon2id digest as stored by the datastore.
	// It is populated by the persistence layer only.
	SecretHash string `json:"-"`

	// CreatedAt is set by the datastore on insert.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the Identity model.
func (i Identity) TableName() string {
	return "identities"
}

// HasID reports whether the datastore has assigned an identifier.
func (i Identity) HasID() bool {
	return i.ID != 0
}

// Public returns a copy of i stripped of the secret and its hash.
func (i Identity) Public() Identity {
	i.Secret = ""
	i.SecretHash = ""
	return i
}

// Credentials is what a login attempt carries.
type Credentials struct {
	Telephone string `json:"telephone"`
	Secret    Secret `json:"-"`
}

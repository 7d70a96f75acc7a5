package store

import (
	"context"

	"github.com/MKhiriev/go-sign-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Connector owns the shared datastore pool.
//
// Connect establishes the pool on first use and re-validates it afterwards;
// it is safe to call from several goroutines. A failure is always a
// *[ConnectionError]. Close releases the pool and is called once at shutdown.
type Connector interface {
	Connect(ctx context.Context) (*DB, error)
	Close() error
}

// IdentityRepository persists and looks up identities.
type IdentityRepository interface {
	// CreateIdentity inserts identity (with SecretHash already set) and
	// returns it with the datastore-generated ID.
	// A duplicate telephone yields [ErrTelephoneAlreadyExists].
	CreateIdentity(ctx context.Context, identity models.Identity) (models.Identity, error)

	// FindIdentityByTelephone returns the identity registered under
	// telephone, including its SecretHash, or [ErrIdentityNotFound].
	FindIdentityByTelephone(ctx context.Context, telephone string) (models.Identity, error)
}

// ErrorClassificator interprets driver errors for one dialect.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}

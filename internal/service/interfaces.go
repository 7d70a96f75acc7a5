package service

import (
	"context"

	"github.com/MKhiriev/go-sign-desk/internal/store"
	"github.com/MKhiriev/go-sign-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CredentialService registers and authenticates identities.
//
// The service holds no session state: every call borrows the shared datastore
// handle it is given and may run concurrently with other calls on the same
// handle. Every error is an *[OperationError].
type CredentialService interface {
	// Register validates fields, hashes the secret and persists a new
	// identity. It returns the datastore-generated identifier.
	//
	// Errors: KindInvalid on bad input, KindConflict when the telephone is
	// taken, KindUnavailable on datastore trouble, KindNoConnection when
	// handle is nil. Register is not idempotent and must not be retried.
	Register(ctx context.Context, fields models.Identity, handle *store.DB) (int64, error)

	// Authenticate looks up the identity by telephone and verifies secret.
	// The returned identity carries neither the secret nor its hash.
	//
	// Errors: KindNotFound for an unknown telephone or a wrong secret,
	// KindUnavailable on datastore trouble, KindNoConnection when handle is nil.
	Authenticate(ctx context.Context, telephone string, secret models.Secret, handle *store.DB) (models.Identity, error)
}

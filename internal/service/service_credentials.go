package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sign-desk/internal/crypto"
	"github.com/MKhiriev/go-sign-desk/internal/logger"
	"github.com/MKhiriev/go-sign-desk/internal/store"
	"github.com/MKhiriev/go-sign-desk/internal/validators"
	"github.com/MKhiriev/go-sign-desk/models"
)

// errCredentialsMismatch is the single cause reported for both an unknown
// telephone and a wrong secret.
var errCredentialsMismatch = errors.New("telephone or secret does not match")

// RepositoryFactory binds an [store.IdentityRepository] to a borrowed handle.
type RepositoryFactory func(handle *store.DB) store.IdentityRepository

// credentialService is the concrete implementation of CredentialService.
type credentialService struct {
	// validator checks registration and login input.
	validator validators.Validator

	// hasher derives and verifies argon2id digests.
	hasher crypto.SecretHasher

	// repositories creates a repository on top of the handle each call borrows.
	repositories RepositoryFactory

	// region is the default region for telephones without a country code.
	region string
}

// NewCredentialService wires a [CredentialService]. A nil factory falls back
// to [store.NewIdentityRepository].
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewCredentialService(
	validator validators.Validator,
	hasher crypto.SecretHasher,
	repositories RepositoryFactory,
	region string,
) CredentialService {
	if repositories == nil {
		repositories = store.NewIdentityRepository
	}
	return &credentialService{
		validator:    validator,
		hasher:       hasher,
		repositories: repositories,
		region:       region,
	}
}

// Register validates fields, normalises the telephone to E.164, hashes the
// secret and inserts the identity.
func (s *credentialService) Register(ctx context.Context, fields models.Identity, handle *store.DB) (int64, error) {
	log := logger.FromContext(ctx)

	if handle == nil {
		log.Warn().Str("func", "*credentialService.Register").Msg("register called without a datastore handle")
		return 0, ErrNoConnection
	}

	if err := s.validator.Validate(ctx, fields); err != nil {
		log.Debug().Err(err).Str("func", "*credentialService.Register").Msg("registration input rejected")
		return 0, newOperationError(KindInvalid, err)
	}

	telephone, err := validators.NormalizeTelephone(fields.Telephone, s.region)
	if err != nil {
		return 0, newOperationError(KindInvalid, err)
	}

	hash, err := s.hasher.Hash(fields.Secret.Reveal())
	if err != nil {
		log.Err(err).Str("func", "*credentialService.Register").Msg("error hashing secret")
		return 0, newOperationError(KindUnavailable, fmt.Errorf("hash secret: %w", err))
	}

	identity := models.Identity{
		FirstName:  fields.FirstName,
		LastName:   fields.LastName,
		Telephone:  telephone,
		SecretHash: hash,
	}

	created, err := s.repositories(handle).CreateIdentity(ctx, identity)
	if err != nil {
		log.Err(err).Str("func", "*credentialService.Register").Msg("identity creation ended with error")
		return 0, mapStoreError(err)
	}

	log.Info().
		Str("func", "*credentialService.Register").
		Int64("identity_id", created.ID).
		Msg("identity registered")

	return created.ID, nil
}

// Authenticate verifies secret against the identity registered under
// telephone.
//
// When the telephone is unknown a dummy digest is still verified so that the
// unknown-telephone and wrong-secret paths take the same time and return the
// same error.
func (s *credentialService) Authenticate(ctx context.Context, telephone string, secret models.Secret, handle *store.DB) (models.Identity, error) {
	log := logger.FromContext(ctx)

	if handle == nil {
		log.Warn().Str("func", "*credentialService.Authenticate").Msg("authenticate called without a datastore handle")
		return models.Identity{}, ErrNoConnection
	}

	creds := models.Credentials{Telephone: telephone, Secret: secret}
	if err := s.validator.Validate(ctx, creds); err != nil {
		log.Debug().Err(err).Str("func", "*credentialService.Authenticate").Msg("login input rejected")
		return models.Identity{}, newOperationError(KindInvalid, err)
	}

	normalized, err := validators.NormalizeTelephone(telephone, s.region)
	if err != nil {
		return models.Identity{}, newOperationError(KindInvalid, err)
	}

	found, err := s.repositories(handle).FindIdentityByTelephone(ctx, normalized)
	switch {
	case errors.Is(err, store.ErrIdentityNotFound):
		_, _ = s.hasher.Verify(secret.Reveal(), s.hasher.Dummy())
		log.Debug().Str("func", "*credentialService.Authenticate").Msg("credentials mismatch")
		return models.Identity{}, newOperationError(KindNotFound, errCredentialsMismatch)
	case err != nil:
		log.Err(err).Str("func", "*credentialService.Authenticate").Msg("identity lookup failed")
		return models.Identity{}, mapStoreError(err)
	}

	ok, err := s.hasher.Verify(secret.Reveal(), found.SecretHash)
	if err != nil {
		log.Err(err).
			Str("func", "*credentialService.Authenticate").
			Int64("identity_id", found.ID).
			Msg("stored secret hash is unreadable")
		return models.Identity{}, newOperationError(KindUnavailable, err)
	}
	if !ok {
		log.Debug().Str("func", "*credentialService.Authenticate").Msg("credentials mismatch")
		return models.Identity{}, newOperationError(KindNotFound, errCredentialsMismatch)
	}

	log.Info().
		Str("func", "*credentialService.Authenticate").
		Int64("identity_id", found.ID).
		Msg("identity authenticated")

	return found.Public(), nil
}

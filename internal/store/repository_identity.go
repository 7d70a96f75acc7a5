package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sign-desk/internal/logger"
	"github.com/MKhiriev/go-sign-desk/models"
)

var identityColumns = []string{"id", "first_name", "last_name", "telephone", "secret_hash", "created_at"}

// identityRepository is the database/sql implementation of
// [IdentityRepository] for both dialects. Queries are rendered with squirrel
// using the placeholder format of the handle's dialect.
//
// All methods obtain a context-scoped logger via [logger.FromContext].
type identityRepository struct {
	db *DB
}

// NewIdentityRepository constructs an [IdentityRepository] on top of the
// shared handle. It is cheap and holds no state besides the handle.
func NewIdentityRepository(db *DB) IdentityRepository {
	return &identityRepository{db: db}
}

// CreateIdentity inserts identity and returns it with the generated ID.
//
// Error handling:
//   - unique violation on telephone → [ErrTelephoneAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *identityRepository) CreateIdentity(ctx context.Context, identity models.Identity) (models.Identity, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(identity.TableName()).
		Columns("first_name", "last_name", "telephone", "secret_hash").
		Values(identity.FirstName, identity.LastName, identity.Telephone, identity.SecretHash).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*identityRepository.CreateIdentity").Msg("error building query")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&identity.ID); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			log.Debug().Str("func", "*identityRepository.CreateIdentity").Msg("telephone already registered")
			return models.Identity{}, ErrTelephoneAlreadyExists
		}
		log.Err(err).Str("func", "*identityRepository.CreateIdentity").Msg("error inserting identity")
		return models.Identity{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	log.Debug().
		Str("func", "*identityRepository.CreateIdentity").
		Int64("identity_id", identity.ID).
		Msg("identity created")

	return identity, nil
}

// FindIdentityByTelephone retrieves the identity registered under telephone.
//
// Error handling:
//   - no matching row → [ErrIdentityNotFound].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *identityRepository) FindIdentityByTelephone(ctx context.Context, telephone string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(identityColumns...).
		From(models.Identity{}.TableName()).
		Where(sq.Eq{"telephone": telephone}).
		Limit(1).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*identityRepository.FindIdentityByTelephone").Msg("error building query")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Identity
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&found.ID,
		&found.FirstName,
		&found.LastName,
		&found.Telephone,
		&found.SecretHash,
		&found.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Identity{}, ErrIdentityNotFound
		}
		log.Err(err).Str("func", "*identityRepository.FindIdentityByTelephone").Msg("error selecting identity")
		return models.Identity{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-sign-desk/internal/store"
)

func TestOperationError_MatchesByKind(t *testing.T) {
	err := fmt.Errorf("register: %w", newOperationError(KindConflict, store.ErrTelephoneAlreadyExists))

	assert.ErrorIs(t, err, ErrConflict)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, store.ErrTelephoneAlreadyExists)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, "conflict: telephone already exists", errors.Unwrap(err).Error())
}

func TestKindOf_Foreign(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestMapStoreError(t *testing.T) {
	assert.NoError(t, mapStoreError(nil))
	assert.Equal(t, KindConflict, KindOf(mapStoreError(store.ErrTelephoneAlreadyExists)))
	assert.Equal(t, KindNotFound, KindOf(mapStoreError(store.ErrIdentityNotFound)))
	assert.Equal(t, KindUnavailable, KindOf(mapStoreError(errors.New("driver: bad connection"))))
}

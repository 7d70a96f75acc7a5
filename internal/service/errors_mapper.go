// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-sign-desk/internal/store"
)

// mapStoreError translates a repository error into an
// [OperationError]. Anything the store does not name explicitly means the
// datastore could not serve the request.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, store.ErrTelephoneAlreadyExists):
		return newOperationError(KindConflict, err)
	case errors.Is(err, store.ErrIdentityNotFound):
		return newOperationError(KindNotFound, err)
	}

	return newOperationError(KindUnavailable, err)
}

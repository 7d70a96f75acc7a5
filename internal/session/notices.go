package session

import (
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/MKhiriev/go-sign-desk/internal/app"
	"github.com/MKhiriev/go-sign-desk/internal/service"
	"github.com/MKhiriev/go-sign-desk/internal/store"
)

// describe turns a credential operation error into the text of an error
// notice. Field-level validation failures are listed after the message.
func describe(err error, fallback string) string {
	switch service.KindOf(err) {
	case service.KindConflict:
		return app.MsgTelephoneAlreadyExists
	case service.KindNotFound:
		return app.MsgInvalidTelephoneSecret
	case service.KindInvalid:
		var fieldErrs validation.Errors
		if errors.As(err, &fieldErrs) {
			return fmt.Sprintf("%s: %v", app.MsgInvalidDataProvided, fieldErrs)
		}
		return app.MsgInvalidDataProvided
	case service.KindUnavailable:
		return app.MsgDatastoreUnavailable
	case service.KindNoConnection:
		return app.MsgNoConnection
	}
	return fallback
}

func describeRetry(n int, budget uint64, delay time.Duration) string {
	return fmt.Sprintf("%s in %s (%d/%d)", app.MsgConnectRetrying, delay.Round(time.Millisecond), n, budget)
}

// describeLost names the connect stage that failed. The driver error is only
// logged.
func describeLost(err error) string {
	var connErr *store.ConnectionError
	if errors.As(err, &connErr) {
		return fmt.Sprintf("%s (%s failed)", app.MsgConnectionLost, connErr.Op)
	}
	return app.MsgConnectionLost
}

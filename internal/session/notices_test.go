package session

import (
	"errors"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-sign-desk/internal/app"
	"github.com/MKhiriev/go-sign-desk/internal/service"
	"github.com/MKhiriev/go-sign-desk/internal/store"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "conflict", err: service.ErrConflict, want: app.MsgTelephoneAlreadyExists},
		{name: "not found", err: service.ErrNotFound, want: app.MsgInvalidTelephoneSecret},
		{name: "unavailable", err: service.ErrUnavailable, want: app.MsgDatastoreUnavailable},
		{name: "no connection", err: service.ErrNoConnection, want: app.MsgNoConnection},
		{name: "invalid without details", err: service.ErrInvalid, want: app.MsgInvalidDataProvided},
		{
			name: "invalid with field errors",
			err: &service.OperationError{
				Kind: service.KindInvalid,
				Err:  validation.Errors{"first_name": errors.New("cannot be blank")},
			},
			want: app.MsgInvalidDataProvided + ": first_name: cannot be blank.",
		},
		{name: "foreign error", err: errors.New("boom"), want: "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describe(tt.err, "fallback"))
		})
	}
}

func TestDescribeLost(t *testing.T) {
	assert.Equal(t, app.MsgConnectionLost+" (ping failed)",
		describeLost(&store.ConnectionError{Op: store.OpPing, Err: errors.New("password authentication failed for user \"sign\"")}))
	assert.Equal(t, app.MsgConnectionLost, describeLost(errors.New("boom")))
}

func TestDescribeRetry(t *testing.T) {
	assert.Equal(t, app.MsgConnectRetrying+" in 1.5s (2/5)", describeRetry(2, 5, 1500*time.Millisecond))
}

func TestLinkString(t *testing.T) {
	assert.Equal(t, "idle", LinkIdle.String())
	assert.Equal(t, "retrying", LinkRetrying.String())
	assert.Equal(t, "disconnected", LinkLost.String())
}

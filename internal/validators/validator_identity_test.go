package validators

import (
	"context"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sign-desk/models"
)

func validIdentity() models.Identity {
	return models.Identity{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Telephone: "(415) 555-2671",
		Secret:    "analytical-engine",
	}
}

func fieldErrors(t *testing.T, err error) validation.Errors {
	t.Helper()
	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	return errs
}

func TestValidateIdentity(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(i *models.Identity)
		wantFields []string
	}{
		{name: "valid", mutate: func(i *models.Identity) {}},
		{name: "international telephone", mutate: func(i *models.Identity) { i.Telephone = "+44 20 7946 0958" }},
		{name: "all empty", mutate: func(i *models.Identity) { *i = models.Identity{} },
			wantFields: []string{FieldFirstName, FieldLastName, FieldTelephone, FieldSecret}},
		{name: "blank first name", mutate: func(i *models.Identity) { i.FirstName = "" }, wantFields: []string{FieldFirstName}},
		{name: "long last name", mutate: func(i *models.Identity) { i.LastName = strings.Repeat("x", 101) }, wantFields: []string{FieldLastName}},
		{name: "letters as telephone", mutate: func(i *models.Identity) { i.Telephone = "call me" }, wantFields: []string{FieldTelephone}},
		{name: "too short telephone", mutate: func(i *models.Identity) { i.Telephone = "12" }, wantFields: []string{FieldTelephone}},
		{name: "short secret", mutate: func(i *models.Identity) { i.Secret = "short" }, wantFields: []string{FieldSecret}},
	}

	v := NewIdentityValidator("US")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity := validIdentity()
			tt.mutate(&identity)

			err := v.Validate(context.Background(), identity)

			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}
			errs := fieldErrors(t, err)
			assert.Len(t, errs, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Contains(t, errs, f)
			}
		})
	}
}

func TestValidateIdentity_PointerAndFieldScoping(t *testing.T) {
	v := NewIdentityValidator("US")
	identity := models.Identity{Telephone: "+14155552671", Secret: "long-enough-secret"}

	assert.NoError(t, v.Validate(context.Background(), &identity, FieldTelephone, FieldSecret))

	err := v.Validate(context.Background(), &identity, FieldFirstName)
	errs := fieldErrors(t, err)
	assert.Contains(t, errs, FieldFirstName)
}

func TestValidate_ErrorNeverContainsSecret(t *testing.T) {
	v := NewIdentityValidator("US")
	identity := validIdentity()
	identity.Secret = "tiny"

	err := v.Validate(context.Background(), identity)

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "tiny")
}

func TestValidateCredentials(t *testing.T) {
	v := NewIdentityValidator("US")

	assert.NoError(t, v.Validate(context.Background(), models.Credentials{Telephone: "4155552671", Secret: "x"}),
		"login does not enforce the registration length policy")

	errs := fieldErrors(t, v.Validate(context.Background(), &models.Credentials{}))
	assert.Contains(t, errs, FieldTelephone)
	assert.Contains(t, errs, FieldSecret)
	assert.NotContains(t, errs, FieldFirstName)
}

func TestValidate_UnknownFieldAndType(t *testing.T) {
	v := NewIdentityValidator("US")

	err := v.Validate(context.Background(), models.Credentials{}, FieldFirstName)
	assert.ErrorIs(t, err, ErrUnknownField)

	err = v.Validate(context.Background(), "not an identity")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestNormalizeTelephone(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		region  string
		want    string
		wantErr bool
	}{
		{name: "national US", raw: "(415) 555-2671", region: "US", want: "+14155552671"},
		{name: "already E.164", raw: "+14155552671", region: "US", want: "+14155552671"},
		{name: "foreign with plus ignores region", raw: "+44 20 7946 0958", region: "US", want: "+442079460958"},
		{name: "lower-case region", raw: "020 7946 0958", region: "gb", want: "+442079460958"},
		{name: "surrounding spaces", raw: "  415.555.2671 ", region: "US", want: "+14155552671"},
		{name: "empty", raw: "   ", region: "US", wantErr: true},
		{name: "letters", raw: "hello", region: "US", wantErr: true},
		{name: "too short", raw: "12", region: "US", wantErr: true},
		{name: "national without region", raw: "4155552671", region: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeTelephone(tt.raw, tt.region)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTelephone)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

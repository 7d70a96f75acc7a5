package validators

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/MKhiriev/go-sign-desk/models"
)

// Field name constants used to restrict validation to a subset of fields.
// They double as the keys of the returned validation.Errors.
const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldTelephone = "telephone"
	FieldSecret    = "secret"
)

// Secret length bounds enforced at registration.
const (
	MinSecretLength = 8
	MaxSecretLength = 128
	maxNameLength   = 100
)

// identityInput mirrors the user-editable fields with tags ozzo uses as
// error keys.
type identityInput struct {
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Telephone string        `json:"telephone"`
	Secret    models.Secret `json:"secret"`
}

// IdentityValidator validates registration input ([models.Identity]) and
// login input ([models.Credentials]) with ozzo-validation rules.
type IdentityValidator struct {
	region string
}

// NewIdentityValidator returns a [Validator] that reads telephone numbers in
// the given default region.
func NewIdentityValidator(region string) Validator {
	return &IdentityValidator{region: region}
}

// Validate implements [Validator].
//
// For a [models.Identity] every field is required, names are length-limited
// and the secret must be between MinSecretLength and MaxSecretLength bytes.
// For [models.Credentials] telephone and secret are only required to be
// present and the telephone to be parseable. fields narrows the check.
func (v *IdentityValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Identity:
		return v.validateIdentity(value, fields...)
	case *models.Identity:
		return v.validateIdentity(*value, fields...)
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *IdentityValidator) validateIdentity(identity models.Identity, fields ...string) error {
	in := identityInput{
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
		Telephone: identity.Telephone,
		Secret:    identity.Secret,
	}

	rules := map[string]*validation.FieldRules{
		FieldFirstName: validation.Field(&in.FirstName, validation.Required, validation.Length(1, maxNameLength)),
		FieldLastName:  validation.Field(&in.LastName, validation.Required, validation.Length(1, maxNameLength)),
		FieldTelephone: validation.Field(&in.Telephone, validation.Required, validation.By(v.telephoneRule)),
		FieldSecret:    validation.Field(&in.Secret, validation.Required, validation.Length(MinSecretLength, MaxSecretLength)),
	}

	return validateSelected(&in, rules, fields)
}

func (v *IdentityValidator) validateCredentials(creds models.Credentials, fields ...string) error {
	in := identityInput{
		Telephone: creds.Telephone,
		Secret:    creds.Secret,
	}

	rules := map[string]*validation.FieldRules{
		FieldTelephone: validation.Field(&in.Telephone, validation.Required, validation.By(v.telephoneRule)),
		FieldSecret:    validation.Field(&in.Secret, validation.Required),
	}

	return validateSelected(&in, rules, fields)
}

func (v *IdentityValidator) telephoneRule(value any) error {
	s, _ := value.(string)
	if _, err := NormalizeTelephone(s, v.region); err != nil {
		return ErrInvalidTelephone
	}
	return nil
}

var fieldOrder = []string{FieldFirstName, FieldLastName, FieldTelephone, FieldSecret}

func validateSelected(in *identityInput, rules map[string]*validation.FieldRules, fields []string) error {
	if len(fields) == 0 {
		for _, name := range fieldOrder {
			if _, ok := rules[name]; ok {
				fields = append(fields, name)
			}
		}
	}

	selected := make([]*validation.FieldRules, 0, len(fields))
	for _, name := range fields {
		rule, ok := rules[name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
		selected = append(selected, rule)
	}

	return validation.ValidateStruct(in, selected...)
}

package validators

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// NormalizeTelephone parses raw as a telephone number and returns it in
// E.164 form ("+14155552671"). Numbers without a leading "+" are read in the
// given ISO 3166-1 region. Only the length plausibility is checked, not
// whether the number is currently allocated.
func NormalizeTelephone(raw, region string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidTelephone
	}

	num, err := phonenumbers.Parse(raw, strings.ToUpper(region))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidTelephone, err)
	}

	if !phonenumbers.IsPossibleNumber(num) {
		return "", ErrInvalidTelephone
	}

	return phonenumbers.Format(num, phonenumbers.E164), nil
}

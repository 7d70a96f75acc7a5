// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

const redacted = "[REDACTED]"

// Secret holds a clear-text secret. Every formatting and encoding path
// prints a placeholder instead of the value; use Reveal to read it.
type Secret string

// Reveal returns the clear-text value.
func (s Secret) Reveal() string {
	return string(s)
}

// IsEmpty reports whether no secret was entered.
func (s Secret) IsEmpty() bool {
	return s == ""
}

func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return redacted
}

func (s Secret) GoString() string {
	return s.String()
}

func (s Secret) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

package models

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecret_NeverPrintsValue(t *testing.T) {
	s := Secret("hunter2")

	assert.Equal(t, "hunter2", s.Reveal())
	assert.NotContains(t, s.String(), "hunter2")
	assert.NotContains(t, fmt.Sprintf("%v %s %#v", s, s, s), "hunter2")

	id := Identity{Telephone: "+14155552671", Secret: s}
	assert.NotContains(t, fmt.Sprintf("%+v", id), "hunter2")

	text, err := s.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, redacted, string(text))

	raw, err := json.Marshal(struct {
		S Secret `json:"s"`
	}{S: s})
	require.NoError(t, err)
	assert.JSONEq(t, `{"s":"[REDACTED]"}`, string(raw))
}

func TestSecret_Empty(t *testing.T) {
	var s Secret
	assert.True(t, s.IsEmpty())
	assert.Equal(t, "", s.String())
}

func TestIdentity_JSONOmitsCredentials(t *testing.T) {
	id := Identity{ID: 7, FirstName: "Ada", Telephone: "+1", Secret: "pw", SecretHash: "$argon2id$..."}

	raw, err := json.Marshal(id)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "pw")
	assert.NotContains(t, string(raw), "argon2id")
	assert.Contains(t, string(raw), `"id":7`)
}

func TestIdentity_PublicAndHasID(t *testing.T) {
	id := Identity{Secret: "pw", SecretHash: "h"}
	assert.False(t, id.HasID())

	id.ID = 42
	pub := id.Public()
	assert.True(t, pub.HasID())
	assert.True(t, pub.Secret.IsEmpty())
	assert.Empty(t, pub.SecretHash)
	assert.Equal(t, "identities", pub.TableName())
}

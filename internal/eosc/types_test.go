package eosc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicContactOmitsUnsetFields(t *testing.T) {
	raw, err := json.Marshal(PublicContact{Email: "info@example.com"})
	require.NoError(t, err)

	// A provider contact with only an email must not emit null placeholders
	// for the optional name fields.
	assert.JSONEq(t, `{"email":"info@example.com","phone":""}`, string(raw))
	assert.NotContains(t, string(raw), "firstName")
	assert.NotContains(t, string(raw), "null")
}

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberAcceptsBothWireForms(t *testing.T) {
	var sub Subscription
	raw := `{"_id":"p1","subscriptionName":"Pro","subscriptionPrice":"999.5","subscriptionValidity":90}`
	require.NoError(t, json.Unmarshal([]byte(raw), &sub))
	assert.Equal(t, Number(999.5), sub.Price)
	assert.Equal(t, Number(90), sub.Validity)

	var n Number
	require.NoError(t, json.Unmarshal([]byte(`null`), &n))
	assert.Zero(t, n)

	assert.Error(t, json.Unmarshal([]byte(`"not a number"`), &n))
}

func TestUpdateClientRequestOmitsBlankPassword(t *testing.T) {
	raw, err := json.Marshal(UpdateClientRequest{
		FullName:        "Asha Admin",
		Mobile:          "9876543210",
		Email:           "asha@example.com",
		UserDesignation: DefaultDesignation,
		ProfileImage:    DefaultProfileImage,
	})
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.NotContains(t, payload, "password")

	raw, err = json.Marshal(UpdateClientRequest{Password: "newpassword"})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"password":"newpassword"`)
}

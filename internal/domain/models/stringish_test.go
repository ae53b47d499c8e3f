package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringish_DecodesAnyScalar(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{`{"id":101}`, "101"},
		{`{"id":"101"}`, "101"},
		{`{"id":" 101 "}`, "101"},
		{`{"id":101.0}`, "101.0"},
		{`{"id":true}`, "true"},
		{`{"id":{"n":1}}`, `{"n":1}`},
		{`{"id":null}`, ""},
		{`{}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var in AirlineInput
			require.NoError(t, json.Unmarshal([]byte(tt.body), &in))
			assert.Equal(t, tt.want, in.ID.String())
		})
	}
}

func TestStringish_PointerPresence(t *testing.T) {
	var patch FlightUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"client_id":999,"end_city":"Oslo"}`), &patch))
	require.NotNil(t, patch.ClientID)
	assert.Equal(t, "999", patch.ClientID.String())
	assert.Nil(t, patch.AirlineID)
	assert.Nil(t, patch.Date)
}

package response

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTime_RoundTrip(t *testing.T) {
	in := struct {
		At DateTime `json:"at"`
	}{At: DateTime(time.Date(2024, 3, 1, 9, 30, 15, 0, time.Local))}

	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":"2024-03-01 09:30:15"}`, string(b))

	var out struct {
		At DateTime `json:"at"`
	}
	require.NoError(t, json.Unmarshal(b, &out))
	assert.True(t, time.Time(in.At).Equal(time.Time(out.At)))
}

func TestDateTime_UnmarshalInvalid(t *testing.T) {
	var d DateTime
	assert.Error(t, json.Unmarshal([]byte(`"01/03/2024"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`12`), &d))

	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, time.Time(d).IsZero())
}

package submission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	sub, err := Parse([]byte(`{
		"entity": {
			"serial": [{"value": "123"}],
			"created": [{"value": "2024-05-01T08:30:00"}],
			"completed": [{"value": "2024-05-01T08:45:12"}]
		},
		"data": {"hvem_udfylder_spoergeskemaet": "Ung/selvbesvarelse"}
	}`))
	require.NoError(t, err)

	assert.Equal(t, "123", sub.Serial())
	assert.Equal(t, "Ung/selvbesvarelse", sub.Role())
	assert.False(t, sub.Purged())

	created, ok := sub.Created()
	require.True(t, ok)
	assert.Equal(t, "2024-05-01T08:30:00", created)
	completed, ok := sub.Completed()
	require.True(t, ok)
	assert.Equal(t, "2024-05-01T08:45:12", completed)
}

func TestParseInvalidPayload(t *testing.T) {
	for _, payload := range []string{"", "not json", `["list"]`, `"scalar"`} {
		_, err := Parse([]byte(payload))
		assert.Error(t, err, "payload %q", payload)
	}
}

func TestParsePurgedMarker(t *testing.T) {
	sub, err := Parse([]byte(`{"purged": true, "entity": {}, "data": {}}`))
	require.NoError(t, err)
	assert.True(t, sub.Purged())

	// The key alone marks the payload, whatever its value.
	sub, err = Parse([]byte(`{"purged": null, "entity": {}, "data": {}}`))
	require.NoError(t, err)
	assert.True(t, sub.Purged())
}

func TestSerialNumericValue(t *testing.T) {
	sub, err := Parse([]byte(`{"entity": {"serial": [{"value": 123}]}, "data": {}}`))
	require.NoError(t, err)
	assert.Equal(t, "123", sub.Serial())
}

func TestSerialMissing(t *testing.T) {
	cases := map[string]string{
		"no entity":     `{"data": {}}`,
		"empty wrapper": `{"entity": {"serial": []}, "data": {}}`,
		"null value":    `{"entity": {"serial": [{"value": null}]}, "data": {}}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			sub, err := Parse([]byte(payload))
			require.NoError(t, err)
			assert.Equal(t, "", sub.Serial())
		})
	}
}

func TestRoleNonString(t *testing.T) {
	sub, err := Parse([]byte(`{"entity": {}, "data": {"hvem_udfylder_spoergeskemaet": 7}}`))
	require.NoError(t, err)
	assert.Equal(t, "", sub.Role())
}

func TestTimestampAbsent(t *testing.T) {
	sub, err := Parse([]byte(`{"entity": {}, "data": {}}`))
	require.NoError(t, err)
	_, ok := sub.Created()
	assert.False(t, ok)
	_, ok = sub.Completed()
	assert.False(t, ok)
}

package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributes_SetPreservesInsertionOrder(t *testing.T) {
	var attrs Attributes
	attrs.Set("id", "main")
	attrs.Set("class", "wide")
	attrs.Set("data-x", "1")

	assert.Equal(t, Attributes{
		{Key: "id", Value: "main"},
		{Key: "class", Value: "wide"},
		{Key: "data-x", Value: "1"},
	}, attrs)
}

func TestAttributes_SetLastWriteWins(t *testing.T) {
	var attrs Attributes
	attrs.Set("id", "a")
	attrs.Set("class", "c")
	attrs.Set("id", "b")

	value, ok := attrs.Get("id")
	require.True(t, ok)
	assert.Equal(t, "b", value)

	// The repeated key keeps its original position.
	assert.Equal(t, "id", attrs[0].Key)
	assert.Equal(t, 2, attrs.Len())
}

func TestAttributes_GetMissing(t *testing.T) {
	var attrs Attributes
	attrs.Set("disabled", "")

	value, ok := attrs.Get("href")
	assert.False(t, ok)
	assert.Empty(t, value)

	// A bare attribute is present with an empty value.
	value, ok = attrs.Get("disabled")
	assert.True(t, ok)
	assert.Empty(t, value)
	assert.True(t, attrs.Has("disabled"))
}

func TestAttributes_MarshalJSONKeepsOrder(t *testing.T) {
	var attrs Attributes
	attrs.Set("zebra", "1")
	attrs.Set("alpha", "2")
	attrs.Set("mid", "")

	data, err := json.Marshal(attrs)
	require.NoError(t, err)
	assert.Equal(t, `{"zebra":"1","alpha":"2","mid":""}`, string(data))
}

func TestAttributes_UnmarshalJSONKeepsOrder(t *testing.T) {
	var attrs Attributes
	err := json.Unmarshal([]byte(`{"zebra":"1","alpha":"2"}`), &attrs)
	require.NoError(t, err)

	assert.Equal(t, Attributes{
		{Key: "zebra", Value: "1"},
		{Key: "alpha", Value: "2"},
	}, attrs)
}

func TestAttributes_JSONRoundTrip(t *testing.T) {
	var attrs Attributes
	attrs.Set("id", "x")
	attrs.Set("title", `with "quotes"`)
	attrs.Set("lang", "")

	data, err := json.Marshal(attrs)
	require.NoError(t, err)

	var decoded Attributes
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, attrs, decoded)
}

func TestAttributes_UnmarshalJSONRejectsNonObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "array", input: `["id","x"]`},
		{name: "string", input: `"id"`},
		{name: "non-string value", input: `{"id":5}`},
		{name: "truncated", input: `{"id":"x"`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var attrs Attributes
			assert.Error(t, json.Unmarshal([]byte(tc.input), &attrs))
		})
	}
}

func TestAttributes_MarshalEmpty(t *testing.T) {
	data, err := json.Marshal(Attributes{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

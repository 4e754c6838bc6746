package fixture_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wpt-fixtures/fixtures/fixture"
)

func TestNormalizeJSONString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text", "hello world 123", "hello world 123"},
		{"empty", "", ""},
		{"unicode", "grüße 日本", "grüße 日本"},
		{"quoted object", `"{\"a\":1}"`, `{"a":1}`},
		{"quoted array", `{"ads":"[{\"renderURL\":\"https://a.test/ad\"}]"}`, `{"ads":[{"renderURL":"https://a.test/ad"}]}`},
		{"nested object", `{"trustedBiddingSignalsKeys":"{\"k\":\"v\"}"}`, `{"trustedBiddingSignalsKeys":{"k":"v"}}`},
		{"doubled quotes", `a""b`, `a"b`},
		{"empty string value collapses", `{"k":""}`, `{"k":"}`},
		{"backslashes only", `\\\`, ""},
		{"numbers untouched", `{"priority":5}`, `{"priority":5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := fixture.NormalizeJSONString([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestNormalizeJSONString_EscapedQuotedObject(t *testing.T) {
	// read as a string literal, this is `"{\"a\":1}"`: a JSON object that
	// was stringified once and wrapped in quotes
	input := "\"{\\\"a\\\":1}\""
	require.Equal(t, `"{\"a\":1}"`, input)

	actual, err := fixture.NormalizeJSONString([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, actual)
}

func TestNormalizeJSONString_BackslashRemovedBeforeCollapse(t *testing.T) {
	// the escaped quote loses its backslash and then pairs up with its
	// neighbour, so the collapse step sees `""`
	actual, err := fixture.NormalizeJSONString([]byte(`x\""y`))
	require.NoError(t, err)
	assert.Equal(t, `x"y`, actual)
}

func TestNormalizeJSONString_InvalidUTF8(t *testing.T) {
	_, err := fixture.NormalizeJSONString([]byte{'{', 0xff, 0xfe, '}'})
	require.Error(t, err)
	assert.ErrorIs(t, err, fixture.ErrDecode)
}

func TestNormalizeJSONString_Deterministic(t *testing.T) {
	input := []byte(`{"biddingLogicURL":"\"https://a.test/bid.js\""}`)

	first, err := fixture.NormalizeJSONString(input)
	require.NoError(t, err)

	second, err := fixture.NormalizeJSONString(input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

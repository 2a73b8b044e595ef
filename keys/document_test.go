package keys_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/cn/keys"
)

func TestFromDocument(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"yaml mapping keeps source order", "y: 1\nx: 2\n", []string{"y", "x"}},
		{"flow mapping hoists indices", "{y: 1, x: 2, 1: 0}", []string{"1", "y", "x"}},
		{"json object", `{"b": 1, "a": 2, "10": 3, "2": 4}`, []string{"2", "10", "b", "a"}},
		{"empty object", "{}", []string{}},
		{"sequence yields indices", "[a, b, c]", []string{"0", "1", "2"}},
		{"scalar yields nothing", "42", []string{}},
		{"string yields indices", `"ab"`, []string{"0", "1"}},
		{"nested values ignored", "outer:\n  inner: 1\nnext: [1, 2]\n", []string{"outer", "next"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := keys.FromDocument([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFromDocumentNil(t *testing.T) {
	for _, input := range []string{"", "null", "~"} {
		_, err := keys.FromDocument([]byte(input))
		assert.ErrorIs(t, err, keys.ErrNilRecord, "input %q", input)
	}
}

func TestFromDocumentMalformed(t *testing.T) {
	_, err := keys.FromDocument([]byte("{a: 1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse document")
}

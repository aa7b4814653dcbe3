package ethereum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamehash(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty name",
			input:    "",
			expected: "0x0000000000000000000000000000000000000000000000000000000000000000",
		},
		{
			name:     "tld",
			input:    "eth",
			expected: "0x93cdeb708b7545dc668eb9280176169d1c33cfd8ed6f04690a0bcc88a93fc4ae",
		},
		{
			name:     "second level",
			input:    "foo.eth",
			expected: "0xde9b09fd7c5f901e23a3f19fecc54828e9c848539801e86591bd9801b019f84f",
		},
		{
			name:     "mixed case normalizes",
			input:    "FOO.eth",
			expected: "0xde9b09fd7c5f901e23a3f19fecc54828e9c848539801e86591bd9801b019f84f",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, namehash(tc.input).Hex())
		})
	}
}

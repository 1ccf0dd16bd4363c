package checksum

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name      string
		numeral   string
		expected  int
		expectErr bool
	}{
		{
			name:     "Known 32-bit pattern",
			numeral:  "305419896", // 0x12345678
			expected: 1210870302,  // 0x482C6A1E
		},
		{
			name:     "Zero maps to zero",
			numeral:  "0",
			expected: 0,
		},
		{
			name:     "Lowest bit mirrors into the top of its group",
			numeral:  "1",
			expected: 128,
		},
		{
			name:      "Not a number",
			numeral:   "ABCDEFGH",
			expectErr: true,
		},
		{
			name:      "Too large for 32 bits",
			numeral:   "4294967296",
			expectErr: true,
		},
		{
			name:      "Mirrored value overflows a signed 32-bit parse",
			numeral:   "16777216", // 0x01000000, top byte mirrors to 0x80
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := Compute(tt.numeral)

			if tt.expectErr {
				assert.ErrorIs(t, err, ErrInvalid)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, code)
		})
	}
}

func TestComputeIsAnInvolution(t *testing.T) {
	samples := []int{0, 1, 128, 21845, 305419896}

	for _, sample := range samples {
		once, err := Compute(strconv.Itoa(sample))
		require.NoError(t, err)

		twice, err := Compute(strconv.Itoa(once))
		require.NoError(t, err)

		assert.Equal(t, sample, twice)
	}
}

package reqread

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeDecimal(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		want  uint64
		res   DecodeResult
	}{
		{"empty", "", 0, DecodeOK},
		{"zero", "0", 0, DecodeOK},
		{"leading zeros", "007", 7, DecodeOK},
		{"ordinary", "1234567890", 1234567890, DecodeOK},
		{"max uint64", "18446744073709551615", math.MaxUint64, DecodeOK},
		{"one past max", "18446744073709551616", 0, DecodeOverflow},
		{"wildly overflowing", "999999999999999999999999", 0, DecodeOverflow},
		{"non digit", "12a4", 0, DecodeInvalid},
		{"plus sign", "+4", 0, DecodeInvalid},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, res := decodeDecimal([]byte(c.raw))
			require.Equal(t, c.res, res)
			if c.res == DecodeOK {
				require.Equal(t, c.want, got)
			}
		})
	}
}

package reqread

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeHex(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want uint64
		res  DecodeResult
	}{
		{"empty", "", 0, DecodeOK},
		{"zero", "0", 0, DecodeOK},
		{"lowercase", "ff", 255, DecodeOK},
		{"uppercase", "FF", 255, DecodeOK},
		{"mixed", "1aB", 0x1ab, DecodeOK},
		{"max uint64", "ffffffffffffffff", math.MaxUint64, DecodeOK},
		{"overflow", "10000000000000000", 0, DecodeOverflow},
		{"non hex", "12g4", 0, DecodeInvalid},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, res := decodeHex([]byte(c.raw))
			require.Equal(t, c.res, res)
			if c.res == DecodeOK {
				require.Equal(t, c.want, got)
			}
		})
	}
}

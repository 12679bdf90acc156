package reqread

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsTchar(t *testing.T) {
	require.True(t, isTchar('A'))
	require.True(t, isTchar('z'))
	require.True(t, isTchar('9'))
	require.True(t, isTchar('-'))
	require.True(t, isTchar('~'))
	require.False(t, isTchar(' '))
	require.False(t, isTchar(':'))
	require.False(t, isTchar('/'))
	require.False(t, isTchar('\r'))
}

func TestIsFieldValueChar(t *testing.T) {
	require.True(t, isFieldValueChar(' '))
	require.True(t, isFieldValueChar('\t'))
	require.True(t, isFieldValueChar('A'))
	require.True(t, isFieldValueChar(0x80))
	require.True(t, isFieldValueChar(0xFF))
	require.False(t, isFieldValueChar('\r'))
	require.False(t, isFieldValueChar('\n'))
}

func TestIsRequestTargetChar(t *testing.T) {
	require.True(t, isRequestTargetChar('/'))
	require.True(t, isRequestTargetChar('a'))
	require.True(t, isRequestTargetChar('%'))
	require.True(t, isRequestTargetChar('?'))
	require.False(t, isRequestTargetChar(' '))
	require.False(t, isRequestTargetChar('\r'))
}

func TestIsChunkExtChar(t *testing.T) {
	// the chunk-ext-char class reduces to exactly the field-value-char
	// class: vchar | obs-text | OWS.
	for c := 0; c < 256; c++ {
		require.Equal(t, isFieldValueChar(byte(c)), isChunkExtChar(byte(c)), "octet %d", c)
	}
}

func TestIsOWS(t *testing.T) {
	require.True(t, isOWS(' '))
	require.True(t, isOWS('\t'))
	require.False(t, isOWS('\r'))
	require.False(t, isOWS('a'))
}

func TestUnhex(t *testing.T) {
	require.EqualValues(t, 0, unhex('0'))
	require.EqualValues(t, 9, unhex('9'))
	require.EqualValues(t, 10, unhex('a'))
	require.EqualValues(t, 15, unhex('f'))
	require.EqualValues(t, 10, unhex('A'))
	require.EqualValues(t, 15, unhex('F'))
}

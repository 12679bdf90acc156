package reqread

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalyzeTransferEncoding(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		res, total := analyzeTransferEncoding("gzip", 0)
		require.Equal(t, teNotFound, res)
		require.Equal(t, 0, total)
	})

	t.Run("chunked alone", func(t *testing.T) {
		res, total := analyzeTransferEncoding("chunked", 0)
		require.Equal(t, teChunkedAtEnd, res)
		require.Equal(t, 1, total)
	})

	t.Run("chunked is final coding", func(t *testing.T) {
		res, total := analyzeTransferEncoding("gzip, chunked", 0)
		require.Equal(t, teChunkedAtEnd, res)
		require.Equal(t, 1, total)
	})

	t.Run("chunked not final", func(t *testing.T) {
		res, _ := analyzeTransferEncoding("chunked, gzip", 0)
		require.Equal(t, teInvalid, res)
	})

	t.Run("chunked twice in one header", func(t *testing.T) {
		res, _ := analyzeTransferEncoding("chunked, chunked", 0)
		require.Equal(t, teInvalid, res)
	})

	t.Run("case insensitive", func(t *testing.T) {
		res, total := analyzeTransferEncoding("CHUNKED", 0)
		require.Equal(t, teChunkedAtEnd, res)
		require.Equal(t, 1, total)
	})

	t.Run("OWS around commas", func(t *testing.T) {
		res, total := analyzeTransferEncoding("gzip ,  chunked", 0)
		require.Equal(t, teChunkedAtEnd, res)
		require.Equal(t, 1, total)
	})

	t.Run("another header after chunked already seen", func(t *testing.T) {
		res, total := analyzeTransferEncoding("gzip", 1)
		require.Equal(t, teInvalid, res)
		require.Equal(t, 1, total)
	})

	t.Run("empty value", func(t *testing.T) {
		res, total := analyzeTransferEncoding("", 0)
		require.Equal(t, teNotFound, res)
		require.Equal(t, 0, total)
	})
}

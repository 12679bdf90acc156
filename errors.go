package reqread

// Code is both the classification of the token currently held by a
// Reader and, for the error_* values, a concrete error a driver can
// compare against with errors.Is. Mirrors the teacher's
// status.HTTPError/status.Err* pairing, but collapsed into a single
// enum since the core has no HTTP status to attach.
type Code uint8

const (
	// None is the code of a freshly-constructed or just-reset Reader,
	// before the first Advance call.
	None Code = iota

	Skip
	Method
	RequestTarget
	Version
	FieldName
	FieldValue
	EndOfHeaders
	BodyChunk
	EndOfBody
	EndOfMessage

	ErrInsufficientData

	ErrInvalidData
	ErrNoHost
	ErrInvalidContentLength
	ErrContentLengthOverflow
	ErrInvalidTransferEncoding
	ErrChunkSizeOverflow
)

var codeText = [...]string{
	None:                       "none",
	Skip:                       "skip",
	Method:                     "method",
	RequestTarget:              "request target",
	Version:                    "version",
	FieldName:                  "field name",
	FieldValue:                 "field value",
	EndOfHeaders:               "end of headers",
	BodyChunk:                  "body chunk",
	EndOfBody:                  "end of body",
	EndOfMessage:               "end of message",
	ErrInsufficientData:        "insufficient data",
	ErrInvalidData:             "invalid data",
	ErrNoHost:                  "missing required Host header",
	ErrInvalidContentLength:    "invalid Content-Length",
	ErrContentLengthOverflow:   "Content-Length value overflow",
	ErrInvalidTransferEncoding: "invalid Transfer-Encoding",
	ErrChunkSizeOverflow:       "chunk size overflow",
}

func (c Code) String() string {
	if int(c) >= len(codeText) {
		return "unknown"
	}

	return codeText[c]
}

// Error implements the error interface so error_* codes can be returned
// and compared directly as errors. Calling it on a non-error code is a
// programming error in the caller (it is not itself guarded, matching
// the teacher's convention of trusting the caller to check Code() first).
func (c Code) Error() string {
	return c.String()
}

// IsError reports whether c is one of the error_* codes (excluding the
// benign error_insufficient_data sentinel).
func (c Code) IsError() bool {
	return c >= ErrInvalidData
}

// Sentinel errors, for drivers that prefer errors.Is over comparing Code
// values directly.
var (
	ErrBadInvalidData           error = ErrInvalidData
	ErrBadNoHost                error = ErrNoHost
	ErrBadContentLength         error = ErrInvalidContentLength
	ErrBadContentLengthOverflow error = ErrContentLengthOverflow
	ErrBadTransferEncoding      error = ErrInvalidTransferEncoding
	ErrBadChunkSizeOverflow     error = ErrChunkSizeOverflow
)

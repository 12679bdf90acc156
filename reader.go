package reqread

import (
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
)

var (
	crlfLiteral              = []byte("\r\n")
	staticAfterTargetLiteral = []byte(" HTTP/1.")
)

// maxChunkSizeDigits bounds the chunk-size hex run independent of Limits:
// 16 hex digits already cover the full uint64 range, so anything longer
// can only be a malicious or broken peer.
const maxChunkSizeDigits = 16

// Reader is an incremental, zero-copy, zero-allocation HTTP/1.x request
// reader. It owns no byte storage of its own: every token it reports is
// a sub-slice of whatever buffer was last handed to SetBuffer. Callers
// drive it with repeated calls to Advance, reading Code/Token/Value
// after each call, exactly like a pull-style tokenizer.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	buf       []byte
	idx       int
	tokenSize int
	code      Code
	state     parserState

	limits Limits

	versionState  versionState
	pendingHeader headerKind

	bodyType      bodyType
	contentLength uint64
	chunkLeft     uint64
	lastChunk     bool

	seenContentLength    bool
	seenTransferEncoding bool
	teChunkedCount       int

	headerCount  int
	trailerCount int

	trailerAnnounced bool
}

// New builds a Reader with DefaultLimits.
func New() *Reader {
	return NewWithLimits(DefaultLimits())
}

// NewWithLimits builds a Reader bounded by limits; zero fields of limits
// are backstopped by FillLimits.
func NewWithLimits(limits Limits) *Reader {
	r := &Reader{limits: FillLimits(limits)}
	r.Reset()
	return r
}

// Limits returns the ceilings this Reader currently enforces.
func (r *Reader) Limits() Limits {
	return r.limits
}

// WithLimits replaces the Reader's ceilings and returns it, for chaining
// onto New(). Zero fields of limits are backstopped by FillLimits.
func (r *Reader) WithLimits(limits Limits) *Reader {
	r.limits = FillLimits(limits)
	return r
}

// Reset returns the Reader to its just-constructed state, discarding any
// buffer, in-progress token and per-message framing state. Use it to
// recycle a Reader across unrelated connections.
func (r *Reader) Reset() {
	r.buf = nil
	r.idx = 0
	r.tokenSize = 0
	r.code = None
	r.state = sMethod
	r.resetPerMessage()
}

func (r *Reader) resetPerMessage() {
	r.versionState = versionHTTP11HostNotSeen
	r.pendingHeader = headerKindOther
	r.bodyType = bodyNone
	r.contentLength = 0
	r.chunkLeft = 0
	r.lastChunk = false
	r.seenContentLength = false
	r.seenTransferEncoding = false
	r.teChunkedCount = 0
	r.headerCount = 0
	r.trailerCount = 0
	r.trailerAnnounced = false
}

// SetBuffer attaches a new buffer window and resets idx to 0, per spec
// §4.1. When a token is mid-flight (Code is error_insufficient_data),
// token_size is preserved: the caller is expected to have arranged for
// byte 0 of the new buffer to be the continuation of whatever partial
// token token_size already measures. Otherwise token_size is reset to
// 0, since idx=0 now marks the start of a brand new token.
func (r *Reader) SetBuffer(b []byte) {
	r.buf = b
	r.idx = 0
	if r.code != ErrInsufficientData {
		r.tokenSize = 0
	}
}

// Code reports the classification of the token currently held.
func (r *Reader) Code() Code { return r.code }

// TokenSize reports the length in bytes of the token currently held.
func (r *Reader) TokenSize() int { return r.tokenSize }

// Consumed reports how many bytes from the start of the buffer last
// passed to SetBuffer have been fully accounted for, including the
// token currently held. A driver compacting or growing its buffer uses
// this as the cut point: everything before it can be discarded. While
// Code is error_insufficient_data the held bytes are a partial token that
// the next buffer must start with, so the cut point is then
// Consumed() - TokenSize().
func (r *Reader) Consumed() int { return r.idx + r.tokenSize }

// Bytes returns the raw, untrimmed bytes of the token currently held,
// as a slice of the buffer last passed to SetBuffer. The slice is only
// valid until the next call to Advance or SetBuffer.
func (r *Reader) Bytes() []byte {
	if r.buf == nil || r.idx+r.tokenSize > len(r.buf) {
		return nil
	}

	return r.buf[r.idx : r.idx+r.tokenSize]
}

// Token returns Bytes as a string, via an unsafe zero-copy conversion.
func (r *Reader) Token() string {
	return uf.B2S(r.Bytes())
}

// Value returns Token with trailing optional whitespace trimmed, which
// is what a caller wants when Code is field_value: the grammar allows
// OWS to trail into the matched run, but it is not part of the value.
func (r *Reader) Value() string {
	if r.code != FieldValue {
		return r.Token()
	}

	return trimTrailingOWSString(r.Token())
}

// IsHTTP10 reports whether the request line carried HTTP/1.0.
func (r *Reader) IsHTTP10() bool {
	return r.versionState == versionHTTP10
}

// HasBody reports whether end of headers resolved to a framed body.
func (r *Reader) HasBody() bool {
	return r.bodyType != bodyNone
}

// ContentLength returns the decoded Content-Length, if framing resolved
// to bodyContentLength.
func (r *Reader) ContentLength() uint64 {
	return r.contentLength
}

// TrailerAnnounced reports whether a Trailer header was seen among the
// request headers, per spec §3. Parsing of the trailer section itself
// does not depend on this; it is informational only.
func (r *Reader) TrailerAnnounced() bool {
	return r.trailerAnnounced
}

// ExpectedToken reports the token Code the Reader is trying to complete
// next, derived from its internal state, per spec §6. Drivers that want
// to size their next read (e.g. read-ahead for a large body) can use
// this without needing to know the state machine's shape.
func (r *Reader) ExpectedToken() Code {
	switch r.state {
	case sMethod, sSPAfterMethod:
		return Method
	case sRequestTarget, sStaticAfterTarget:
		return RequestTarget
	case sVersion, sCRLFAfterVersion:
		return Version
	case sFieldName, sColon:
		return FieldName
	case sOWSAfterColon, sFieldValue, sCRLFAfterFieldValue:
		return FieldValue
	case sLFAfterHeaders:
		return EndOfHeaders
	case sResolveFraming:
		if r.seenTransferEncoding || (r.seenContentLength && r.contentLength > 0) {
			return BodyChunk
		}
		return EndOfBody
	case sBody, sChunkSize, sChunkExt, sCRLFAfterChunkExt, sChunkData, sCRLFAfterChunkData:
		return BodyChunk
	case sEndOfBody:
		return EndOfBody
	case sTrailerName, sTrailerColon:
		return FieldName
	case sOWSAfterTrailerColon, sTrailerValue, sCRLFAfterTrailerValue:
		return FieldValue
	case sLFAfterTrailers, sEndOfMessage:
		return EndOfMessage
	default:
		return r.code
	}
}

func (r *Reader) fail(c Code) {
	r.code = c
	r.state = sErrored
}

// Advance drives the state machine forward by at most one token. Once
// Code reports an error_* code other than error_insufficient_data, every
// subsequent call is a no-op: errors are sticky.
func (r *Reader) Advance() {
	if r.code.IsError() {
		return
	}

	if r.code != ErrInsufficientData {
		r.idx += r.tokenSize
		r.tokenSize = 0
	}

	var (
		oldSize    int
		newSize    int
		rem        []byte
		n          int
		avail      int
		take       uint64
		decoded    uint64
		decodeRes  DecodeResult
		sideEffect Code
	)

	switch r.state {
	case sMethod:
		goto method
	case sSPAfterMethod:
		goto spAfterMethod
	case sRequestTarget:
		goto requestTarget
	case sStaticAfterTarget:
		goto staticAfterTarget
	case sVersion:
		goto version
	case sCRLFAfterVersion:
		goto crlfAfterVersion
	case sFieldName:
		goto fieldName
	case sColon:
		goto colon
	case sOWSAfterColon:
		goto owsAfterColon
	case sFieldValue:
		goto fieldValue
	case sCRLFAfterFieldValue:
		goto crlfAfterFieldValue
	case sLFAfterHeaders:
		goto lfAfterHeaders
	case sResolveFraming:
		goto resolveFraming
	case sEndOfBody:
		goto endOfBody
	case sEndOfMessage:
		goto endOfMessage
	case sBody:
		goto body
	case sChunkSize:
		goto chunkSize
	case sChunkExt:
		goto chunkExt
	case sCRLFAfterChunkExt:
		goto crlfAfterChunkExt
	case sChunkData:
		goto chunkData
	case sCRLFAfterChunkData:
		goto crlfAfterChunkData
	case sTrailerName:
		goto trailerName
	case sTrailerColon:
		goto trailerColon
	case sOWSAfterTrailerColon:
		goto owsAfterTrailerColon
	case sTrailerValue:
		goto trailerValue
	case sCRLFAfterTrailerValue:
		goto crlfAfterTrailerValue
	case sLFAfterTrailers:
		goto lfAfterTrailers
	default:
		r.fail(ErrInvalidData)
		return
	}

method:
	oldSize = r.tokenSize
	rem = r.buf[r.idx+oldSize:]
	n = scanWhile(rem, isTchar)
	newSize = oldSize + n
	r.tokenSize = newSize
	if n == len(rem) {
		if newSize > int(r.limits.Method.Maximal) {
			r.fail(ErrInvalidData)
			return
		}
		r.code = ErrInsufficientData
		return
	}
	if newSize == 0 {
		r.fail(ErrInvalidData)
		return
	}
	r.code = Method
	r.state = sSPAfterMethod
	return

spAfterMethod:
	rem = r.buf[r.idx+r.tokenSize:]
	if len(rem) == 0 {
		r.code = ErrInsufficientData
		return
	}
	if rem[0] != ' ' {
		r.fail(ErrInvalidData)
		return
	}
	r.tokenSize = 1
	r.code = Skip
	r.state = sRequestTarget
	return

requestTarget:
	oldSize = r.tokenSize
	rem = r.buf[r.idx+oldSize:]
	n = scanWhile(rem, isRequestTargetChar)
	newSize = oldSize + n
	r.tokenSize = newSize
	if n == len(rem) {
		if newSize > int(r.limits.RequestTarget.Maximal) {
			r.fail(ErrInvalidData)
			return
		}
		r.code = ErrInsufficientData
		return
	}
	if newSize == 0 {
		r.fail(ErrInvalidData)
		return
	}
	r.code = RequestTarget
	r.state = sStaticAfterTarget
	return

staticAfterTarget:
	oldSize = r.tokenSize
	rem = r.buf[r.idx+oldSize:]
	n = matchLiteral(rem, staticAfterTargetLiteral[oldSize:])
	newSize = oldSize + n
	r.tokenSize = newSize
	if newSize < len(staticAfterTargetLiteral) {
		if n < len(rem) {
			r.fail(ErrInvalidData)
			return
		}
		r.code = ErrInsufficientData
		return
	}
	r.code = Skip
	r.state = sVersion
	return

version:
	rem = r.buf[r.idx+r.tokenSize:]
	if len(rem) == 0 {
		r.code = ErrInsufficientData
		return
	}
	if !isDigit(rem[0]) {
		r.fail(ErrInvalidData)
		return
	}
	if rem[0] == '0' {
		r.versionState = versionHTTP10
	} else {
		r.versionState = versionHTTP11HostNotSeen
	}
	r.tokenSize = 1
	r.code = Version
	r.state = sCRLFAfterVersion
	return

crlfAfterVersion:
	oldSize = r.tokenSize
	rem = r.buf[r.idx+oldSize:]
	n = matchLiteral(rem, crlfLiteral[oldSize:])
	newSize = oldSize + n
	r.tokenSize = newSize
	if newSize < len(crlfLiteral) {
		if n < len(rem) {
			r.fail(ErrInvalidData)
			return
		}
		r.code = ErrInsufficientData
		return
	}
	r.code = Skip
	r.state = sFieldName
	return

fieldName:
	oldSize = r.tokenSize
	rem = r.buf[r.idx+oldSize:]
	n = scanWhile(rem, isTchar)
	newSize = oldSize + n
	if n == len(rem) {
		r.tokenSize = newSize
		if newSize > int(r.limits.FieldName.Maximal) {
			r.fail(ErrInvalidData)
			return
		}
		r.code = ErrInsufficientData
		return
	}
	if newSize == 0 {
		if rem[n] == '\r' {
			r.tokenSize = 0
			r.state = sLFAfterHeaders
			goto lfAfterHeaders
		}
		r.fail(ErrInvalidData)
		return
	}
	if rem[n] != ':' {
		r.fail(ErrInvalidData)
		return
	}
	r.tokenSize = newSize
	r.pendingHeader = classifyFieldName(r.buf[r.idx : r.idx+newSize])
	r.headerCount++
	if r.headerCount > int(r.limits.Headers.Maximal) {
		r.fail(ErrInvalidData)
		return
	}
	r.code = FieldName
	r.state = sColon
	return

colon:
	rem = r.buf[r.idx+r.tokenSize:]
	if len(rem) == 0 {
		r.code = ErrInsufficientData
		return
	}
	if rem[0] != ':' {
		r.fail(ErrInvalidData)
		return
	}
	r.tokenSize = 1
	r.code = Skip
	r.state = sOWSAfterColon
	return

owsAfterColon:
	oldSize = r.tokenSize
	rem = r.buf[r.idx+oldSize:]
	n = scanWhile(rem, isOWS)
	newSize = oldSize + n
	if n == len(rem) {
		r.tokenSize = newSize
		if newSize > int(r.limits.FieldValue.Maximal) {
			r.fail(ErrInvalidData)
			return
		}
		r.code = ErrInsufficientData
		return
	}
	r.tokenSize = newSize
	if newSize == 0 {
		r.state = sFieldValue
		goto fieldValue
	}
	r.code = Skip
	r.state = sFieldValue
	return

fieldValue:
	oldSize = r.tokenSize
	rem = r.buf[r.idx+oldSize:]
	n = scanWhile(rem, isFieldValueChar)
	newSize = oldSize + n
	if n == len(rem) {
		r.tokenSize = newSize
		if newSize > int(r.limits.FieldValue.Maximal) {
			r.fail(ErrInvalidData)
			return
		}
		r.code = ErrInsufficientData
		return
	}
	r.tokenSize = newSize
	if rem[n] != '\r' {
		r.fail(ErrInvalidData)
		return
	}
	sideEffect = r.applyHeaderSideEffect()
	if sideEffect != None {
		r.fail(sideEffect)
		return
	}
	r.code = FieldValue
	r.state = sCRLFAfterFieldValue
	return

crlfAfterFieldValue:
	oldSize = r.tokenSize
	rem = r.buf[r.idx+oldSize:]
	n = matchLiteral(rem, crlfLiteral[oldSize:])
	newSize = oldSize + n
	r.tokenSize = newSize
	if newSize < len(crlfLiteral) {
		if n < len(rem) {
			r.fail(ErrInvalidData)
			return
		}
		r.code = ErrInsufficientData
		return
	}
	r.code = Skip
	r.state = sFieldName
	return

lfAfterHeaders:
	oldSize = r.tokenSize
	rem = r.buf[r.idx+oldSize:]
	n = matchLiteral(rem, crlfLiteral[oldSize:])
	newSize = oldSize + n
	r.tokenSize = newSize
	if newSize < len(crlfLiteral) {
		if n < len(rem) {
			r.fail(ErrInvalidData)
			return
		}
		r.code = ErrInsufficientData
		return
	}
	r.code = EndOfHeaders
	r.state = sResolveFraming
	return

resolveFraming:
	if r.versionState == versionHTTP11HostNotSeen {
		r.fail(ErrNoHost)
		return
	}
	if r.seenTransferEncoding {
		if r.teChunkedCount == 0 {
			r.fail(ErrInvalidTransferEncoding)
			return
		}
		r.bodyType = bodyChunked
		r.state = sChunkSize
		goto chunkSize
	}
	if r.seenContentLength {
		r.bodyType = bodyContentLength
		if r.contentLength > 0 {
			r.chunkLeft = r.contentLength
			r.state = sBody
			goto body
		}
	}
	r.state = sEndOfBody
	goto endOfBody

endOfBody:
	r.tokenSize = 0
	r.code = EndOfBody
	r.state = sEndOfMessage
	return

endOfMessage:
	r.tokenSize = 0
	r.code = EndOfMessage
	r.state = sMethod
	r.resetPerMessage()
	return

body:
	oldSize = r.tokenSize
	rem = r.buf[r.idx+oldSize:]
	avail = len(rem)
	if uint64(avail) >= r.chunkLeft {
		take = r.chunkLeft
	} else {
		take = uint64(avail)
	}
	r.chunkLeft -= take
	r.tokenSize = oldSize + int(take)
	if r.chunkLeft == 0 {
		r.code = BodyChunk
		r.state = sEndOfBody
		return
	}
	if take == 0 {
		r.code = ErrInsufficientData
		return
	}
	r.code = BodyChunk
	r.state = sBody
	return

chunkSize:
	oldSize = r.tokenSize
	rem = r.buf[r.idx+oldSize:]
	n = scanWhile(rem, isHexDigit)
	newSize = oldSize + n
	if n == len(rem) {
		r.tokenSize = newSize
		if newSize > maxChunkSizeDigits {
			r.fail(ErrChunkSizeOverflow)
			return
		}
		r.code = ErrInsufficientData
		return
	}
	r.tokenSize = newSize
	if newSize == 0 {
		r.fail(ErrInvalidData)
		return
	}
	decoded, decodeRes = decodeHex(r.buf[r.idx : r.idx+newSize])
	if decodeRes == DecodeOverflow {
		r.fail(ErrChunkSizeOverflow)
		return
	}
	if decodeRes == DecodeInvalid {
		r.fail(ErrInvalidData)
		return
	}
	r.chunkLeft = decoded
	r.lastChunk = decoded == 0
	r.code = Skip
	r.state = sChunkExt
	return

chunkExt:
	oldSize = r.tokenSize
	rem = r.buf[r.idx+oldSize:]
	n = scanWhile(rem, isChunkExtChar)
	newSize = oldSize + n
	if n == len(rem) {
		r.tokenSize = newSize
		if newSize > int(r.limits.ChunkExt.Maximal) {
			r.fail(ErrInvalidData)
			return
		}
		r.code = ErrInsufficientData
		return
	}
	r.tokenSize = newSize
	if newSize == 0 {
		r.state = sCRLFAfterChunkExt
		goto crlfAfterChunkExt
	}
	r.code = Skip
	r.state = sCRLFAfterChunkExt
	return

crlfAfterChunkExt:
	oldSize = r.tokenSize
	rem = r.buf[r.idx+oldSize:]
	n = matchLiteral(rem, crlfLiteral[oldSize:])
	newSize = oldSize + n
	r.tokenSize = newSize
	if newSize < len(crlfLiteral) {
		if n < len(rem) {
			r.fail(ErrInvalidData)
			return
		}
		r.code = ErrInsufficientData
		return
	}
	if r.lastChunk {
		r.code = EndOfBody
		r.state = sTrailerName
		return
	}
	r.code = Skip
	r.state = sChunkData
	return

chunkData:
	oldSize = r.tokenSize
	rem = r.buf[r.idx+oldSize:]
	avail = len(rem)
	if uint64(avail) >= r.chunkLeft {
		take = r.chunkLeft
	} else {
		take = uint64(avail)
	}
	r.chunkLeft -= take
	r.tokenSize = oldSize + int(take)
	if r.chunkLeft == 0 {
		r.code = BodyChunk
		r.state = sCRLFAfterChunkData
		return
	}
	if take == 0 {
		r.code = ErrInsufficientData
		return
	}
	r.code = BodyChunk
	r.state = sChunkData
	return

crlfAfterChunkData:
	oldSize = r.tokenSize
	rem = r.buf[r.idx+oldSize:]
	n = matchLiteral(rem, crlfLiteral[oldSize:])
	newSize = oldSize + n
	r.tokenSize = newSize
	if newSize < len(crlfLiteral) {
		if n < len(rem) {
			r.fail(ErrInvalidData)
			return
		}
		r.code = ErrInsufficientData
		return
	}
	r.code = Skip
	r.state = sChunkSize
	return

trailerName:
	oldSize = r.tokenSize
	rem = r.buf[r.idx+oldSize:]
	n = scanWhile(rem, isTchar)
	newSize = oldSize + n
	if n == len(rem) {
		r.tokenSize = newSize
		if newSize > int(r.limits.FieldName.Maximal) {
			r.fail(ErrInvalidData)
			return
		}
		r.code = ErrInsufficientData
		return
	}
	if newSize == 0 {
		if rem[n] == '\r' {
			r.tokenSize = 0
			r.state = sLFAfterTrailers
			goto lfAfterTrailers
		}
		r.fail(ErrInvalidData)
		return
	}
	if rem[n] != ':' {
		r.fail(ErrInvalidData)
		return
	}
	r.tokenSize = newSize
	r.trailerCount++
	if r.trailerCount > int(r.limits.Headers.Maximal) {
		r.fail(ErrInvalidData)
		return
	}
	r.code = FieldName
	r.state = sTrailerColon
	return

trailerColon:
	rem = r.buf[r.idx+r.tokenSize:]
	if len(rem) == 0 {
		r.code = ErrInsufficientData
		return
	}
	if rem[0] != ':' {
		r.fail(ErrInvalidData)
		return
	}
	r.tokenSize = 1
	r.code = Skip
	r.state = sOWSAfterTrailerColon
	return

owsAfterTrailerColon:
	oldSize = r.tokenSize
	rem = r.buf[r.idx+oldSize:]
	n = scanWhile(rem, isOWS)
	newSize = oldSize + n
	if n == len(rem) {
		r.tokenSize = newSize
		if newSize > int(r.limits.FieldValue.Maximal) {
			r.fail(ErrInvalidData)
			return
		}
		r.code = ErrInsufficientData
		return
	}
	r.tokenSize = newSize
	if newSize == 0 {
		r.state = sTrailerValue
		goto trailerValue
	}
	r.code = Skip
	r.state = sTrailerValue
	return

trailerValue:
	oldSize = r.tokenSize
	rem = r.buf[r.idx+oldSize:]
	n = scanWhile(rem, isFieldValueChar)
	newSize = oldSize + n
	if n == len(rem) {
		r.tokenSize = newSize
		if newSize > int(r.limits.FieldValue.Maximal) {
			r.fail(ErrInvalidData)
			return
		}
		r.code = ErrInsufficientData
		return
	}
	r.tokenSize = newSize
	if rem[n] != '\r' {
		r.fail(ErrInvalidData)
		return
	}
	r.code = FieldValue
	r.state = sCRLFAfterTrailerValue
	return

crlfAfterTrailerValue:
	oldSize = r.tokenSize
	rem = r.buf[r.idx+oldSize:]
	n = matchLiteral(rem, crlfLiteral[oldSize:])
	newSize = oldSize + n
	r.tokenSize = newSize
	if newSize < len(crlfLiteral) {
		if n < len(rem) {
			r.fail(ErrInvalidData)
			return
		}
		r.code = ErrInsufficientData
		return
	}
	r.code = Skip
	r.state = sTrailerName
	return

lfAfterTrailers:
	oldSize = r.tokenSize
	rem = r.buf[r.idx+oldSize:]
	n = matchLiteral(rem, crlfLiteral[oldSize:])
	newSize = oldSize + n
	r.tokenSize = newSize
	if newSize < len(crlfLiteral) {
		if n < len(rem) {
			r.fail(ErrInvalidData)
			return
		}
		r.code = ErrInsufficientData
		return
	}
	r.code = EndOfMessage
	r.state = sMethod
	r.resetPerMessage()
	return
}

// applyHeaderSideEffect runs at field_value completion time, per spec
// §4.4, acting on whichever framing-relevant header pendingHeader names.
// It returns None on success, or the error_* code the message should
// fail with.
func (r *Reader) applyHeaderSideEffect() Code {
	switch r.pendingHeader {
	case headerKindHost:
		if r.versionState == versionHTTP11HostNotSeen {
			r.versionState = versionHTTP11HostSeen
		}
		return None

	case headerKindContentLength:
		// Transfer-Encoding dominates (RFC 7230 §3.3.3 rule 3): once it has
		// been seen, a Content-Length is left unchanged rather than erroring.
		if r.seenTransferEncoding {
			return None
		}
		if r.seenContentLength {
			return ErrInvalidContentLength
		}

		value, res := decodeDecimal(trimTrailingOWSBytes(r.Bytes()))
		switch res {
		case DecodeOverflow:
			return ErrContentLengthOverflow
		case DecodeInvalid:
			return ErrInvalidContentLength
		}

		r.contentLength = value
		r.seenContentLength = true
		return None

	case headerKindTransferEncoding:
		// A Transfer-Encoding after chunked-final is a second terminated
		// chunked body and stays an error; one after content-length-known
		// is the one intentional non-monotonic override (RFC 7230 §3.3.3
		// rule 3), so the prior Content-Length is discarded here.
		if r.teChunkedCount > 0 {
			return ErrInvalidTransferEncoding
		}

		result, total := analyzeTransferEncoding(uf.B2S(trimTrailingOWSBytes(r.Bytes())), r.teChunkedCount)
		if result == teInvalid {
			return ErrInvalidTransferEncoding
		}

		r.seenContentLength = false
		r.contentLength = 0
		r.teChunkedCount = total
		r.seenTransferEncoding = true
		return None

	case headerKindTrailerAnnounce:
		r.trailerAnnounced = true
		return None

	default:
		return None
	}
}

func classifyFieldName(name []byte) headerKind {
	s := uf.B2S(name)

	switch {
	case strcomp.EqualFold(s, "host"):
		return headerKindHost
	case strcomp.EqualFold(s, "content-length"):
		return headerKindContentLength
	case strcomp.EqualFold(s, "transfer-encoding"):
		return headerKindTransferEncoding
	case strcomp.EqualFold(s, "trailer"):
		return headerKindTrailerAnnounce
	default:
		return headerKindOther
	}
}

func scanWhile(data []byte, pred func(byte) bool) int {
	i := 0
	for i < len(data) && pred(data[i]) {
		i++
	}

	return i
}

func matchLiteral(data, literal []byte) int {
	i := 0
	for i < len(data) && i < len(literal) && data[i] == literal[i] {
		i++
	}

	return i
}

func trimTrailingOWSBytes(b []byte) []byte {
	for len(b) > 0 && isOWS(b[len(b)-1]) {
		b = b[:len(b)-1]
	}

	return b
}

func trimTrailingOWSString(s string) string {
	for len(s) > 0 && isOWS(s[len(s)-1]) {
		s = s[:len(s)-1]
	}

	return s
}

package reqread

// parserState is the internal position of the request state machine.
// Each CR-LF pair that the grammar requires is matched by a single
// state as a two-byte literal, rather than splitting CR and LF across
// two states — a partial match just leaves token_size at 1 and resumes
// at the same label.
type parserState uint8

const (
	sMethod parserState = iota + 1
	sSPAfterMethod
	sRequestTarget
	sStaticAfterTarget
	sVersion
	sCRLFAfterVersion

	sFieldName
	sColon
	sOWSAfterColon
	sFieldValue
	sCRLFAfterFieldValue
	sLFAfterHeaders
	sResolveFraming

	sEndOfBody
	sEndOfMessage

	sBody

	sChunkSize
	sChunkExt
	sCRLFAfterChunkExt
	sChunkData
	sCRLFAfterChunkData

	sTrailerName
	sTrailerColon
	sOWSAfterTrailerColon
	sTrailerValue
	sCRLFAfterTrailerValue
	sLFAfterTrailers

	sErrored
)

// bodyType tracks the framing decision reached at end of headers, per
// spec §3.
type bodyType uint8

const (
	bodyNone bodyType = iota
	bodyContentLength
	bodyChunked
)

// versionState tracks the Host-required policy of spec §4.4: HTTP/1.0
// never requires Host, HTTP/1.1 and above do, unless/until one is seen.
type versionState uint8

const (
	versionHTTP10 versionState = iota
	versionHTTP11HostNotSeen
	versionHTTP11HostSeen
)

// headerKind remembers, between a field_name token completing and its
// field_value token completing, which framing-relevant header (if any)
// is being read, so the value's side effect (spec §4.4) knows what to do
// once the value is fully scanned.
type headerKind uint8

const (
	headerKindOther headerKind = iota
	headerKindHost
	headerKindContentLength
	headerKindTransferEncoding
	headerKindTrailerAnnounce
)

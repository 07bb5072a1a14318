package wire

import "errors"

// Sentinel errors returned by the codec. Callers should check these with
// errors.Is rather than comparing strings; internal call sites wrap them
// with fmt.Errorf("...: %w", ...) to add positional context.
var (
	// ErrInvalid marks a bad argument or malformed wire data: a NULL/empty
	// name, a reserved label-length bit pattern, or a forward-pointing
	// compression pointer.
	ErrInvalid = errors.New("tinydns: invalid argument or malformed message")

	// ErrNoBuf marks a capacity or underflow failure: the writer ran out of
	// room, or the reader ran out of bytes mid-field.
	ErrNoBuf = errors.New("tinydns: buffer exhausted")

	// ErrExhausted is the pull-style iterator's signal that every record the
	// header promised has been yielded. ForEach maps it back to nil, mirroring
	// the NO_BUF-at-exhaustion -> NONE translation in the wire protocol.
	ErrExhausted = errors.New("tinydns: iterator exhausted")
)

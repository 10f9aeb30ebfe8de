// Package wire reads the RFC 4251 scalar types found in SSH
// certificates: big-endian uint32 and uint64, and the length-prefixed
// string (a uint32 length followed by that many opaque bytes). An
// mpint is framed identically to a string and is treated as one.
//
// All readers are zero-copy: returned byte slices alias the input
// buffer and remain valid for as long as it does.
package wire

import (
	"encoding/binary"
	"errors"
)

var (
	// ErrMalformedInteger is returned when a fixed-width integer read
	// would overrun the buffer.
	ErrMalformedInteger = errors.New("wire: malformed integer")

	// ErrMalformedString is returned when a string's declared length
	// overruns the buffer.
	ErrMalformedString = errors.New("wire: malformed string")
)

// ReadUint32 consumes 4 big-endian bytes from in.
func ReadUint32(in []byte) (v uint32, rest []byte, err error) {
	if len(in) < 4 {
		return 0, in, ErrMalformedInteger
	}
	return binary.BigEndian.Uint32(in), in[4:], nil
}

// ReadUint64 consumes 8 big-endian bytes from in.
func ReadUint64(in []byte) (v uint64, rest []byte, err error) {
	if len(in) < 8 {
		return 0, in, ErrMalformedInteger
	}
	return binary.BigEndian.Uint64(in), in[8:], nil
}

// ReadString consumes a uint32 length followed by that many bytes and
// returns the payload as a subslice of in. A zero length is valid and
// yields an empty slice.
func ReadString(in []byte) (s, rest []byte, err error) {
	if len(in) < 4 {
		return nil, in, ErrMalformedString
	}
	length := binary.BigEndian.Uint32(in)
	if uint64(length)+4 > uint64(len(in)) {
		return nil, in, ErrMalformedString
	}
	return in[4 : 4+length], in[4+length:], nil
}

// StringSize is the encoded size of a string carrying payload, the
// length prefix included.
func StringSize(payload []byte) int {
	return 4 + len(payload)
}

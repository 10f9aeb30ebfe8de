package sshcert

import (
	"bytes"
	"encoding/base64"
)

// An Envelope is the textual outer form of a certificate: the magic
// name, the decoded binary blob and an optional trailing comment. The
// envelope owns the blob; certificates parsed from it borrow from the
// blob and must not outlive it.
type Envelope struct {
	Magic   string
	Blob    []byte
	Comment string
}

// DecodeEnvelope parses a one-line textual certificate of the form
//
//	<magic> <base64-payload>[ <comment>]
//
// tolerating surrounding whitespace and a trailing newline. The base64
// payload is decoded into a freshly allocated buffer of exactly the
// decoded size. Parsing copies nothing out of this buffer: certificate
// fields alias it.
func DecodeEnvelope(line []byte) (*Envelope, error) {
	magic, b64, comment, err := splitEnvelope(line)
	if err != nil {
		return nil, err
	}
	// DecodedLen counts padding characters as data; take them off so
	// the buffer is exactly the decoded size.
	size := base64.StdEncoding.DecodedLen(len(b64))
	if pad := len(b64) - len(bytes.TrimRight(b64, "=")); pad <= 2 && pad <= size {
		size -= pad
	}
	blob := make([]byte, size)
	n, err := base64.StdEncoding.Decode(blob, b64)
	if err != nil {
		return nil, ErrFailToParse
	}
	return &Envelope{Magic: string(magic), Blob: blob[:n], Comment: string(comment)}, nil
}

// DecodeEnvelopeInPlace is DecodeEnvelope without the allocation: the
// base64 payload is decoded over the line's own storage, which the
// caller must own and be willing to have overwritten. The returned
// blob is a subslice of line.
func DecodeEnvelopeInPlace(line []byte) (*Envelope, error) {
	magic, b64, comment, err := splitEnvelope(line)
	if err != nil {
		return nil, err
	}
	// Decoded output is strictly shorter than the base64 input and the
	// decoder consumes ahead of where it writes, so decoding onto the
	// payload's own bytes is safe.
	n, err := base64.StdEncoding.Decode(b64, b64)
	if err != nil {
		return nil, ErrFailToParse
	}
	return &Envelope{Magic: string(magic), Blob: b64[:n], Comment: string(comment)}, nil
}

func splitEnvelope(line []byte) (magic, b64, comment []byte, err error) {
	line = bytes.TrimSpace(line)
	magic, rest, found := bytes.Cut(line, []byte(" "))
	if !found || len(magic) == 0 {
		return nil, nil, nil, ErrFailToParse
	}
	b64, comment, _ = bytes.Cut(rest, []byte(" "))
	if len(b64) == 0 {
		return nil, nil, nil, ErrFailToParse
	}
	return magic, b64, comment, nil
}

// Parse decodes the envelope's blob and checks that the textual magic
// agrees with the binary one.
func (e *Envelope) Parse() (*Certificate, error) {
	c, err := Parse(e.Blob)
	if err != nil {
		return nil, err
	}
	if e.Magic != c.Algo {
		return nil, ErrMalformedCertificate
	}
	return c, nil
}

// Decode is the all-in-one entry point: envelope decoding followed by
// certificate parsing, with the textual/binary magic cross-check.
func Decode(line []byte) (*Certificate, error) {
	e, err := DecodeEnvelope(line)
	if err != nil {
		return nil, err
	}
	return e.Parse()
}

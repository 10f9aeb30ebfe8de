package sshcert

import (
	"errors"

	"github.com/cashier-go/sshcert/wire"
)

// Decoding failures. Every fault is one of these sentinel values;
// callers match with errors.Is. No partial certificate is ever
// returned alongside an error.
var (
	// ErrFailToParse means the textual envelope lacks a payload token
	// or its payload is not valid base64.
	ErrFailToParse = errors.New("sshcert: no certificate payload")

	// ErrInvalidMagicString means the leading magic of the blob is not
	// one of the known certificate algorithm names.
	ErrInvalidMagicString = errors.New("sshcert: unknown certificate type")

	// ErrMalformedCertificate means the blob dispatched on a known
	// magic but violates the certificate structure: an unknown
	// certificate kind, a textual/binary magic mismatch, or trailing
	// bytes after the final field.
	ErrMalformedCertificate = errors.New("sshcert: malformed certificate")

	// ErrMalformedInteger and ErrMalformedString are the wire-level
	// bounds failures, re-exported so callers need only this package.
	ErrMalformedInteger = wire.ErrMalformedInteger
	ErrMalformedString  = wire.ErrMalformedString

	// ErrRepeatedExtension means an extension name appeared twice.
	ErrRepeatedExtension = errors.New("sshcert: repeated extension")

	// ErrUnknownExtension means an unrecognized extension name.
	ErrUnknownExtension = errors.New("sshcert: unknown extension")
)

// Package verifier checks certificate signatures. It is the pluggable
// collaborator the sshcert decoder hands its three byte ranges to: the
// signed prefix, the signature key and the signature. The default
// implementation is backed by golang.org/x/crypto/ssh.
package verifier

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/cashier-go/sshcert"
	"github.com/cashier-go/sshcert/wire"
	"golang.org/x/crypto/ssh"
)

// ErrUntrustedCA is returned when the signature key is not in the
// verifier's CA allow-list.
var ErrUntrustedCA = errors.New("verifier: signature key is not a trusted CA")

// A Verifier checks a signature over a message. The message is the
// certificate's signed prefix; signatureKey and signature are the raw
// field bytes from the certificate.
type Verifier interface {
	Verify(message, signatureKey, signature []byte) error
}

// SSHVerifier verifies signatures with x/crypto/ssh. The zero value
// accepts any structurally valid CA key; WithAuthorizedCAs restricts
// it to an allow-list.
type SSHVerifier struct {
	authorized [][]byte // marshaled public keys
}

// Option configures an SSHVerifier.
type Option func(*SSHVerifier)

// WithAuthorizedCAs restricts verification to certificates signed by
// one of the given keys.
func WithAuthorizedCAs(keys ...ssh.PublicKey) Option {
	return func(v *SSHVerifier) {
		for _, k := range keys {
			v.authorized = append(v.authorized, k.Marshal())
		}
	}
}

// New returns an x/crypto-backed Verifier.
func New(opts ...Option) *SSHVerifier {
	v := &SSHVerifier{}
	for _, o := range opts {
		o(v)
	}
	return v
}

// Verify parses signatureKey as an SSH public key, checks it against
// the allow-list if one was configured, splits signature into its
// format and blob halves, and verifies it over message.
func (v *SSHVerifier) Verify(message, signatureKey, signature []byte) error {
	key, err := ssh.ParsePublicKey(signatureKey)
	if err != nil {
		return fmt.Errorf("verifier: bad signature key: %w", err)
	}
	if len(v.authorized) > 0 {
		marshaled := key.Marshal()
		trusted := false
		for _, a := range v.authorized {
			if bytes.Equal(a, marshaled) {
				trusted = true
				break
			}
		}
		if !trusted {
			return ErrUntrustedCA
		}
	}

	// A signature is itself two strings: the algorithm name and the
	// signature blob.
	format, rest, err := wire.ReadString(signature)
	if err != nil {
		return fmt.Errorf("verifier: bad signature: %w", err)
	}
	blob, _, err := wire.ReadString(rest)
	if err != nil {
		return fmt.Errorf("verifier: bad signature: %w", err)
	}
	return key.Verify(message, &ssh.Signature{Format: string(format), Blob: blob})
}

// VerifyCertificate checks c's signature with v.
func VerifyCertificate(v Verifier, c *sshcert.Certificate) error {
	return v.Verify(c.SignedPrefix(), c.SignatureKey, c.Signature)
}

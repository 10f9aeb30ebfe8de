// Package sshcert decodes OpenSSH certificates from their textual
// authorized-keys form and their binary wire form into typed views.
//
// Decoding is one-way and zero-copy: every byte field of a parsed
// Certificate is a subslice of the decoded blob, which the certificate
// retains as its lifetime anchor. The package performs no cryptography;
// signature checking is handed off through SignedPrefix, SignatureKey
// and Signature (see the verifier package).
package sshcert

// Certificate algorithm names from [PROTOCOL.certkeys]. These are the
// only magics this package accepts. The three RSA names share one
// certificate layout and differ only in the signature algorithm they
// imply.
const (
	CertAlgoRSAv01       = "ssh-rsa-cert-v01@openssh.com"
	CertAlgoDSAv01       = "ssh-dss-cert-v01@openssh.com"
	CertAlgoECDSA256v01  = "ecdsa-sha2-nistp256-cert-v01@openssh.com"
	CertAlgoECDSA384v01  = "ecdsa-sha2-nistp384-cert-v01@openssh.com"
	CertAlgoECDSA521v01  = "ecdsa-sha2-nistp521-cert-v01@openssh.com"
	CertAlgoED25519v01   = "ssh-ed25519-cert-v01@openssh.com"
	CertAlgoRSASHA256v01 = "rsa-sha2-256-cert-v01@openssh.com"
	CertAlgoRSASHA512v01 = "rsa-sha2-512-cert-v01@openssh.com"
)

// CertKind is the uint32 following the serial, restricting what the
// certificate identifies.
type CertKind uint32

const (
	UserCert CertKind = 1
	HostCert CertKind = 2
)

// String returns "user", "host" or "unknown".
func (k CertKind) String() string {
	switch k {
	case UserCert:
		return "user"
	case HostCert:
		return "host"
	}
	return "unknown"
}

// Known critical option names. Anything else is surfaced by the
// options iterator with Known == false and left to the caller.
const (
	OptionForceCommand   = "force-command"
	OptionSourceAddress  = "source-address"
	OptionVerifyRequired = "verify-required"
)

// ExtensionFlags is the bitmask produced by folding a certificate's
// extensions sequence.
type ExtensionFlags uint32

const (
	ExtNoTouchRequired ExtensionFlags = 1 << iota
	ExtPermitX11Forwarding
	ExtPermitAgentForwarding
	ExtPermitPortForwarding
	ExtPermitPTY
	ExtPermitUserRC
)

var extensionBits = map[string]ExtensionFlags{
	"no-touch-required":       ExtNoTouchRequired,
	"permit-X11-forwarding":   ExtPermitX11Forwarding,
	"permit-agent-forwarding": ExtPermitAgentForwarding,
	"permit-port-forwarding":  ExtPermitPortForwarding,
	"permit-pty":              ExtPermitPTY,
	"permit-user-rc":          ExtPermitUserRC,
}

// Names lists the extension names set in f, in bit order.
func (f ExtensionFlags) Names() []string {
	ordered := []string{
		"no-touch-required",
		"permit-X11-forwarding",
		"permit-agent-forwarding",
		"permit-port-forwarding",
		"permit-pty",
		"permit-user-rc",
	}
	var names []string
	for _, n := range ordered {
		if f&extensionBits[n] != 0 {
			names = append(names, n)
		}
	}
	return names
}

// PublicKey is the variant-specific head of a certificate: the public
// key material between the nonce and the serial. The concrete type is
// one of RSAPublicKey, DSAPublicKey, ECDSAPublicKey or
// Ed25519PublicKey.
type PublicKey interface {
	isPublicKey()
}

// RSAPublicKey holds the RSA head fields as raw mpints.
type RSAPublicKey struct {
	E, N []byte
}

// DSAPublicKey holds the DSA head fields as raw mpints.
type DSAPublicKey struct {
	P, Q, G, Y []byte
}

// ECDSAPublicKey holds the ECDSA head fields: the curve name and the
// encoded point.
type ECDSAPublicKey struct {
	Curve     []byte
	PublicKey []byte
}

// Ed25519PublicKey holds the raw 32-byte ed25519 public key.
type Ed25519PublicKey struct {
	PublicKey []byte
}

func (RSAPublicKey) isPublicKey()     {}
func (DSAPublicKey) isPublicKey()     {}
func (ECDSAPublicKey) isPublicKey()   {}
func (Ed25519PublicKey) isPublicKey() {}

// A Certificate is a decoded view of one OpenSSH certificate. All byte
// fields alias the blob the certificate was parsed from; the blob must
// not be mutated or freed while the certificate is in use.
type Certificate struct {
	Algo  string // binary magic
	Nonce []byte
	Key   PublicKey

	Serial          uint64
	Kind            CertKind
	KeyID           []byte
	ValidPrincipals []byte // sequence of strings; see Principals
	ValidAfter      uint64
	ValidBefore     uint64
	CriticalOptions []byte // sequence of (name, value) pairs; see Options
	Extensions      []byte // sequence of (name, "") pairs; see ExtensionFlags
	Reserved        []byte
	SignatureKey    []byte
	Signature       []byte

	raw             []byte
	signedPrefixLen int
}

// Raw returns the full binary blob the certificate was parsed from.
func (c *Certificate) Raw() []byte { return c.raw }

// SignedPrefixLen returns the length of the blob prefix covered by the
// signature: everything up to the signature field's length prefix.
func (c *Certificate) SignedPrefixLen() int { return c.signedPrefixLen }

// SignedPrefix returns the message an external verifier checks against
// SignatureKey and Signature.
func (c *Certificate) SignedPrefix() []byte { return c.raw[:c.signedPrefixLen] }

// Principals returns an iterator over the certificate's valid
// principals.
func (c *Certificate) Principals() *Principals {
	return &Principals{blob: c.ValidPrincipals}
}

// Options returns an iterator over the certificate's critical options.
func (c *Certificate) Options() *CriticalOptions {
	return &CriticalOptions{blob: c.CriticalOptions}
}

// ExtensionFlags folds the certificate's extensions sequence into a
// bitmask.
func (c *Certificate) ExtensionFlags() (ExtensionFlags, error) {
	return FoldExtensions(c.Extensions)
}

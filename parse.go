package sshcert

import "github.com/cashier-go/sshcert/wire"

// Parse decodes a binary certificate blob. The returned certificate
// borrows from blob, which must stay immutable while the certificate
// is in use. Parsing is a single top-down pass; on any structural
// fault the matching sentinel error is returned and no certificate is
// produced.
func Parse(blob []byte) (*Certificate, error) {
	magic, rest, err := wire.ReadString(blob)
	if err != nil {
		return nil, err
	}

	c := &Certificate{raw: blob}
	switch string(magic) {
	case CertAlgoRSAv01, CertAlgoRSASHA256v01, CertAlgoRSASHA512v01:
		rest, err = parseRSAHead(c, rest)
	case CertAlgoDSAv01:
		rest, err = parseDSAHead(c, rest)
	case CertAlgoECDSA256v01, CertAlgoECDSA384v01, CertAlgoECDSA521v01:
		rest, err = parseECDSAHead(c, rest)
	case CertAlgoED25519v01:
		rest, err = parseEd25519Head(c, rest)
	default:
		return nil, ErrInvalidMagicString
	}
	if err != nil {
		return nil, err
	}
	c.Algo = string(magic)

	if err := parseTail(c, rest); err != nil {
		return nil, err
	}
	return c, nil
}

func parseRSAHead(c *Certificate, in []byte) ([]byte, error) {
	var key RSAPublicKey
	var err error
	if c.Nonce, in, err = wire.ReadString(in); err != nil {
		return nil, err
	}
	if key.E, in, err = wire.ReadString(in); err != nil {
		return nil, err
	}
	if key.N, in, err = wire.ReadString(in); err != nil {
		return nil, err
	}
	c.Key = key
	return in, nil
}

func parseDSAHead(c *Certificate, in []byte) ([]byte, error) {
	var key DSAPublicKey
	var err error
	if c.Nonce, in, err = wire.ReadString(in); err != nil {
		return nil, err
	}
	for _, field := range []*[]byte{&key.P, &key.Q, &key.G, &key.Y} {
		if *field, in, err = wire.ReadString(in); err != nil {
			return nil, err
		}
	}
	c.Key = key
	return in, nil
}

func parseECDSAHead(c *Certificate, in []byte) ([]byte, error) {
	var key ECDSAPublicKey
	var err error
	if c.Nonce, in, err = wire.ReadString(in); err != nil {
		return nil, err
	}
	if key.Curve, in, err = wire.ReadString(in); err != nil {
		return nil, err
	}
	if key.PublicKey, in, err = wire.ReadString(in); err != nil {
		return nil, err
	}
	c.Key = key
	return in, nil
}

func parseEd25519Head(c *Certificate, in []byte) ([]byte, error) {
	var key Ed25519PublicKey
	var err error
	if c.Nonce, in, err = wire.ReadString(in); err != nil {
		return nil, err
	}
	if key.PublicKey, in, err = wire.ReadString(in); err != nil {
		return nil, err
	}
	c.Key = key
	return in, nil
}

// parseTail consumes the fields every variant shares, from the serial
// through the signature, and requires the blob to end exactly there.
func parseTail(c *Certificate, in []byte) error {
	var err error
	if c.Serial, in, err = wire.ReadUint64(in); err != nil {
		return err
	}

	var kind uint32
	if kind, in, err = wire.ReadUint32(in); err != nil {
		return err
	}
	if kind != uint32(UserCert) && kind != uint32(HostCert) {
		return ErrMalformedCertificate
	}
	c.Kind = CertKind(kind)

	if c.KeyID, in, err = wire.ReadString(in); err != nil {
		return err
	}
	if c.ValidPrincipals, in, err = wire.ReadString(in); err != nil {
		return err
	}
	if c.ValidAfter, in, err = wire.ReadUint64(in); err != nil {
		return err
	}
	if c.ValidBefore, in, err = wire.ReadUint64(in); err != nil {
		return err
	}
	if c.CriticalOptions, in, err = wire.ReadString(in); err != nil {
		return err
	}
	if c.Extensions, in, err = wire.ReadString(in); err != nil {
		return err
	}
	if c.Reserved, in, err = wire.ReadString(in); err != nil {
		return err
	}
	if c.SignatureKey, in, err = wire.ReadString(in); err != nil {
		return err
	}

	// Everything before the signature's length prefix is the message
	// the signature covers.
	c.signedPrefixLen = len(c.raw) - len(in)

	if c.Signature, in, err = wire.ReadString(in); err != nil {
		return err
	}
	if len(in) != 0 {
		return ErrMalformedCertificate
	}
	return nil
}

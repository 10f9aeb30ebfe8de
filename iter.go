package sshcert

import "github.com/cashier-go/sshcert/wire"

// Principals iterates lazily over a certificate's valid principals: a
// sequence of back-to-back length-prefixed strings. The zero offset is
// the start; Reset restarts iteration. The iterator borrows the
// certificate's blob and must not outlive it.
type Principals struct {
	blob []byte
	off  int
}

// Next returns the next principal, or nil once the sequence is
// exhausted. Calling Next past exhaustion keeps returning nil and does
// not advance the cursor.
func (p *Principals) Next() ([]byte, error) {
	if p.Done() {
		return nil, nil
	}
	s, _, err := wire.ReadString(p.blob[p.off:])
	if err != nil {
		return nil, err
	}
	p.off += wire.StringSize(s)
	return s, nil
}

// Done reports whether the sequence is exhausted.
func (p *Principals) Done() bool { return p.off == len(p.blob) }

// Reset restarts iteration from the first principal.
func (p *Principals) Reset() { p.off = 0 }

// Strings drains the iterator into a freshly allocated string slice.
func (p *Principals) Strings() ([]string, error) {
	var out []string
	for !p.Done() {
		s, err := p.Next()
		if err != nil {
			return nil, err
		}
		out = append(out, string(s))
	}
	return out, nil
}

// A CriticalOption is one (name, value) pair from a certificate's
// critical options sequence. Known reports whether the name is one of
// the options defined by OpenSSH; unknown names are surfaced, not
// rejected, and what to do with them is the caller's policy decision.
// The value is opaque; for force-command and source-address it is an
// inner length-prefixed string the caller unwraps.
type CriticalOption struct {
	Name  []byte
	Value []byte
	Known bool
}

// InnerString unwraps the option value as a single length-prefixed
// string, the encoding OpenSSH uses for force-command and
// source-address values.
func (o *CriticalOption) InnerString() ([]byte, error) {
	s, _, err := wire.ReadString(o.Value)
	return s, err
}

// CriticalOptions iterates over a certificate's critical options
// sequence, two strings at a time.
type CriticalOptions struct {
	blob []byte
	off  int
}

// Next returns the next option, or nil once the sequence is exhausted.
func (o *CriticalOptions) Next() (*CriticalOption, error) {
	if o.Done() {
		return nil, nil
	}
	name, rest, err := wire.ReadString(o.blob[o.off:])
	if err != nil {
		return nil, err
	}
	value, _, err := wire.ReadString(rest)
	if err != nil {
		return nil, err
	}
	o.off += wire.StringSize(name) + wire.StringSize(value)
	known := false
	switch string(name) {
	case OptionForceCommand, OptionSourceAddress, OptionVerifyRequired:
		known = true
	}
	return &CriticalOption{Name: name, Value: value, Known: known}, nil
}

// Done reports whether the sequence is exhausted.
func (o *CriticalOptions) Done() bool { return o.off == len(o.blob) }

// Reset restarts iteration from the first option.
func (o *CriticalOptions) Reset() { o.off = 0 }

// FoldExtensions walks an extensions blob as a sequence of (name,
// value) pairs and ORs each name's bit into the result. The pair
// structure must parse even though OpenSSH writes every value as an
// empty string. A name seen twice fails with ErrRepeatedExtension; a
// name with no assigned bit fails with ErrUnknownExtension.
func FoldExtensions(blob []byte) (ExtensionFlags, error) {
	var flags ExtensionFlags
	for len(blob) > 0 {
		name, rest, err := wire.ReadString(blob)
		if err != nil {
			return 0, err
		}
		_, rest, err = wire.ReadString(rest)
		if err != nil {
			return 0, err
		}
		blob = rest

		bit, ok := extensionBits[string(name)]
		if !ok {
			return 0, ErrUnknownExtension
		}
		if flags&bit != 0 {
			return 0, ErrRepeatedExtension
		}
		flags |= bit
	}
	return flags, nil
}

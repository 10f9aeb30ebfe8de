// Package policy evaluates decoded certificates against caller rules:
// kind, validity window, principals, critical options, extensions and
// revocation. The decoder stays policy-free; everything a deployment
// might reject lives here.
package policy

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/cashier-go/sshcert"
	"github.com/hashicorp/go-multierror"
	"github.com/stripe/krl"
	"golang.org/x/crypto/ssh"
)

// ErrRevoked is returned inside the evaluation result when the
// certificate appears in the configured KRL.
var ErrRevoked = errors.New("policy: certificate is revoked")

// Rules is what a certificate must satisfy. Zero values disable the
// corresponding check, except critical options: unknown critical
// options always fail unless AllowUnknownCriticalOptions is set,
// because critical semantics require the verifier to understand them.
type Rules struct {
	// Kind restricts the certificate kind. Zero accepts both.
	Kind sshcert.CertKind

	// Principal must appear in the certificate's valid principals.
	Principal string

	// At is the reference time for the validity window check.
	At time.Time

	// SourceAddr, when set together with a certificate carrying a
	// source-address option, must fall inside one of the option's
	// CIDR blocks.
	SourceAddr net.IP

	// RequiredExtensions are bits that must all be present.
	RequiredExtensions sshcert.ExtensionFlags

	// AllowUnknownCriticalOptions downgrades unknown critical option
	// names from a violation to a pass-through.
	AllowUnknownCriticalOptions bool

	// KRL, when set, rejects revoked certificates.
	KRL *krl.KRL
}

// LoadKRL parses an OpenSSH key revocation list.
func LoadKRL(data []byte) (*krl.KRL, error) {
	return krl.ParseKRL(data)
}

// Evaluate checks c against r and returns every violation at once,
// aggregated the way a caller can report them all to the user.
func Evaluate(c *sshcert.Certificate, r *Rules) error {
	var result error

	if r.Kind != 0 && c.Kind != r.Kind {
		result = multierror.Append(result, fmt.Errorf("policy: certificate is a %s certificate, want %s", c.Kind, r.Kind))
	}

	if !r.At.IsZero() {
		at := uint64(r.At.Unix())
		if at < c.ValidAfter {
			result = multierror.Append(result, errors.New("policy: certificate is not yet valid"))
		}
		if at >= c.ValidBefore {
			result = multierror.Append(result, errors.New("policy: certificate has expired"))
		}
	}

	if r.Principal != "" {
		if err := checkPrincipal(c, r.Principal); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if err := checkOptions(c, r); err != nil {
		result = multierror.Append(result, err)
	}

	if r.RequiredExtensions != 0 {
		flags, err := c.ExtensionFlags()
		if err != nil {
			result = multierror.Append(result, err)
		} else if flags&r.RequiredExtensions != r.RequiredExtensions {
			result = multierror.Append(result, fmt.Errorf("policy: missing extensions: %v", (r.RequiredExtensions &^ flags).Names()))
		}
	}

	if r.KRL != nil {
		if err := checkRevoked(c, r.KRL); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result
}

func checkPrincipal(c *sshcert.Certificate, principal string) error {
	it := c.Principals()
	for !it.Done() {
		p, err := it.Next()
		if err != nil {
			return err
		}
		if string(p) == principal {
			return nil
		}
	}
	return fmt.Errorf("policy: certificate is not valid for principal %q", principal)
}

func checkOptions(c *sshcert.Certificate, r *Rules) error {
	var result error
	it := c.Options()
	for !it.Done() {
		opt, err := it.Next()
		if err != nil {
			return err
		}
		if !opt.Known {
			if !r.AllowUnknownCriticalOptions {
				result = multierror.Append(result, fmt.Errorf("policy: unknown critical option %q", opt.Name))
			}
			continue
		}
		if string(opt.Name) == sshcert.OptionSourceAddress && r.SourceAddr != nil {
			if err := checkSourceAddress(opt, r.SourceAddr); err != nil {
				result = multierror.Append(result, err)
			}
		}
	}
	return result
}

func checkSourceAddress(opt *sshcert.CriticalOption, addr net.IP) error {
	value, err := opt.InnerString()
	if err != nil {
		return err
	}
	nets, err := ParseSourceAddress(value)
	if err != nil {
		return err
	}
	for _, n := range nets {
		if n.Contains(addr) {
			return nil
		}
	}
	return fmt.Errorf("policy: address %s not allowed by source-address", addr)
}

// ParseSourceAddress splits a source-address option value, a
// comma-separated CIDR list, into networks. A bare address is treated
// as a /32 or /128.
func ParseSourceAddress(value []byte) ([]*net.IPNet, error) {
	var nets []*net.IPNet
	for _, part := range strings.Split(string(value), ",") {
		if part == "" {
			continue
		}
		_, n, err := net.ParseCIDR(part)
		if err != nil {
			ip := net.ParseIP(part)
			if ip == nil {
				return nil, fmt.Errorf("policy: bad source-address entry %q", part)
			}
			bits := 32
			if ip.To4() == nil {
				bits = 128
			}
			n = &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)}
		}
		nets = append(nets, n)
	}
	return nets, nil
}

// checkRevoked reparses the raw blob with x/crypto because the KRL
// matcher operates on ssh.PublicKey values.
func checkRevoked(c *sshcert.Certificate, list *krl.KRL) error {
	key, err := ssh.ParsePublicKey(c.Raw())
	if err != nil {
		return fmt.Errorf("policy: %w", err)
	}
	if list.IsRevoked(key) {
		return ErrRevoked
	}
	return nil
}

// Command sshcert-info decodes OpenSSH certificates and prints their
// fields, optionally verifying the signature against a CA public key
// and checking a key revocation list.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/cashier-go/sshcert"
	"github.com/cashier-go/sshcert/lib"
	"github.com/cashier-go/sshcert/policy"
	"github.com/cashier-go/sshcert/verifier"
	"github.com/spf13/pflag"
	"golang.org/x/crypto/ssh"
)

var (
	cfg     = pflag.String("config", "~/.sshcert-info.conf", "Path to config file")
	_       = pflag.String("ca_file", "", "Verify certificates against this CA public key file")
	_       = pflag.String("krl_file", "", "Reject certificates revoked by this KRL file")
	_       = pflag.Bool("verify", false, "Verify certificate signatures")
	version = pflag.Bool("version", false, "Print version and exit")
)

func main() {
	pflag.Parse()
	if *version {
		fmt.Printf("%s\n", lib.Version)
		os.Exit(0)
	}
	log.SetPrefix("sshcert-info: ")
	log.SetFlags(0)

	conf, err := ReadConfig(*cfg)
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}
	if pflag.NArg() == 0 {
		log.Fatal("usage: sshcert-info [flags] <certificate file> ...")
	}

	v, err := newVerifier(conf)
	if err != nil {
		log.Fatal(err)
	}
	rules, err := newRules(conf)
	if err != nil {
		log.Fatal(err)
	}

	failed := false
	for _, path := range pflag.Args() {
		if err := inspect(path, v, rules); err != nil {
			log.Printf("%s: %v", path, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func newVerifier(conf *Config) (*verifier.SSHVerifier, error) {
	if !conf.Verify && conf.CAFile == "" {
		return nil, nil
	}
	var opts []verifier.Option
	if conf.CAFile != "" {
		data, err := os.ReadFile(conf.CAFile)
		if err != nil {
			return nil, fmt.Errorf("unable to read CA key: %v", err)
		}
		key, _, _, _, err := ssh.ParseAuthorizedKey(data)
		if err != nil {
			return nil, fmt.Errorf("unable to parse CA key: %v", err)
		}
		opts = append(opts, verifier.WithAuthorizedCAs(key))
	}
	return verifier.New(opts...), nil
}

func newRules(conf *Config) (*policy.Rules, error) {
	rules := &policy.Rules{
		At:                          time.Now(),
		AllowUnknownCriticalOptions: conf.AllowUnknownCritical,
	}
	if conf.KRLFile == "" {
		return rules, nil
	}
	data, err := os.ReadFile(conf.KRLFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read KRL: %v", err)
	}
	list, err := policy.LoadKRL(data)
	if err != nil {
		return nil, fmt.Errorf("unable to parse KRL: %v", err)
	}
	rules.KRL = list
	return rules, nil
}

func inspect(path string, v *verifier.SSHVerifier, rules *policy.Rules) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	c, err := sshcert.Decode(data)
	if err != nil {
		return err
	}
	printCert(path, c)

	if v != nil {
		if err := verifier.VerifyCertificate(v, c); err != nil {
			return err
		}
		fmt.Println("        Signature: OK")
	}
	return policy.Evaluate(c, rules)
}

func printCert(path string, c *sshcert.Certificate) {
	fmt.Printf("%s:\n", path)
	fmt.Printf("        Type: %s %s certificate\n", c.Algo, c.Kind)
	fmt.Printf("        Key ID: %q\n", c.KeyID)
	fmt.Printf("        Serial: %d\n", c.Serial)
	fmt.Printf("        Valid: from %s to %s\n", lib.FormatValidity(c.ValidAfter), lib.FormatValidity(c.ValidBefore))

	principals, err := c.Principals().Strings()
	if err == nil {
		fmt.Printf("        Principals: %v\n", principals)
	}

	opts := c.Options()
	for !opts.Done() {
		opt, err := opts.Next()
		if err != nil {
			break
		}
		value, ierr := opt.InnerString()
		if ierr != nil {
			value = opt.Value
		}
		fmt.Printf("        Critical option: %s %s\n", opt.Name, value)
	}

	if flags, err := c.ExtensionFlags(); err == nil {
		fmt.Printf("        Extensions: %v\n", flags.Names())
	}
}

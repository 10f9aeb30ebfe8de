package lib

// Version is the release version, overridden at build time with
// -ldflags "-X github.com/cashier-go/sshcert/lib.Version=...".
var Version = "dev"

package version

import (
	"fmt"

	"github.com/standardbeagle/namesake/internal/symbols"
)

// Set at build time:
// go build -ldflags "-X github.com/standardbeagle/namesake/internal/version.Commit=abc123"
var (
	Version   = "0.1.0"
	Commit    = "unknown"
	BuildDate = "development"
)

// BuildID identifies what produced a score: the release plus the digest of
// the dictionaries compiled into the binary. Two builds with equal ids score
// every pair identically for the same config.
func BuildID() string {
	return Version + "+" + symbols.Default().Digest()
}

// String is the line printed by --version
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s, dictionaries %s)",
		Version, Commit, BuildDate, symbols.Default().Digest())
}

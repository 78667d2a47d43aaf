package bbgen

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess        = 0  // Both recipe files were written
	ExitGeneralError   = 1  // Unknown or unclassified error
	ExitUsageError     = 2  // CLI usage error (unexpected args, invalid flags)
	ExitPanic          = 3  // Internal panic (unexpected crash)
	ExitConfigError    = 10 // Invalid manifest, lock file, settings or license metadata
	ExitVCSError       = 11 // A git command exited non-zero
	ExitSourceURIError = 12 // Remote or dependency URI could not be normalized
	ExitRenderFailed   = 13 // Template rendering or file write failed
)

const (
	// ManifestFileName is the project manifest looked up in the project root.
	ManifestFileName = "bbgen.yaml"

	// LockFileName holds the resolved dependency records.
	LockFileName = "bbgen.lock"

	// DefaultServiceUser replaces embedded credentials when an HTTP remote is
	// rewritten to the SSH transport.
	DefaultServiceUser = "git"

	// DefaultChecksumAlgorithm is the LIC_FILES_CHKSUM digest key.
	DefaultChecksumAlgorithm = "md5"

	// SCMGit is the lock record kind for git-sourced dependencies.
	SCMGit = "git"
)

// LicenseCandidates lists the license file names probed in the project root,
// in priority order.
var LicenseCandidates = []string{
	"LICENSE",
	"LICENSE.md",
	"LICENSE.txt",
	"LICENCE",
	"COPYING",
	"COPYING.md",
	"COPYING.txt",
	"COPYING.LIB",
}

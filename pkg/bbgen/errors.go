package bbgen

import (
	"errors"
	"strings"
)

// Sentinel errors for every fatal condition of a generation run.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := srcuri.Extract(deps)
//	if errors.Is(err, bbgen.ErrMalformedDependencyURI) {
//	    // report the offending dependency
//	}
var (
	// ErrInvalidConfig indicates the manifest, lock file or settings are invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrProjectNotFound indicates the working directory has no bbgen.yaml.
	ErrProjectNotFound = errors.New("project manifest not found")

	// ErrMissingLicense indicates the manifest declares no licenses key at all.
	ErrMissingLicense = errors.New("license metadata missing")

	// ErrEmptyLicenseList indicates the licenses key is present but empty.
	ErrEmptyLicenseList = errors.New("license list is empty")

	// ErrVCSCommandFailed indicates a git command exited non-zero.
	ErrVCSCommandFailed = errors.New("version control command failed")

	// ErrUnrecognizedURIFormat indicates a remote URL matched none of the known shapes.
	ErrUnrecognizedURIFormat = errors.New("unrecognized URI format")

	// ErrMalformedDependencyURI indicates a private dependency locator could not be split.
	ErrMalformedDependencyURI = errors.New("malformed dependency URI")

	// ErrRenderFailed indicates a template could not be rendered or written.
	ErrRenderFailed = errors.New("recipe render failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig),
		errors.Is(err, ErrProjectNotFound),
		errors.Is(err, ErrMissingLicense),
		errors.Is(err, ErrEmptyLicenseList):
		return ExitConfigError
	case errors.Is(err, ErrVCSCommandFailed):
		return ExitVCSError
	case errors.Is(err, ErrUnrecognizedURIFormat),
		errors.Is(err, ErrMalformedDependencyURI):
		return ExitSourceURIError
	case errors.Is(err, ErrRenderFailed):
		return ExitRenderFailed
	}

	// Cobra reports usage problems as plain errors
	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts 0 arg(s)",
	"accepts at most",
	"invalid argument",
	"flag needs an argument",
}

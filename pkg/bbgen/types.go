package bbgen

import (
	"context"
	"fmt"
)

// ProjectMetadata is the validated view of the project manifest that feeds
// the recipe assigns.
type ProjectMetadata struct {
	// App is the application token as declared (e.g. "my_app").
	App string

	// Version is the semantic version of the project.
	Version string

	// Description becomes the recipe SUMMARY.
	Description string

	// Homepage becomes the recipe HOMEPAGE.
	Homepage string

	// Licenses is never empty once validated.
	Licenses []string
}

// RemoteRef is the input of source URI normalization.
type RemoteRef struct {
	RawURL string
	Branch string
}

// NormalizedSource is the recipe SRC_URI derived from a RemoteRef.
// It is treated as opaque text once produced.
type NormalizedSource struct {
	URI string
}

func (s NormalizedSource) String() string { return s.URI }

// SCM describes how a dependency is fetched.
type SCM struct {
	// Kind is the lock record kind, e.g. "git" or "hex".
	Kind string

	// URL is the remote locator for git dependencies, the package name otherwise.
	URL string
}

// ResolvedDependency is one entry of the lock file.
type ResolvedDependency struct {
	Name string
	SCM  SCM

	// Lock is the raw positional lock record. The third element is the
	// pinned revision for git dependencies.
	Lock []any
}

// Revision returns the pinned revision from the lock record.
func (d ResolvedDependency) Revision() (string, error) {
	if len(d.Lock) < 3 {
		return "", fmt.Errorf("dependency %q: lock record has %d element(s), revision expected at position 3", d.Name, len(d.Lock))
	}
	rev, ok := d.Lock[2].(string)
	if !ok || rev == "" {
		return "", fmt.Errorf("dependency %q: lock revision is not a non-empty string", d.Name)
	}
	return rev, nil
}

// DependencyRef is a dependency retained by the private-transport filter.
type DependencyRef struct {
	Name             string
	RemoteURL        string
	ResolvedRevision string
}

// FetchDirective is one SRC_URI entry plus the revision it is pinned to.
type FetchDirective struct {
	Name     string
	URI      string
	Revision string
}

// LicenseFile is a LIC_FILES_CHKSUM entry.
type LicenseFile struct {
	// Path is relative to the project root.
	Path string

	// Algorithm is the digest key understood by BitBake, e.g. "md5".
	Algorithm string

	// Digest is the lowercase hex digest of the raw file bytes.
	Digest string
}

func (f LicenseFile) String() string {
	return fmt.Sprintf("file://%s;%s=%s", f.Path, f.Algorithm, f.Digest)
}

// Repository answers the version-control questions a generation run needs.
// All methods return trimmed, non-empty values or an error.
type Repository interface {
	// RemoteURL returns the configured URL of the origin remote.
	RemoteURL(ctx context.Context) (string, error)

	// Revision returns the commit currently checked out.
	Revision(ctx context.Context) (string, error)

	// Branch returns the name of the branch currently checked out.
	Branch(ctx context.Context) (string, error)
}

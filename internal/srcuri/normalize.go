package srcuri

import (
	"fmt"
	"strings"

	"github.com/vvka-141/bbgen/pkg/bbgen"
)

// Normalizer rewrites a project remote into the recipe SRC_URI.
type Normalizer struct {
	// ServiceUser replaces the user of authenticated HTTP remotes.
	// Empty means bbgen.DefaultServiceUser.
	ServiceUser string
}

// Normalize is Normalizer{}.Normalize for a raw URL and branch.
func Normalize(raw, branch string) (bbgen.NormalizedSource, error) {
	return Normalizer{}.Normalize(bbgen.RemoteRef{RawURL: raw, Branch: branch})
}

// Normalize returns the SRC_URI for ref, pinned to ref.Branch.
func (n Normalizer) Normalize(ref bbgen.RemoteRef) (bbgen.NormalizedSource, error) {
	branch := strings.TrimSpace(ref.Branch)
	if branch == "" {
		return bbgen.NormalizedSource{}, fmt.Errorf("branch is required to normalize %q: %w", ref.RawURL, bbgen.ErrInvalidConfig)
	}

	remote, err := Parse(ref.RawURL)
	if err != nil {
		return bbgen.NormalizedSource{}, err
	}

	var uri string
	switch remote.Shape {
	case ShapeAuthenticated:
		if isHTTPScheme(remote.Scheme) {
			uri = sshURI(n.serviceUser(), hostname(remote.Host), remote.Path)
		} else {
			uri = sshURI(remote.User, remote.Host, remote.Path)
		}
	case ShapeSCP:
		uri = sshURI(remote.User, remote.Host, remote.Path)
	case ShapeBare:
		uri = bareURI(remote)
	}

	return bbgen.NormalizedSource{URI: uri + ";branch=" + branch}, nil
}

func (n Normalizer) serviceUser() string {
	if u := strings.TrimSpace(n.ServiceUser); u != "" {
		return u
	}
	return bbgen.DefaultServiceUser
}

func sshURI(user, host, path string) string {
	return fmt.Sprintf("git://%s@%s/%s;protocol=ssh;nobranch=1", user, host, path)
}

// bareURI keeps the original transport as a protocol override. A remote
// without a user still names a fetchable path, so it is not collapsed to the
// host; see "Open question decisions" in DESIGN.md.
func bareURI(r Remote) string {
	if r.Path == "" {
		return "git://" + r.Host
	}
	uri := fmt.Sprintf("git://%s/%s", r.Host, r.Path)
	if r.Scheme != "git" {
		uri += ";protocol=" + r.Scheme
	}
	return uri
}

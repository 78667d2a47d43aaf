package srcuri

import (
	"fmt"
	"sort"

	"github.com/vvka-141/bbgen/pkg/bbgen"
)

// Private returns the git dependencies fetched over the private transport,
// with their pinned revisions, in input order.
func Private(deps []bbgen.ResolvedDependency) ([]bbgen.DependencyRef, error) {
	var refs []bbgen.DependencyRef
	for _, dep := range deps {
		if dep.SCM.Kind != bbgen.SCMGit || !IsPrivate(dep.SCM.URL) {
			continue
		}
		rev, err := dep.Revision()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", bbgen.ErrInvalidConfig, err)
		}
		refs = append(refs, bbgen.DependencyRef{
			Name:             dep.Name,
			RemoteURL:        dep.SCM.URL,
			ResolvedRevision: rev,
		})
	}
	return refs, nil
}

// Extract builds one fetch directive per private dependency, sorted by name.
// A single malformed locator fails the whole extraction.
func Extract(deps []bbgen.ResolvedDependency) ([]bbgen.FetchDirective, error) {
	refs, err := Private(deps)
	if err != nil {
		return nil, err
	}

	directives := make([]bbgen.FetchDirective, 0, len(refs))
	for _, ref := range refs {
		remote, ok := parseSCP(ref.RemoteURL)
		if !ok {
			return nil, fmt.Errorf("dependency %q: %q is not <user>@<host>:<path>: %w", ref.Name, ref.RemoteURL, bbgen.ErrMalformedDependencyURI)
		}
		directives = append(directives, bbgen.FetchDirective{
			Name:     ref.Name,
			URI:      fmt.Sprintf("%s;name=%s;destsuffix=%s", sshURI(remote.User, remote.Host, remote.Path), ref.Name, ref.Name),
			Revision: ref.ResolvedRevision,
		})
	}

	sort.SliceStable(directives, func(i, j int) bool {
		return directives[i].Name < directives[j].Name
	})
	return directives, nil
}

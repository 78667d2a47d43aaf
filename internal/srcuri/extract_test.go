package srcuri

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/bbgen/pkg/bbgen"
)

func gitDep(name, url, rev string) bbgen.ResolvedDependency {
	return bbgen.ResolvedDependency{
		Name: name,
		SCM:  bbgen.SCM{Kind: bbgen.SCMGit, URL: url},
		Lock: []any{"git", url, rev, map[string]any{}},
	}
}

func hexDep(name, version string) bbgen.ResolvedDependency {
	return bbgen.ResolvedDependency{
		Name: name,
		SCM:  bbgen.SCM{Kind: "hex", URL: name},
		Lock: []any{"hex", name, version},
	}
}

func TestExtract_SingleDependency(t *testing.T) {
	got, err := Extract([]bbgen.ResolvedDependency{
		gitDep("libfoo", "ci@git.example.com:org/libfoo", "abc123"),
	})
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, bbgen.FetchDirective{
		Name:     "libfoo",
		URI:      "git://ci@git.example.com/org/libfoo;protocol=ssh;nobranch=1;name=libfoo;destsuffix=libfoo",
		Revision: "abc123",
	}, got[0])
}

func TestExtract_SortedByName(t *testing.T) {
	zeta := gitDep("zeta", "git@git.example.com:org/zeta", "z1")
	alpha := gitDep("alpha", "git@git.example.com:org/alpha", "a1")
	mid := gitDep("mid", "git@git.example.com:org/mid", "m1")

	permutations := [][]bbgen.ResolvedDependency{
		{zeta, alpha, mid},
		{alpha, zeta, mid},
		{mid, zeta, alpha},
		{alpha, mid, zeta},
	}

	var first []bbgen.FetchDirective
	for i, deps := range permutations {
		got, err := Extract(deps)
		require.NoError(t, err)

		names := make([]string, len(got))
		for j, d := range got {
			names[j] = d.Name
		}
		assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)

		if i == 0 {
			first = got
			continue
		}
		assert.Equal(t, first, got, "permutation %d", i)
	}
}

func TestExtract_DropsPublicDependencies(t *testing.T) {
	deps := []bbgen.ResolvedDependency{
		hexDep("jason", "1.4.1"),
		gitDep("public_https", "https://github.com/org/public.git", "p1"),
		gitDep("token_https", "https://ci@github.com/org/private.git", "p2"),
		gitDep("ssh_scheme", "ssh://git@github.com/org/ssh.git", "p3"),
		gitDep("private", "git@github.com:org/private.git", "p4"),
		{Name: "hex_with_marker", SCM: bbgen.SCM{Kind: "hex", URL: "git@github.com:org/x"}, Lock: []any{"hex", "x", "1.0.0"}},
	}

	got, err := Extract(deps)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "private", got[0].Name)
}

func TestExtract_NoPrivateDependencies(t *testing.T) {
	got, err := Extract([]bbgen.ResolvedDependency{hexDep("jason", "1.4.1")})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = Extract(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExtract_MalformedFailsWholeRun(t *testing.T) {
	deps := []bbgen.ResolvedDependency{
		gitDep("good", "git@git.example.com:org/good", "g1"),
		// passes the user@ marker but has no :path
		gitDep("broken", "git@git.example.com/org/broken", "b1"),
	}

	got, err := Extract(deps)
	require.Error(t, err)
	assert.True(t, errors.Is(err, bbgen.ErrMalformedDependencyURI), "got: %v", err)
	assert.Contains(t, err.Error(), "broken")
	assert.Nil(t, got)
}

func TestExtract_MissingRevision(t *testing.T) {
	dep := bbgen.ResolvedDependency{
		Name: "norev",
		SCM:  bbgen.SCM{Kind: bbgen.SCMGit, URL: "git@git.example.com:org/norev"},
		Lock: []any{"git", "git@git.example.com:org/norev"},
	}

	_, err := Extract([]bbgen.ResolvedDependency{dep})
	assert.True(t, errors.Is(err, bbgen.ErrInvalidConfig), "got: %v", err)
}

func TestPrivate(t *testing.T) {
	refs, err := Private([]bbgen.ResolvedDependency{
		gitDep("b", "git@host:org/b", "rb"),
		hexDep("c", "1.0.0"),
		gitDep("a", "ci@host:org/a", "ra"),
	})
	require.NoError(t, err)

	// input order is preserved; sorting belongs to Extract
	assert.Equal(t, []bbgen.DependencyRef{
		{Name: "b", RemoteURL: "git@host:org/b", ResolvedRevision: "rb"},
		{Name: "a", RemoteURL: "ci@host:org/a", ResolvedRevision: "ra"},
	}, refs)
}

func TestIsPrivate(t *testing.T) {
	tests := []struct {
		locator string
		want    bool
	}{
		{"git@github.com:org/app.git", true},
		{"ci@git.example.com:org/libfoo", true},
		{"https://ci@github.com/org/app.git", false},
		{"ssh://git@github.com/org/app.git", false},
		{"github.com/org/app", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.locator, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPrivate(tt.locator))
		})
	}
}

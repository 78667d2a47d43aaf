package cli

import (
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/bbgen/internal/config"
	"github.com/vvka-141/bbgen/pkg/bbgen"
)

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("output-dir", "", "")
	fs.String("branch", "", "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestResolveSettings_Defaults(t *testing.T) {
	clearSettingsEnv(t)

	s, err := resolveSettings("/project", config.GeneratorConfig{}, testFlags(t))
	require.NoError(t, err)
	assert.Equal(t, bbgen.DefaultServiceUser, s.ServiceUser)
	assert.Equal(t, bbgen.DefaultChecksumAlgorithm, s.Checksum)
	assert.Equal(t, "/project", s.OutputDir)
	assert.Empty(t, s.TemplatesDir)
	assert.Empty(t, s.Branch)
}

func TestResolveSettings_Precedence(t *testing.T) {
	clearSettingsEnv(t)
	manifest := config.GeneratorConfig{
		ServiceUser: "manifest-user",
		OutputDir:   "from-manifest",
		Branch:      "manifest-branch",
		Checksum:    "sha256",
	}

	t.Run("manifest over defaults", func(t *testing.T) {
		s, err := resolveSettings("/project", manifest, testFlags(t))
		require.NoError(t, err)
		assert.Equal(t, "manifest-user", s.ServiceUser)
		assert.Equal(t, filepath.Join("/project", "from-manifest"), s.OutputDir)
		assert.Equal(t, "sha256", s.Checksum)
	})

	t.Run("environment over manifest", func(t *testing.T) {
		t.Setenv("BBGEN_SERVICE_USER", "env-user")
		t.Setenv("BBGEN_BRANCH", "env-branch")
		s, err := resolveSettings("/project", manifest, testFlags(t))
		require.NoError(t, err)
		assert.Equal(t, "env-user", s.ServiceUser)
		assert.Equal(t, "env-branch", s.Branch)
	})

	t.Run("flags over environment", func(t *testing.T) {
		t.Setenv("BBGEN_BRANCH", "env-branch")
		s, err := resolveSettings("/project", manifest, testFlags(t, "--branch", "flag-branch", "--output-dir", "/abs/out"))
		require.NoError(t, err)
		assert.Equal(t, "flag-branch", s.Branch)
		assert.Equal(t, "/abs/out", s.OutputDir)
	})

	t.Run("unset flags do not mask lower layers", func(t *testing.T) {
		s, err := resolveSettings("/project", manifest, testFlags(t))
		require.NoError(t, err)
		assert.Equal(t, "manifest-branch", s.Branch)
	})
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, "/project", resolvePath("/project", ""))
	assert.Equal(t, filepath.Join("/project", "out"), resolvePath("/project", "out"))
	assert.Equal(t, "/tmp/out", resolvePath("/project", "/tmp/out/"))
}

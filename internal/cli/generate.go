package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vvka-141/bbgen/internal/checksum"
	"github.com/vvka-141/bbgen/internal/config"
	"github.com/vvka-141/bbgen/internal/files/filesystem"
	"github.com/vvka-141/bbgen/internal/license"
	"github.com/vvka-141/bbgen/internal/lockfile"
	"github.com/vvka-141/bbgen/internal/logging"
	"github.com/vvka-141/bbgen/internal/recipe"
	"github.com/vvka-141/bbgen/internal/srcuri"
	"github.com/vvka-141/bbgen/internal/vcs"
	"github.com/vvka-141/bbgen/pkg/bbgen"
)

// newRepository is swapped in tests.
var newRepository = func(dir string, logger bbgen.Logger) bbgen.Repository {
	return vcs.NewGit(dir, nil, logger)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	projectDir, err := filepath.Abs(rootFlags.dir)
	if err != nil {
		return fmt.Errorf("invalid --dir %q: %w", rootFlags.dir, err)
	}

	logger := logging.NewConsoleLogger(rootFlags.verbose)

	if err := godotenv.Load(filepath.Join(projectDir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Verbose("Ignoring unreadable .env: %v", err)
	}

	g := &generator{
		projectDir: projectDir,
		flags:      cmd.Flags(),
		fs:         filesystem.NewOSFileSystem(),
		repo:       newRepository(projectDir, logger),
		logger:     logger,
	}
	paths, err := g.run(cmd.Context())
	if err != nil {
		return err
	}
	printWritten(cmd.OutOrStdout(), paths)
	return nil
}

// generator runs the pipeline for one project directory.
type generator struct {
	projectDir string
	flags      *pflag.FlagSet
	fs         filesystem.FileSystemProvider
	repo       bbgen.Repository
	logger     bbgen.Logger
}

func (g *generator) run(ctx context.Context) ([]string, error) {
	manifest, err := config.Load(g.fs, g.projectDir)
	if err != nil {
		return nil, err
	}
	meta, err := manifest.Metadata()
	if err != nil {
		return nil, err
	}
	g.logger.Verbose("Project %s %s", meta.App, meta.Version)

	s, err := resolveSettings(g.projectDir, manifest.Generator, g.flags)
	if err != nil {
		return nil, err
	}

	deps, err := lockfile.Load(g.fs, g.projectDir)
	if err != nil {
		return nil, err
	}
	g.logger.Verbose("Loaded %d locked dependencies", len(deps))

	remote, err := g.repo.RemoteURL(ctx)
	if err != nil {
		return nil, err
	}
	revision, err := g.repo.Revision(ctx)
	if err != nil {
		return nil, err
	}
	branch := strings.TrimSpace(s.Branch)
	if branch == "" {
		if branch, err = g.repo.Branch(ctx); err != nil {
			return nil, err
		}
	}

	normalizer := srcuri.Normalizer{ServiceUser: s.ServiceUser}
	src, err := normalizer.Normalize(bbgen.RemoteRef{RawURL: remote, Branch: branch})
	if err != nil {
		return nil, err
	}
	g.logger.Verbose("SRC_URI %s", src)

	directives, err := srcuri.Extract(deps)
	if err != nil {
		return nil, err
	}
	g.logger.Verbose("Private git dependencies: %d", len(directives))

	calc, err := checksum.New(s.Checksum)
	if err != nil {
		return nil, err
	}
	licFiles, err := license.NewCollector(g.fs, calc, g.logger).Collect(g.projectDir)
	if err != nil {
		return nil, err
	}
	if len(licFiles) == 0 {
		g.logger.Info("No license file found in %s; LIC_FILES_CHKSUM will be omitted", g.projectDir)
	}

	assigns := recipe.BuildAssigns(meta, src, revision, licFiles, directives, generatorVersion())
	writer := recipe.NewWriter(g.fs, recipe.NewRenderer(g.fs, s.TemplatesDir), g.logger)
	return writer.Write(s.OutputDir, assigns)
}

func printWritten(w io.Writer, paths []string) {
	for _, p := range paths {
		fmt.Fprintf(w, "%s %s\n", successStyle.Render("Wrote"), pathStyle.Render(p))
	}
}

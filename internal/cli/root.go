package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var rootFlags struct {
	dir       string
	outputDir string
	branch    string
	verbose   bool
}

var rootCmd = &cobra.Command{
	Use:   "bbgen",
	Short: "Generate a BitBake recipe for a git-hosted project",
	Long: titleStyle.Render("bbgen") + mutedStyle.Render(" - BitBake recipe generator") + `

bbgen reads the project manifest (bbgen.yaml), the lock file (bbgen.lock)
and the git checkout, then writes two files:

  <name>_<version>.bb    the package recipe
  <name>-<version>.inc   SRC_URI and SRCREV for the project and its
                         private git dependencies

Run it from the project root. Every flag is optional.

Settings (lowest to highest precedence):
  defaults, the generator section of bbgen.yaml, BBGEN_* environment
  variables (a .env file in the project is loaded first), flags.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid project, manifest or license metadata
  11 - git command failed
  12 - Unrecognized or malformed source URI
  13 - Rendering or writing the recipe failed`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runGenerate,
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
	)
}

func init() {
	rootCmd.Flags().StringVar(&rootFlags.dir, "dir", ".", "project root")
	rootCmd.Flags().StringVar(&rootFlags.outputDir, "output-dir", "", "directory for the generated files (default: project root)")
	rootCmd.Flags().StringVar(&rootFlags.branch, "branch", "", "branch recorded in SRC_URI (default: checked-out branch)")
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "enable verbose output")
}

func versionString() string {
	v, c, d := resolveVersionInfo()
	if v == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

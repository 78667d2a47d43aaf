package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vvka-141/bbgen/internal/config"
	"github.com/vvka-141/bbgen/pkg/bbgen"
)

const envPrefix = "BBGEN"

// settings are the resolved generator settings.
// Precedence: defaults < bbgen.yaml generator section < BBGEN_* environment < flags.
type settings struct {
	ServiceUser  string
	OutputDir    string
	Checksum     string
	TemplatesDir string
	Branch       string
}

// flag name -> setting key
var settingFlags = map[string]string{
	"output-dir": "output_dir",
	"branch":     "branch",
}

func resolveSettings(projectDir string, generator config.GeneratorConfig, flags *pflag.FlagSet) (settings, error) {
	v := viper.New()
	v.SetDefault("service_user", bbgen.DefaultServiceUser)
	v.SetDefault("output_dir", "")
	v.SetDefault("checksum", bbgen.DefaultChecksumAlgorithm)
	v.SetDefault("templates_dir", "")
	v.SetDefault("branch", "")

	if err := v.MergeConfigMap(generator.Settings()); err != nil {
		return settings{}, fmt.Errorf("failed to merge generator settings: %v: %w", err, bbgen.ErrInvalidConfig)
	}

	v.SetEnvPrefix(envPrefix)
	for _, key := range []string{"service_user", "output_dir", "checksum", "templates_dir", "branch"} {
		if err := v.BindEnv(key); err != nil {
			return settings{}, err
		}
	}

	if flags != nil {
		for name, key := range settingFlags {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return settings{}, err
				}
			}
		}
	}

	s := settings{
		ServiceUser:  v.GetString("service_user"),
		OutputDir:    v.GetString("output_dir"),
		Checksum:     v.GetString("checksum"),
		TemplatesDir: v.GetString("templates_dir"),
		Branch:       v.GetString("branch"),
	}
	if s.ServiceUser == "" {
		return settings{}, fmt.Errorf("service_user must not be empty: %w", bbgen.ErrInvalidConfig)
	}
	s.OutputDir = resolvePath(projectDir, s.OutputDir)
	if s.TemplatesDir != "" {
		s.TemplatesDir = resolvePath(projectDir, s.TemplatesDir)
	}
	return s, nil
}

// resolvePath anchors relative paths at the project directory.
func resolvePath(projectDir, p string) string {
	if p == "" {
		return projectDir
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(projectDir, p)
}

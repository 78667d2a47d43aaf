package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/bbgen/internal/files/filesystem"
	"github.com/vvka-141/bbgen/pkg/bbgen"
)

// GeneratorConfig holds per-project generator settings. Every field is optional;
// environment variables and flags take precedence.
type GeneratorConfig struct {
	ServiceUser  string `yaml:"service_user,omitempty"`
	OutputDir    string `yaml:"output_dir,omitempty"`
	Checksum     string `yaml:"checksum,omitempty"`
	TemplatesDir string `yaml:"templates_dir,omitempty"`
	Branch       string `yaml:"branch,omitempty"`
}

// Manifest is the content of bbgen.yaml.
type Manifest struct {
	App         string `yaml:"app"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
	Homepage    string `yaml:"homepage"`

	// Licenses is a pointer so an absent key can be told apart from an empty list.
	Licenses *[]string `yaml:"licenses"`

	Generator GeneratorConfig `yaml:"generator"`
}

// Load reads bbgen.yaml from projectRoot.
func Load(fsProvider filesystem.FileSystemProvider, projectRoot string) (*Manifest, error) {
	manifestPath := filepath.Join(projectRoot, bbgen.ManifestFileName)
	data, err := fsProvider.ReadFile(manifestPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("no %s in %s; run bbgen from the project root: %w", bbgen.ManifestFileName, projectRoot, bbgen.ErrProjectNotFound)
		}
		return nil, err
	}
	return Parse(data)
}

// Parse decodes manifest content.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v: %w", bbgen.ManifestFileName, err, bbgen.ErrInvalidConfig)
	}
	return &m, nil
}

// Metadata validates the manifest and returns the recipe metadata.
func (m *Manifest) Metadata() (bbgen.ProjectMetadata, error) {
	var errs []error

	if strings.TrimSpace(m.App) == "" {
		errs = append(errs, fmt.Errorf("app is required: %w", bbgen.ErrInvalidConfig))
	}
	if strings.TrimSpace(m.Version) == "" {
		errs = append(errs, fmt.Errorf("version is required: %w", bbgen.ErrInvalidConfig))
	}
	if err := errors.Join(errs...); err != nil {
		return bbgen.ProjectMetadata{}, err
	}

	licenses, err := m.licenses()
	if err != nil {
		return bbgen.ProjectMetadata{}, err
	}

	return bbgen.ProjectMetadata{
		App:         strings.TrimSpace(m.App),
		Version:     strings.TrimSpace(m.Version),
		Description: strings.TrimSpace(m.Description),
		Homepage:    strings.TrimSpace(m.Homepage),
		Licenses:    licenses,
	}, nil
}

func (m *Manifest) licenses() ([]string, error) {
	if m.Licenses == nil {
		return nil, fmt.Errorf(`%w: add a licenses list to %s, for example:

  licenses: ["Apache-2.0"]

Use SPDX identifiers; they become the recipe LICENSE`, bbgen.ErrMissingLicense, bbgen.ManifestFileName)
	}

	var licenses []string
	for _, l := range *m.Licenses {
		if l = strings.TrimSpace(l); l != "" {
			licenses = append(licenses, l)
		}
	}
	if len(licenses) == 0 {
		return nil, fmt.Errorf("%w: licenses in %s must name at least one license", bbgen.ErrEmptyLicenseList, bbgen.ManifestFileName)
	}
	return licenses, nil
}

// Settings returns the non-empty generator settings keyed by setting name.
func (g GeneratorConfig) Settings() map[string]any {
	settings := make(map[string]any)
	for key, value := range map[string]string{
		"service_user":  g.ServiceUser,
		"output_dir":    g.OutputDir,
		"checksum":      g.Checksum,
		"templates_dir": g.TemplatesDir,
		"branch":        g.Branch,
	} {
		if value != "" {
			settings[key] = value
		}
	}
	return settings
}

// Package lockfile reads bbgen.lock, the resolved dependency set of a project.
//
// Each top-level key names a dependency and maps to a positional record:
//
//	libfoo = ["git", "ci@git.example.com:org/libfoo", "3f2a9c1", { branch = "main" }]
//	jason  = ["hex", "jason", "1.4.1"]
//
// The first element is the SCM kind, the second the locator and the third the
// pinned revision. Trailing elements are kept but not interpreted.
package lockfile

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/vvka-141/bbgen/internal/files/filesystem"
	"github.com/vvka-141/bbgen/pkg/bbgen"
)

// Load reads bbgen.lock from projectRoot. A project without a lock file has
// no dependencies.
func Load(fsProvider filesystem.FileSystemProvider, projectRoot string) ([]bbgen.ResolvedDependency, error) {
	data, err := fsProvider.ReadFile(filepath.Join(projectRoot, bbgen.LockFileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return Parse(data)
}

// Parse decodes lock file content into dependencies sorted by name.
func Parse(data []byte) ([]bbgen.ResolvedDependency, error) {
	var records map[string]any
	if err := toml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v: %w", bbgen.LockFileName, err, bbgen.ErrInvalidConfig)
	}

	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	sort.Strings(names)

	deps := make([]bbgen.ResolvedDependency, 0, len(names))
	for _, name := range names {
		dep, err := parseRecord(name, records[name])
		if err != nil {
			return nil, err
		}
		deps = append(deps, dep)
	}
	return deps, nil
}

func parseRecord(name string, value any) (bbgen.ResolvedDependency, error) {
	record, ok := value.([]any)
	if !ok || len(record) < 2 {
		return bbgen.ResolvedDependency{}, fmt.Errorf("%s: %q must be an array of at least [kind, locator]: %w", bbgen.LockFileName, name, bbgen.ErrInvalidConfig)
	}

	kind, ok := record[0].(string)
	if !ok || kind == "" {
		return bbgen.ResolvedDependency{}, fmt.Errorf("%s: %q has no SCM kind: %w", bbgen.LockFileName, name, bbgen.ErrInvalidConfig)
	}
	locator, ok := record[1].(string)
	if !ok {
		return bbgen.ResolvedDependency{}, fmt.Errorf("%s: %q locator is not a string: %w", bbgen.LockFileName, name, bbgen.ErrInvalidConfig)
	}

	return bbgen.ResolvedDependency{
		Name: name,
		SCM:  bbgen.SCM{Kind: kind, URL: locator},
		Lock: record,
	}, nil
}

// Package license locates the project's license files and computes the
// digests BitBake verifies them against.
package license

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/vvka-141/bbgen/internal/checksum"
	"github.com/vvka-141/bbgen/internal/files/filesystem"
	"github.com/vvka-141/bbgen/pkg/bbgen"
)

// Collector builds LIC_FILES_CHKSUM entries for a project root.
type Collector struct {
	fs         filesystem.FileSystemProvider
	calc       checksum.Calculator
	logger     bbgen.Logger
	candidates []string
}

// NewCollector creates a Collector probing bbgen.LicenseCandidates.
func NewCollector(fsProvider filesystem.FileSystemProvider, calc checksum.Calculator, logger bbgen.Logger) *Collector {
	return &Collector{
		fs:         fsProvider,
		calc:       calc,
		logger:     logger,
		candidates: bbgen.LicenseCandidates,
	}
}

// Collect returns one entry per existing candidate, in candidate order.
// Missing candidates are skipped; any other filesystem error is returned.
func (c *Collector) Collect(root string) ([]bbgen.LicenseFile, error) {
	var files []bbgen.LicenseFile

	for _, name := range c.candidates {
		path := filepath.Join(root, name)

		info, err := c.fs.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if info.IsDir() {
			c.logger.Verbose("Skipping license candidate %s: is a directory", name)
			continue
		}

		content, err := c.fs.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		file := bbgen.LicenseFile{
			Path:      name,
			Algorithm: c.calc.Algorithm(),
			Digest:    c.calc.Calculate(content),
		}
		c.logger.Verbose("License file %s", file)
		files = append(files, file)
	}

	return files, nil
}

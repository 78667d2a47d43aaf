package recipe

import (
	"fmt"
	"path/filepath"

	"github.com/vvka-141/bbgen/internal/files/filesystem"
	"github.com/vvka-141/bbgen/pkg/bbgen"
)

// Writer renders both recipe files and writes them to an output directory.
type Writer struct {
	fs       filesystem.FileSystemProvider
	renderer *Renderer
	logger   bbgen.Logger
}

// NewWriter creates a Writer.
func NewWriter(fsProvider filesystem.FileSystemProvider, renderer *Renderer, logger bbgen.Logger) *Writer {
	return &Writer{fs: fsProvider, renderer: renderer, logger: logger}
}

type output struct {
	template string
	fileName string
	content  []byte
}

// Write renders the recipe and the include file, then writes both to outDir.
// Nothing is written unless both render. Returns the written paths in order.
func (w *Writer) Write(outDir string, assigns Assigns) ([]string, error) {
	outputs := []*output{
		{template: RecipeTemplate, fileName: assigns.RecipeFileName()},
		{template: IncludeTemplate, fileName: assigns.IncludeFileName()},
	}

	for _, o := range outputs {
		content, err := w.renderer.Render(o.template, assigns)
		if err != nil {
			return nil, err
		}
		o.content = content
		w.logger.Verbose("Rendered %s (%d bytes)", o.fileName, len(content))
	}

	if err := w.fs.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %v: %w", outDir, err, bbgen.ErrRenderFailed)
	}

	paths := make([]string, 0, len(outputs))
	for _, o := range outputs {
		path := filepath.Join(outDir, o.fileName)
		if err := w.fs.WriteFile(path, o.content, 0644); err != nil {
			return paths, fmt.Errorf("failed to write %s: %v: %w", path, err, bbgen.ErrRenderFailed)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

package recipe

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/vvka-141/bbgen/internal/files/filesystem"
	"github.com/vvka-141/bbgen/pkg/bbgen"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

const (
	RecipeTemplate  = "recipe.bb.tmpl"
	IncludeTemplate = "recipe.inc.tmpl"
)

var funcs = template.FuncMap{
	"escape": escape,
	"join":   strings.Join,
}

// Renderer renders a named template. Templates found in the override directory
// replace the embedded defaults of the same name.
type Renderer struct {
	fs           filesystem.FileSystemProvider
	templatesDir string
}

// NewRenderer creates a Renderer. An empty templatesDir uses the embedded templates only.
func NewRenderer(fsProvider filesystem.FileSystemProvider, templatesDir string) *Renderer {
	return &Renderer{fs: fsProvider, templatesDir: templatesDir}
}

// Render executes the template called name with assigns.
func (r *Renderer) Render(name string, assigns Assigns) ([]byte, error) {
	source, origin, err := r.load(name)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).Funcs(funcs).Parse(string(source))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v: %w", origin, err, bbgen.ErrRenderFailed)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, assigns); err != nil {
		return nil, fmt.Errorf("failed to render %s: %v: %w", origin, err, bbgen.ErrRenderFailed)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) load(name string) ([]byte, string, error) {
	if r.templatesDir != "" {
		path := filepath.Join(r.templatesDir, name)
		content, err := r.fs.ReadFile(path)
		if err == nil {
			return content, path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("failed to read template %s: %v: %w", path, err, bbgen.ErrRenderFailed)
		}
	}

	content, err := templatesFS.ReadFile("templates/" + name)
	if err != nil {
		return nil, "", fmt.Errorf("template %q not found: %w", name, bbgen.ErrRenderFailed)
	}
	return content, "embedded " + name, nil
}

// escape quotes a value for a double-quoted BitBake assignment.
func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return strings.Join(strings.Fields(s), " ")
}

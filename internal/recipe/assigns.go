// Package recipe builds the template assigns and renders the BitBake recipe
// and include file from them.
package recipe

import (
	"strings"

	"github.com/vvka-141/bbgen/pkg/bbgen"
)

// Assigns is the data both templates are rendered with.
type Assigns struct {
	GeneratorVersion string
	Name             string
	Version          string
	Summary          string
	License          string
	Homepage         string
	ProjectSrcURI    string
	ProjectSrcRev    string
	LicFiles         []bbgen.LicenseFile
	Deps             []bbgen.FetchDirective
}

// BuildAssigns merges project metadata with the derived source values.
func BuildAssigns(
	meta bbgen.ProjectMetadata,
	src bbgen.NormalizedSource,
	revision string,
	licFiles []bbgen.LicenseFile,
	deps []bbgen.FetchDirective,
	generatorVersion string,
) Assigns {
	return Assigns{
		GeneratorVersion: generatorVersion,
		Name:             DashCase(meta.App),
		Version:          meta.Version,
		Summary:          meta.Description,
		License:          strings.Join(meta.Licenses, " & "),
		Homepage:         meta.Homepage,
		ProjectSrcURI:    src.URI,
		ProjectSrcRev:    revision,
		LicFiles:         licFiles,
		Deps:             deps,
	}
}

// DashCase converts an application token such as "my_app" to "my-app".
func DashCase(token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	return strings.Join(strings.FieldsFunc(token, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	}), "-")
}

// RecipeFileName is <name>_<version>.bb.
func (a Assigns) RecipeFileName() string {
	return a.Name + "_" + a.Version + ".bb"
}

// IncludeFileName is <name>-<version>.inc.
func (a Assigns) IncludeFileName() string {
	return a.Name + "-" + a.Version + ".inc"
}

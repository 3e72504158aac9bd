package generators

import (
	"fmt"
	"path/filepath"

	"github.com/pixie-sh/errors-go"

	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/shared"
)

// templateMapping routes one embedded template to a path relative to the project root
type templateMapping struct {
	templateFile string
	outputPath   string
	condition    func() bool
	executable   bool
}

// writeTemplates renders every mapping whose condition holds into targetDir
func writeTemplates(deps Deps, targetDir string, mappings []templateMapping, pairs []shared.Variable) error {
	for _, mapping := range mappings {
		if mapping.condition != nil && !mapping.condition() {
			continue
		}

		content, err := shared.RenderTemplate(deps.Templates, mapping.templateFile, pairs)
		if err != nil {
			return err
		}
		if tokens := shared.UnresolvedTokens(content); len(tokens) > 0 {
			deps.Logger.Debug().
				Str("template", mapping.templateFile).
				Strs("tokens", tokens).
				Msg("unresolved template tokens left verbatim")
		}

		path := filepath.Join(targetDir, mapping.outputPath)
		if err := shared.WriteFile(path, []byte(content)); err != nil {
			return errors.Wrap(err, "failed to generate %s", mapping.outputPath)
		}
		if mapping.executable {
			if err := shared.MakeExecutable(path); err != nil {
				return err
			}
		}

		fmt.Fprintf(deps.Out, "   Generated %s\n", mapping.outputPath)
	}
	return nil
}

// updatePackageScripts loads a generated package.json, lets fn edit its
// scripts block and writes it back
func updatePackageScripts(path string, fn func(scripts map[string]any) map[string]any) error {
	var pkg map[string]any
	if err := shared.ReadJSON(path, &pkg); err != nil {
		return err
	}

	scripts, _ := pkg["scripts"].(map[string]any)
	if scripts == nil {
		scripts = map[string]any{}
	}
	pkg["scripts"] = fn(scripts)

	return shared.WriteJSON(path, pkg)
}

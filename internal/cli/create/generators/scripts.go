package generators

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/models"
	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/shared"
)

func generateScripts(_ context.Context, cfg models.ProjectConfig, deps Deps) ([]string, error) {
	scriptsDir := filepath.Join(cfg.TargetDir, "scripts")

	pkg := WorkspacePackageJSON{
		Name:    "scripts",
		Version: "0.0.1",
		Private: true,
		Type:    "module",
		Dependencies: map[string]string{
			"picocolors": "^1.1.1",
		},
	}
	if err := shared.WriteJSON(filepath.Join(scriptsDir, "package.json"), pkg); err != nil {
		return nil, err
	}
	fmt.Fprintln(deps.Out, "   Generated scripts/package.json")

	mappings := []templateMapping{
		{templateFile: "scripts/deploy-all.js.template", outputPath: filepath.Join("scripts", "deploy-all.js"), executable: true},
		{templateFile: "scripts/setup-cloudflare.js.template", outputPath: filepath.Join("scripts", "setup-cloudflare.js"), executable: true},
		{templateFile: "scripts/README.md.template", outputPath: filepath.Join("scripts", "README.md")},
	}
	return nil, writeTemplates(deps, cfg.TargetDir, mappings, shared.NewTemplateVariables(cfg).Pairs())
}

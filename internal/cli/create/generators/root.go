package generators

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/pixie-sh/errors-go"
	"gopkg.in/yaml.v3"

	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/models"
	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/shared"
)

// RootPackageJSON is the top-level manifest of the generated monorepo
type RootPackageJSON struct {
	Name            string              `json:"name"`
	Version         string              `json:"version"`
	Private         bool                `json:"private"`
	Type            string              `json:"type"`
	Workspaces      []string            `json:"workspaces,omitempty"`
	Scripts         map[string]string   `json:"scripts"`
	DevDependencies map[string]string   `json:"devDependencies"`
	LintStaged      map[string][]string `json:"lint-staged"`
}

type pnpmWorkspace struct {
	Packages []string `yaml:"packages"`
}

var rootDevDependencies = map[string]string{
	"@eslint/js":             "^9.17.0",
	"eslint":                 "^9.17.0",
	"eslint-plugin-svelte":   "^2.46.1",
	"typescript-eslint":      "^8.18.2",
	"globals":                "^15.13.0",
	"prettier":               "^3.4.2",
	"prettier-plugin-svelte": "^3.3.2",
	"typescript":             "^5.7.2",
	"concurrently":           "^9.1.2",
	"husky":                  "^9.1.7",
	"lint-staged":            "^15.2.11",
	"picocolors":             "^1.1.1",
}

// NewRootPackageJSON builds the root manifest. pnpm tracks membership in
// pnpm-workspace.yaml, so the workspaces field is only set for npm and yarn.
func NewRootPackageJSON(cfg models.ProjectConfig) RootPackageJSON {
	pm := shared.CommandsFor(cfg.PackageManager)

	pkg := RootPackageJSON{
		Name:    cfg.Name,
		Version: "1.0.0",
		Private: true,
		Type:    "module",
		Scripts: map[string]string{
			"dev": fmt.Sprintf("concurrently -n web,api %q %q",
				pm.WorkspaceScript("web", "dev"), pm.WorkspaceScript("api", "dev")),
			"build":      pm.AllWorkspacesScript("build"),
			"preview":    pm.WorkspaceScript("web", "preview"),
			"test":       pm.WorkspaceScript("tests", "test"),
			"test:unit":  pm.WorkspaceScript("api", "test"),
			"test:ui":    pm.WorkspaceScript("tests", "test:ui"),
			"lint":       "eslint .",
			"format":     "prettier --write .",
			"apidocs":    pm.WorkspaceScript("api", "apidocs"),
			"deploy:web": pm.WorkspaceScript("web", "deploy"),
			"deploy:api": pm.WorkspaceScript("api", "deploy"),
			"prepare":    "husky",
		},
		DevDependencies: rootDevDependencies,
		LintStaged: map[string][]string{
			"*.{js,ts,svelte}": {"eslint --fix", "prettier --write"},
			"*.{json,md}":      {"prettier --write"},
		},
	}

	if cfg.PackageManager != models.PNPM {
		pkg.Workspaces = append([]string(nil), models.Workspaces...)
	}
	return pkg
}

func generateRoot(_ context.Context, cfg models.ProjectConfig, deps Deps) ([]string, error) {
	pairs := shared.NewTemplateVariables(cfg).Pairs()

	if err := shared.WriteJSON(filepath.Join(cfg.TargetDir, "package.json"), NewRootPackageJSON(cfg)); err != nil {
		return nil, err
	}
	fmt.Fprintln(deps.Out, "   Generated package.json")

	if cfg.PackageManager == models.PNPM {
		content, err := yaml.Marshal(pnpmWorkspace{Packages: models.Workspaces})
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode pnpm-workspace.yaml")
		}
		if err := shared.WriteFile(filepath.Join(cfg.TargetDir, "pnpm-workspace.yaml"), content); err != nil {
			return nil, err
		}
		fmt.Fprintln(deps.Out, "   Generated pnpm-workspace.yaml")
	}

	mappings := []templateMapping{
		{templateFile: "root/gitignore.template", outputPath: ".gitignore"},
		{templateFile: "root/prettierrc.template", outputPath: ".prettierrc"},
		{templateFile: "root/eslint.config.js.template", outputPath: "eslint.config.js"},
		{templateFile: "root/README.md.template", outputPath: "README.md"},
		{templateFile: "root/pre-commit.template", outputPath: filepath.Join(".husky", "pre-commit"), executable: true},
	}

	return nil, writeTemplates(deps, cfg.TargetDir, mappings, pairs)
}

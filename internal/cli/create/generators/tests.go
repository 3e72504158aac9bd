package generators

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/models"
	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/shared"
)

// WorkspacePackageJSON is the manifest of a workspace scaffolded without an external generator
type WorkspacePackageJSON struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Private         bool              `json:"private"`
	Type            string            `json:"type"`
	Scripts         map[string]string `json:"scripts,omitempty"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

func generateTests(ctx context.Context, cfg models.ProjectConfig, deps Deps) ([]string, error) {
	testsDir := filepath.Join(cfg.TargetDir, "tests")

	if err := shared.CreateDirStructure(testsDir, []string{"e2e"}); err != nil {
		return nil, err
	}

	pkg := WorkspacePackageJSON{
		Name:    "tests",
		Version: "0.0.1",
		Private: true,
		Type:    "module",
		Scripts: map[string]string{
			"test":       "playwright test",
			"test:ui":    "playwright test --ui",
			"test:debug": "playwright test --debug",
		},
		DevDependencies: map[string]string{
			"@playwright/test": "^1.49.1",
			"@types/node":      "^22.10.2",
		},
	}
	if err := shared.WriteJSON(filepath.Join(testsDir, "package.json"), pkg); err != nil {
		return nil, err
	}
	fmt.Fprintln(deps.Out, "   Generated tests/package.json")

	fmt.Fprintln(deps.Out, shared.Dim("   Installing Playwright..."))
	if _, err := deps.Runner.Run(ctx, shared.Command{
		Dir:  testsDir,
		Name: string(cfg.PackageManager),
		Args: []string{"install"},
		Mode: shared.Capture,
	}); err != nil {
		return nil, err
	}

	mappings := []templateMapping{
		{templateFile: "tests/playwright.config.ts.template", outputPath: filepath.Join("tests", "playwright.config.ts")},
		{templateFile: "tests/echo.spec.ts.template", outputPath: filepath.Join("tests", "e2e", "echo.spec.ts")},
		{templateFile: "tests/README.md.template", outputPath: filepath.Join("tests", "README.md")},
	}
	if err := writeTemplates(deps, cfg.TargetDir, mappings, shared.NewTemplateVariables(cfg).Pairs()); err != nil {
		return nil, err
	}

	fmt.Fprintln(deps.Out, shared.Dim("   Installing Playwright browsers..."))
	_, err := deps.Runner.Run(ctx, shared.Command{
		Dir:  testsDir,
		Name: "npx",
		Args: []string{"playwright", "install", "--with-deps", "chromium"},
		Mode: shared.Stream,
	})
	return nil, err
}

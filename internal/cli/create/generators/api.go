package generators

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pixie-sh/errors-go"

	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/cloudflare"
	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/models"
	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/shared"
)

const initialMigrationTemplate = "api/0001_init.sql.template"

// APIScripts replace the scripts block create-hono writes into api/package.json
var APIScripts = map[string]any{
	"dev":     "wrangler dev",
	"deploy":  "wrangler deploy",
	"test":    "vitest",
	"apidocs": "node scripts/generate-openapi.js",
}

func generateAPI(ctx context.Context, cfg models.ProjectConfig, deps Deps) ([]string, error) {
	apiDir := filepath.Join(cfg.TargetDir, "api")
	pm := string(cfg.PackageManager)
	pmCmds := shared.CommandsFor(cfg.PackageManager)

	fmt.Fprintln(deps.Out, shared.Dim("   Running create-hono..."))
	if _, err := deps.Runner.Run(ctx, shared.Command{
		Dir:  cfg.TargetDir,
		Name: pm,
		Args: pmCmds.CreateArgs("hono@latest", "api", "--template", "cloudflare-workers", "--pm", pm, "--install"),
		Mode: shared.Stream,
	}); err != nil {
		return nil, err
	}

	fmt.Fprintln(deps.Out, shared.Dim("   Installing dependencies..."))
	installs := [][]string{
		pmCmds.AddArgs(false, "hono", "@hono/zod-openapi", "zod"),
		pmCmds.AddArgs(true, "@cloudflare/workers-types", "@cloudflare/vitest-pool-workers", "vitest", "wrangler"),
	}
	for _, args := range installs {
		if _, err := deps.Runner.Run(ctx, shared.Command{Dir: apiDir, Name: pm, Args: args, Mode: shared.Capture, Quiet: true}); err != nil {
			return nil, err
		}
	}

	resources := cloudflare.Provision(ctx, deps.Backend, cfg.Name, deps.Out)

	pairs := append(shared.NewTemplateVariables(cfg).Pairs(),
		shared.Variable{Name: "KV_NAMESPACE_ID", Value: resources.KVID},
		shared.Variable{Name: "D1_DATABASE_ID", Value: resources.D1ID},
	)

	migration, err := shared.RenderTemplate(deps.Templates, initialMigrationTemplate, pairs)
	if err != nil {
		return nil, err
	}
	if err := cloudflare.ValidateMigration(ctx, migration); err != nil {
		return nil, errors.Wrap(err, "initial D1 migration is invalid")
	}

	// wrangler.jsonc replaces the create-hono config
	if err := os.Remove(filepath.Join(apiDir, "wrangler.toml")); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "failed to remove api/wrangler.toml")
	}

	mappings := []templateMapping{
		{templateFile: "api/index.ts.template", outputPath: filepath.Join("api", "src", "index.ts")},
		{templateFile: "api/index.test.ts.template", outputPath: filepath.Join("api", "src", "index.test.ts")},
		{templateFile: "api/wrangler.jsonc.template", outputPath: filepath.Join("api", "wrangler.jsonc")},
		{templateFile: "api/vitest.config.ts.template", outputPath: filepath.Join("api", "vitest.config.ts")},
		{templateFile: initialMigrationTemplate, outputPath: filepath.Join("api", "migrations", "0001_init.sql")},
		{templateFile: "api/generate-openapi.js.template", outputPath: filepath.Join("api", "scripts", "generate-openapi.js")},
		{templateFile: "api/README.md.template", outputPath: filepath.Join("api", "README.md")},
	}
	if err := writeTemplates(deps, cfg.TargetDir, mappings, pairs); err != nil {
		return nil, err
	}

	err = updatePackageScripts(filepath.Join(apiDir, "package.json"), func(map[string]any) map[string]any {
		scripts := make(map[string]any, len(APIScripts))
		for k, v := range APIScripts {
			scripts[k] = v
		}
		return scripts
	})
	if err != nil {
		return nil, err
	}

	return resources.Warnings, nil
}

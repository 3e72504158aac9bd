package generators

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/models"
	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/shared"
)

var shadcnComponents = []string{"button", "card", "input", "label"}

func generateWeb(ctx context.Context, cfg models.ProjectConfig, deps Deps) ([]string, error) {
	webDir := filepath.Join(cfg.TargetDir, "web")
	pm := string(cfg.PackageManager)
	ts := cfg.UseTypeScript

	types := "jsdoc"
	if ts {
		types = "ts"
	}

	fmt.Fprintln(deps.Out, shared.Dim("   Running sv create..."))
	commands := []shared.Command{
		{Dir: cfg.TargetDir, Name: "npx", Args: []string{"sv", "create", "web", "--template", "minimal", "--install", pm, "--types", types, "--no-add-ons"}},
		{Dir: webDir, Name: "npx", Args: []string{"sv", "add", "--install", pm, "sveltekit-adapter=adapter:cloudflare", "tailwindcss=plugins:typography,forms"}},
		{Dir: webDir, Name: "npx", Args: []string{
			"shadcn-svelte@latest", "init",
			"--base-color", string(cfg.BaseColor),
			"--css", "src/routes/layout.css",
			"--lib-alias", "$lib",
			"--components-alias", "$lib/components",
			"--ui-alias", "$lib/components/ui",
			"--utils-alias", "$lib/utils",
			"--hooks-alias", "$lib/hooks",
		}},
	}
	for _, component := range shadcnComponents {
		commands = append(commands, shared.Command{Dir: webDir, Name: "npx", Args: []string{"shadcn-svelte@latest", "add", component, "-y"}})
	}

	for _, c := range commands {
		c.Mode = shared.Stream
		if _, err := deps.Runner.Run(ctx, c); err != nil {
			return nil, err
		}
	}

	viteConfig := "vite.config.js"
	if ts {
		viteConfig = "vite.config.ts"
	}

	mappings := []templateMapping{
		{templateFile: "web/vite.config.template", outputPath: filepath.Join("web", viteConfig)},
		{templateFile: "web/app.d.ts.template", outputPath: filepath.Join("web", "src", "app.d.ts"), condition: func() bool { return ts }},
		{templateFile: "web/page.ts.svelte.template", outputPath: filepath.Join("web", "src", "routes", "+page.svelte"), condition: func() bool { return ts }},
		{templateFile: "web/page.js.svelte.template", outputPath: filepath.Join("web", "src", "routes", "+page.svelte"), condition: func() bool { return !ts }},
		{templateFile: "web/README.md.template", outputPath: filepath.Join("web", "README.md")},
	}
	if err := writeTemplates(deps, cfg.TargetDir, mappings, shared.NewTemplateVariables(cfg).Pairs()); err != nil {
		return nil, err
	}

	fmt.Fprintln(deps.Out, shared.Dim("   Installing Cloudflare types and wrangler..."))
	pmCmds := shared.CommandsFor(cfg.PackageManager)
	if _, err := deps.Runner.Run(ctx, shared.Command{
		Dir:   webDir,
		Name:  pm,
		Args:  pmCmds.AddArgs(true, "@cloudflare/workers-types", "wrangler"),
		Mode:  shared.Capture,
		Quiet: true,
	}); err != nil {
		return nil, err
	}

	err := updatePackageScripts(filepath.Join(webDir, "package.json"), func(scripts map[string]any) map[string]any {
		scripts["deploy"] = "wrangler pages deploy .svelte-kit/cloudflare"
		return scripts
	})
	return nil, err
}

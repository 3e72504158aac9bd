// Package generators materializes the workspaces of a new monorepo.
package generators

import (
	"context"
	"fmt"
	"io"
	"io/fs"

	"github.com/pixie-sh/errors-go"
	"github.com/rs/zerolog"

	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/cloudflare"
	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/models"
	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/shared"
)

// Deps are the capabilities every stage works through
type Deps struct {
	Runner    shared.Runner
	Backend   cloudflare.Backend
	Templates fs.FS
	Out       io.Writer
	Logger    zerolog.Logger
}

// GenerateFunc builds one workspace and returns any non-fatal warnings
type GenerateFunc func(ctx context.Context, cfg models.ProjectConfig, deps Deps) ([]string, error)

// Stage is one workspace generator and the stages whose output it builds on
type Stage struct {
	Name     string
	Title    string
	Requires []string
	Generate GenerateFunc
}

// Stages returns the generators in execution order
func Stages() []Stage {
	return []Stage{
		{Name: "root", Title: "Creating root workspace...", Generate: generateRoot},
		{Name: "web", Title: "Creating web app (SvelteKit)...", Requires: []string{"root"}, Generate: generateWeb},
		{Name: "api", Title: "Creating API app (Hono)...", Requires: []string{"root"}, Generate: generateAPI},
		{Name: "tests", Title: "Creating tests workspace (Playwright)...", Requires: []string{"web", "api"}, Generate: generateTests},
		{Name: "scripts", Title: "Creating scripts workspace...", Requires: []string{"root", "web", "api"}, Generate: generateScripts},
	}
}

// ValidateOrder checks that every stage appears once and only after the stages it requires
func ValidateOrder(stages []Stage) error {
	done := make(map[string]bool, len(stages))
	for _, s := range stages {
		if done[s.Name] {
			return errors.New("stage %s is declared twice", s.Name)
		}
		for _, req := range s.Requires {
			if !done[req] {
				return errors.New("stage %s requires %s to run before it", s.Name, req)
			}
		}
		done[s.Name] = true
	}
	return nil
}

// Run executes stages in order and collects their warnings. The first
// failing stage aborts the run.
func Run(ctx context.Context, stages []Stage, cfg models.ProjectConfig, deps Deps) ([]string, error) {
	if err := ValidateOrder(stages); err != nil {
		return nil, errors.Wrap(err, "invalid generator order")
	}

	var warnings []string
	for _, s := range stages {
		fmt.Fprintln(deps.Out, shared.Cyan("\n"+s.Title))
		deps.Logger.Debug().Str("stage", s.Name).Msg("generate")

		w, err := s.Generate(ctx, cfg, deps)
		if err != nil {
			return warnings, errors.Wrap(err, "failed to generate %s workspace", s.Name)
		}
		warnings = append(warnings, w...)

		fmt.Fprintln(deps.Out, shared.Green(fmt.Sprintf("   ✓ %s workspace created", s.Name)))
	}

	return warnings, nil
}

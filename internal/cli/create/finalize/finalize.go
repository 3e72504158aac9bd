// Package finalize turns the generated tree into an installed git repository.
package finalize

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/pixie-sh/errors-go"

	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/models"
	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/shared"
)

// HookWarning is reported when the post-install hook fails
const HookWarning = "Could not initialize Husky (this is optional)"

// Finalizer initializes git, installs dependencies and runs the prepare hook
type Finalizer struct {
	Runner shared.Runner
	Out    io.Writer
}

// GitInstalled reports whether the git binary can be executed
func (f Finalizer) GitInstalled(ctx context.Context) bool {
	_, err := f.Runner.Run(ctx, shared.Command{Name: "git", Args: []string{"--version"}, Quiet: true})
	return err == nil
}

// IsGitRepository reports whether dir already has a .git entry
func IsGitRepository(dir string) bool {
	return shared.PathExists(filepath.Join(dir, ".git"))
}

// InitGitRepository runs git init unless dir is already a repository
func (f Finalizer) InitGitRepository(ctx context.Context, dir string) error {
	if IsGitRepository(dir) {
		return nil
	}
	_, err := f.Runner.Run(ctx, shared.Command{Dir: dir, Name: "git", Args: []string{"init"}})
	return err
}

// Finalize runs the repository steps for cfg. A failed install is fatal;
// a failed prepare hook becomes a warning.
func (f Finalizer) Finalize(ctx context.Context, cfg models.ProjectConfig) ([]string, error) {
	gitInstalled := f.GitInstalled(ctx)
	if gitInstalled {
		fmt.Fprintln(f.Out, shared.Cyan("\nInitializing git repository..."))
		if err := f.InitGitRepository(ctx, cfg.TargetDir); err != nil {
			return nil, errors.Wrap(err, "failed to initialize git repository")
		}
		fmt.Fprintln(f.Out, shared.Green("   ✓ Git repository initialized"))
	} else {
		fmt.Fprintln(f.Out, shared.Yellow("\n⚠ Git not found, skipping git initialization"))
	}

	fmt.Fprintln(f.Out, shared.Cyan("\nInstalling dependencies..."))
	fmt.Fprintln(f.Out, shared.Dim("   This may take a few minutes...\n"))
	if _, err := f.Runner.Run(ctx, shared.Command{
		Dir:  cfg.TargetDir,
		Name: string(cfg.PackageManager),
		Args: []string{"install"},
		Mode: shared.Stream,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to install dependencies")
	}

	// husky needs a repository to install its hooks into
	if !gitInstalled {
		return nil, nil
	}

	fmt.Fprintln(f.Out, shared.Cyan("\nSetting up Husky..."))
	if _, err := f.Runner.Run(ctx, shared.Command{
		Dir:   cfg.TargetDir,
		Name:  string(cfg.PackageManager),
		Args:  shared.CommandsFor(cfg.PackageManager).RunArgs("prepare"),
		Mode:  shared.Capture,
		Quiet: true,
	}); err != nil {
		fmt.Fprintln(f.Out, shared.Yellow("   ⚠ "+HookWarning))
		return []string{HookWarning}, nil
	}
	fmt.Fprintln(f.Out, shared.Green("   ✓ Husky configured"))

	return nil, nil
}

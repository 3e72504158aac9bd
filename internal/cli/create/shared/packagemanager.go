package shared

import (
	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/models"
)

// PackageManagerCommands renders the command lines a package manager uses for common actions
type PackageManagerCommands struct {
	pm models.PackageManager
}

// CommandsFor returns the command helpers for pm
func CommandsFor(pm models.PackageManager) PackageManagerCommands {
	return PackageManagerCommands{pm: pm}
}

// Install returns the install command line
func (c PackageManagerCommands) Install() string {
	return string(c.pm) + " install"
}

// Run returns the command line running a package.json script
func (c PackageManagerCommands) Run(script string) string {
	switch c.pm {
	case models.PNPM:
		return "pnpm run " + script
	case models.Yarn:
		return "yarn " + script
	default:
		return "npm run " + script
	}
}

// Exec returns the command line executing a package binary
func (c PackageManagerCommands) Exec(command string) string {
	switch c.pm {
	case models.PNPM:
		return "pnpm " + command
	case models.Yarn:
		return "yarn " + command
	default:
		return "npx " + command
	}
}

// RunArgs returns the argv for running a package.json script
func (c PackageManagerCommands) RunArgs(script string) []string {
	if c.pm == models.NPM {
		return []string{"run", script}
	}
	return []string{script}
}

// CreateArgs returns the argv for "<pm> create <initializer>"
func (c PackageManagerCommands) CreateArgs(initializer string, extra ...string) []string {
	return append([]string{"create", initializer}, extra...)
}

// AddArgs returns the argv adding dependencies, as dev dependencies when dev is set
func (c PackageManagerCommands) AddArgs(dev bool, packages ...string) []string {
	args := []string{"add"}
	if dev {
		args = append(args, "-D")
	}
	return append(args, packages...)
}

// WorkspaceScript returns the root-level command running script inside one workspace
func (c PackageManagerCommands) WorkspaceScript(workspace, script string) string {
	switch c.pm {
	case models.PNPM:
		return "pnpm --filter " + workspace + " run " + script
	case models.Yarn:
		return "yarn workspace " + workspace + " run " + script
	default:
		return "npm --workspace " + workspace + " run " + script
	}
}

// AllWorkspacesScript returns the root-level command running script in every workspace that defines it
func (c PackageManagerCommands) AllWorkspacesScript(script string) string {
	switch c.pm {
	case models.PNPM:
		return "pnpm -r --if-present run " + script
	case models.Yarn:
		return "yarn workspaces foreach --all run " + script
	default:
		return "npm run " + script + " --workspaces --if-present"
	}
}

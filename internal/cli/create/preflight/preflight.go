// Package preflight checks the tools the generators shell out to.
package preflight

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pixie-sh/errors-go"

	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/models"
	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/shared"
)

// NodeConstraint is the Node.js range the scaffolders support
const NodeConstraint = ">= 18.0.0"

// Checker verifies node and the selected package manager
type Checker struct {
	Runner   shared.Runner
	LookPath func(file string) (string, error)
}

// NewChecker returns a Checker resolving binaries through PATH
func NewChecker(runner shared.Runner) Checker {
	return Checker{Runner: runner, LookPath: exec.LookPath}
}

// Check fails when node, npx or the package manager is missing and warns
// when node is older than NodeConstraint.
func (c Checker) Check(ctx context.Context, pm models.PackageManager) ([]string, error) {
	res, err := c.Runner.Run(ctx, shared.Command{Name: "node", Args: []string{"--version"}, Quiet: true})
	if err != nil {
		return nil, errors.Wrap(err, "node is required but could not be run")
	}

	var warnings []string
	ok, err := NodeSatisfies(res.Stdout)
	switch {
	case err != nil:
		warnings = append(warnings, fmt.Sprintf("Could not parse Node.js version %q", strings.TrimSpace(res.Stdout)))
	case !ok:
		warnings = append(warnings, fmt.Sprintf("Node.js %s is older than the supported %s", strings.TrimSpace(res.Stdout), NodeConstraint))
	}

	// npx runs the framework scaffolders and wrangler whatever the package manager
	for _, tool := range []string{string(pm), "npx"} {
		if _, err := c.LookPath(tool); err != nil {
			return warnings, errors.Wrap(err, "%s is not installed or not on PATH", tool)
		}
	}

	return warnings, nil
}

// NodeSatisfies reports whether a `node --version` output meets NodeConstraint
func NodeSatisfies(output string) (bool, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(output), "v"))
	if err != nil {
		return false, errors.Wrap(err, "invalid node version %q", output)
	}

	constraint, err := semver.NewConstraint(NodeConstraint)
	if err != nil {
		return false, errors.Wrap(err, "invalid constraint")
	}
	return constraint.Check(v), nil
}

package models

import (
	"github.com/pixie-sh/errors-go"
)

// PackageManager is the JavaScript package manager driving the generated workspace
type PackageManager string

const (
	PNPM PackageManager = "pnpm"
	NPM  PackageManager = "npm"
	Yarn PackageManager = "yarn"
)

// PackageManagers returns the supported package managers in prompt order
func PackageManagers() []PackageManager {
	return []PackageManager{PNPM, NPM, Yarn}
}

// ParsePackageManager converts a raw value into a PackageManager
func ParsePackageManager(s string) (PackageManager, error) {
	for _, pm := range PackageManagers() {
		if string(pm) == s {
			return pm, nil
		}
	}
	return "", errors.New("unsupported package manager: %s (valid: pnpm, npm, yarn)", s)
}

// BaseColor is the shadcn-svelte base color used for the web UI theme
type BaseColor string

const (
	Neutral BaseColor = "neutral"
	Slate   BaseColor = "slate"
	Gray    BaseColor = "gray"
	Zinc    BaseColor = "zinc"
	Stone   BaseColor = "stone"
)

// BaseColors returns the supported base colors in prompt order
func BaseColors() []BaseColor {
	return []BaseColor{Neutral, Slate, Gray, Zinc, Stone}
}

// ParseBaseColor converts a raw value into a BaseColor
func ParseBaseColor(s string) (BaseColor, error) {
	for _, c := range BaseColors() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", errors.New("unsupported base color: %s (valid: neutral, slate, gray, zinc, stone)", s)
}

// ProjectConfig holds the answers collected before generation.
// It is built once and passed by value to every stage.
type ProjectConfig struct {
	Name           string         // Project name (e.g., "my-app")
	TargetDir      string         // Absolute output directory
	UseTypeScript  bool           // Typed (ts) or untyped (jsdoc) web app
	PackageManager PackageManager // pnpm, npm or yarn
	BaseColor      BaseColor      // shadcn-svelte base color
}

// Workspaces lists the workspace directories declared in the root manifest
var Workspaces = []string{"web", "api", "scripts", "tests"}

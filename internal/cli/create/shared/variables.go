package shared

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/models"
)

// TemplateVariables holds the values substituted into {{NAME}} placeholders
type TemplateVariables struct {
	ProjectName    string
	UseTypeScript  bool
	PackageManager string
	UsePnpm        bool
	UseNpm         bool
	UseYarn        bool
}

// Variable is a single placeholder name and its rendered value
type Variable struct {
	Name  string
	Value string
}

var tokenPattern = regexp.MustCompile(`\{\{[A-Z0-9_]+\}\}`)

// NewTemplateVariables derives the variable set from a project configuration
func NewTemplateVariables(cfg models.ProjectConfig) TemplateVariables {
	return TemplateVariables{
		ProjectName:    cfg.Name,
		UseTypeScript:  cfg.UseTypeScript,
		PackageManager: string(cfg.PackageManager),
		UsePnpm:        cfg.PackageManager == models.PNPM,
		UseNpm:         cfg.PackageManager == models.NPM,
		UseYarn:        cfg.PackageManager == models.Yarn,
	}
}

// Pairs returns the known placeholders in a fixed order
func (v TemplateVariables) Pairs() []Variable {
	return []Variable{
		{Name: "PROJECT_NAME", Value: v.ProjectName},
		{Name: "USE_TYPESCRIPT", Value: strconv.FormatBool(v.UseTypeScript)},
		{Name: "PACKAGE_MANAGER", Value: v.PackageManager},
		{Name: "USE_PNPM", Value: strconv.FormatBool(v.UsePnpm)},
		{Name: "USE_NPM", Value: strconv.FormatBool(v.UseNpm)},
		{Name: "USE_YARN", Value: strconv.FormatBool(v.UseYarn)},
	}
}

// ReplaceVariables substitutes every occurrence of each known {{NAME}} token.
// Tokens outside the known set are left untouched.
func ReplaceVariables(content string, pairs []Variable) string {
	for _, p := range pairs {
		content = strings.ReplaceAll(content, "{{"+p.Name+"}}", p.Value)
	}
	return content
}

// UnresolvedTokens lists the distinct {{NAME}} tokens still present in content
func UnresolvedTokens(content string) []string {
	seen := make(map[string]bool)
	var tokens []string
	for _, tok := range tokenPattern.FindAllString(content, -1) {
		if !seen[tok] {
			seen[tok] = true
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

package prompt

import (
	"fmt"
	"io"
	"path/filepath"
	"regexp"

	"github.com/pixie-sh/errors-go"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/models"
	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/settings"
	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/shared"
)

// DefaultProjectName is offered as the initial project name
const DefaultProjectName = "my-cloudflare-app"

var projectNamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

var titleCaser = cases.Title(language.English)

// ValidateProjectName checks that name is usable as a directory and package name
func ValidateProjectName(name string) error {
	if name == "" {
		return errors.New("Project name is required")
	}
	if !projectNamePattern.MatchString(name) {
		return errors.New("Project name can only contain lowercase letters, numbers, hyphens, and underscores")
	}
	return nil
}

// Collector gathers the project configuration
type Collector struct {
	Prompter Prompter
	Out      io.Writer
	WorkDir  string                  // Directory the project is created in
	Defaults settings.PromptDefaults // Initial answers
}

// Collect asks the questions in a fixed order and checks the target directory.
// It returns ErrCancelled when the user aborts or declines to overwrite.
func (c Collector) Collect(nameArg string) (models.ProjectConfig, error) {
	fmt.Fprintln(c.Out, shared.Bold(shared.Blue("\ncreate-cloudflare-monorepo\n")))
	fmt.Fprintln(c.Out, shared.Dim("An opinionated monorepo initializer for Cloudflare-deployed applications\n"))

	name := nameArg
	if name == "" {
		var err error
		name, err = c.Prompter.Input("Project name:", DefaultProjectName, ValidateProjectName)
		if err != nil {
			return models.ProjectConfig{}, err
		}
	}
	if err := ValidateProjectName(name); err != nil {
		return models.ProjectConfig{}, errors.Wrap(err, "invalid project name %q", name)
	}

	useTypeScript, err := c.Prompter.Confirm("Use TypeScript?", c.Defaults.TypeScript)
	if err != nil {
		return models.ProjectConfig{}, err
	}

	pm, err := c.selectPackageManager()
	if err != nil {
		return models.ProjectConfig{}, err
	}

	color, err := c.selectBaseColor()
	if err != nil {
		return models.ProjectConfig{}, err
	}

	targetDir, err := filepath.Abs(filepath.Join(c.WorkDir, name))
	if err != nil {
		return models.ProjectConfig{}, errors.Wrap(err, "failed to resolve target directory")
	}

	if err := c.confirmOverwrite(name, targetDir); err != nil {
		return models.ProjectConfig{}, err
	}

	return models.ProjectConfig{
		Name:           name,
		TargetDir:      targetDir,
		UseTypeScript:  useTypeScript,
		PackageManager: pm,
		BaseColor:      color,
	}, nil
}

func (c Collector) selectPackageManager() (models.PackageManager, error) {
	var options []SelectOption
	for _, pm := range models.PackageManagers() {
		label := string(pm)
		if pm == models.PNPM {
			label += " (recommended)"
		}
		options = append(options, SelectOption{Label: label, Value: string(pm)})
	}

	initial := c.Defaults.PackageManager
	if _, err := models.ParsePackageManager(initial); err != nil {
		initial = string(models.PNPM)
	}

	value, err := c.Prompter.Select("Select package manager:", options, initial)
	if err != nil {
		return "", err
	}
	return models.ParsePackageManager(value)
}

func (c Collector) selectBaseColor() (models.BaseColor, error) {
	var options []SelectOption
	for _, color := range models.BaseColors() {
		options = append(options, SelectOption{Label: titleCaser.String(string(color)), Value: string(color)})
	}

	initial := c.Defaults.BaseColor
	if _, err := models.ParseBaseColor(initial); err != nil {
		initial = string(models.Neutral)
	}

	value, err := c.Prompter.Select("Select UI base color:", options, initial)
	if err != nil {
		return "", err
	}
	return models.ParseBaseColor(value)
}

// confirmOverwrite prompts only when targetDir exists and has entries
func (c Collector) confirmOverwrite(name, targetDir string) error {
	if !shared.PathExists(targetDir) {
		return nil
	}

	empty, err := shared.IsEmptyDir(targetDir)
	if err != nil {
		return err
	}
	if empty {
		return nil
	}

	overwrite, err := c.Prompter.Confirm(
		fmt.Sprintf("Directory %q already exists and is not empty. Overwrite?", name),
		false,
	)
	if err != nil {
		return err
	}
	if !overwrite {
		return ErrCancelled
	}
	return nil
}

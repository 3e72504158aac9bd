// Package report prints the closing summary of a run.
package report

import (
	"fmt"
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/models"
	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/shared"
)

var printer = message.NewPrinter(language.English)

// Summary is everything the closing report needs
type Summary struct {
	Config   models.ProjectConfig
	Elapsed  time.Duration
	Warnings []string
}

type commandHelp struct {
	script      string
	description string
}

type commandGroup struct {
	title    string
	commands []commandHelp
}

var commandGroups = []commandGroup{
	{"Development", []commandHelp{{"dev", "Start dev servers"}, {"build", "Build all apps"}}},
	{"Testing", []commandHelp{{"test", "Run E2E tests"}, {"test:unit", "Run API unit tests"}}},
	{"Code Quality", []commandHelp{{"lint", "Lint code"}, {"format", "Format code"}}},
	{"Documentation", []commandHelp{{"apidocs", "Generate OpenAPI spec"}}},
	{"Deployment", []commandHelp{{"deploy:web", "Deploy web to Pages"}, {"deploy:api", "Deploy API to Workers"}}},
}

var docs = [][2]string{
	{"Root:", "README.md"},
	{"Web:", "web/README.md"},
	{"API:", "api/README.md"},
	{"Tests:", "tests/README.md"},
	{"Scripts:", "scripts/README.md"},
}

// Print writes the success banner, warnings and next steps
func Print(out io.Writer, s Summary) {
	pm := shared.CommandsFor(s.Config.PackageManager)

	fmt.Fprintln(out, shared.Bold(shared.Green(
		printer.Sprintf("\n✅ Success! Created %s in %.1fs\n", s.Config.Name, s.Elapsed.Seconds()))))

	if len(s.Warnings) > 0 {
		fmt.Fprintln(out, shared.Bold(shared.Yellow("⚠️  Warnings:\n")))
		for _, w := range s.Warnings {
			fmt.Fprintln(out, shared.Yellow("  • "+w))
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, shared.Bold("Next steps:\n"))
	fmt.Fprintln(out, shared.Cyan("  1. ")+"cd "+s.Config.Name)
	fmt.Fprintln(out, shared.Cyan("  2. ")+pm.Run("dev"))

	fmt.Fprintln(out, shared.Bold("\nAvailable commands:"))
	for _, group := range commandGroups {
		fmt.Fprintln(out, shared.Dim("\n  "+group.title+":"))
		for _, c := range group.commands {
			fmt.Fprintf(out, "    %-22s %s\n", pm.Run(c.script), shared.Dim(c.description))
		}
	}

	fmt.Fprintln(out, shared.Bold("\nDocumentation:\n"))
	for _, d := range docs {
		fmt.Fprintf(out, "  %s %s\n", shared.Dim(fmt.Sprintf("%-8s", d[0])), d[1])
	}

	fmt.Fprintln(out, shared.Dim("\nHappy coding! 🎉\n"))
}

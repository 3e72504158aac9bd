// Package create wires the scaffolding pipeline into a cobra command.
package create

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pixie-sh/errors-go"
	"github.com/spf13/cobra"

	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/cloudflare"
	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/finalize"
	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/generators"
	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/preflight"
	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/prompt"
	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/report"
	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/settings"
	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/shared"
	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/templates"
)

// Options holds the command line input
type Options struct {
	ProjectName string // Optional positional argument
	ConfigPath  string // Explicit config file, looked up when empty
	EnvPath     string // .env file, <WorkDir>/.env when empty
	WorkDir     string // Directory the project is created in
}

// Runtime holds the I/O and external capabilities of a run. Nil fields get
// the real implementations.
type Runtime struct {
	Out      io.Writer
	ErrOut   io.Writer
	Prompter prompt.Prompter
	Runner   shared.Runner
	Backend  cloudflare.Backend
	LookPath func(file string) (string, error)
}

// ProvisioningUnavailableWarning is reported when the configured provisioner
// cannot be set up; the run continues with placeholder resource ids
const ProvisioningUnavailableWarning = "Cloudflare API provisioning needs CLOUDFLARE_API_TOKEN and an account id. Resources were not created; update the IDs in api/wrangler.jsonc manually."

// Cmd returns the root scaffolding command
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-cloudflare-monorepo [project-name]",
		Short: "Create a Cloudflare monorepo with SvelteKit, Hono and Playwright",
		Long: `Create a monorepo for a Cloudflare-deployed application.

The generated project contains:
  web/      SvelteKit frontend for Cloudflare Pages (Tailwind CSS, shadcn-svelte)
  api/      Hono API for Cloudflare Workers with OpenAPI routes, KV and D1 bindings
  tests/    Playwright end-to-end tests
  scripts/  Deployment and Cloudflare setup scripts

Configuration:
  Prompt defaults and provisioning settings are read from .create-cf-monorepo.yaml
  in the current directory or your home directory. CLOUDFLARE_API_TOKEN and
  CLOUDFLARE_ACCOUNT_ID enable provisioning through the Cloudflare API instead of
  wrangler. Set DEBUG=1 for diagnostic output.

Examples:
  # Answer every question interactively
  create-cloudflare-monorepo

  # Name the project up front
  create-cloudflare-monorepo my-app
`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			envPath, _ := cmd.Flags().GetString("env")

			workDir, err := os.Getwd()
			if err != nil {
				return errors.Wrap(err, "failed to resolve working directory")
			}

			opts := Options{
				ConfigPath: configPath,
				EnvPath:    envPath,
				WorkDir:    workDir,
			}
			if len(args) == 1 {
				opts.ProjectName = args[0]
			}

			return Run(cmd.Context(), opts, Runtime{Out: cmd.OutOrStdout(), ErrOut: cmd.ErrOrStderr()})
		},
	}

	cmd.Flags().String("config", "", "Path to configuration file")
	cmd.Flags().String("env", "", "Path to environment file")

	return cmd
}

// RootCmd returns Cmd stamped with a version for the binary. It has no
// subcommands: "version", "help" and "completion" are project names.
func RootCmd(versionInfo string) *cobra.Command {
	cmd := Cmd()
	cmd.Version = versionInfo
	cmd.SetVersionTemplate("create-cloudflare-monorepo version {{.Version}}\n")
	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}

// Run executes the whole pipeline. A user cancellation returns nil.
func Run(ctx context.Context, opts Options, rt Runtime) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if rt.Out == nil {
		rt.Out = os.Stdout
	}
	if rt.ErrOut == nil {
		rt.ErrOut = os.Stderr
	}

	envPath := opts.EnvPath
	if envPath == "" {
		envPath = filepath.Join(opts.WorkDir, ".env")
	}
	if err := settings.LoadDotEnv(envPath); err != nil {
		fmt.Fprintln(rt.ErrOut, shared.Yellow("⚠ "+err.Error()))
	}

	env, err := settings.LoadEnv()
	if err != nil {
		return err
	}

	fileCfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger := shared.NewLogger(rt.ErrOut, env.Debug)

	if rt.Runner == nil {
		runner := shared.NewExecRunner(logger)
		runner.Out = rt.Out
		runner.ErrOut = rt.ErrOut
		rt.Runner = runner
	}
	if rt.Prompter == nil {
		rt.Prompter = prompt.NewPrompter()
	}

	collector := prompt.Collector{
		Prompter: rt.Prompter,
		Out:      rt.Out,
		WorkDir:  opts.WorkDir,
		Defaults: fileCfg.Defaults,
	}
	cfg, err := collector.Collect(opts.ProjectName)
	if stderrors.Is(err, prompt.ErrCancelled) {
		fmt.Fprintln(rt.Out, shared.Red("✖ Cancelled"))
		return nil
	}
	if err != nil {
		return err
	}

	var setupWarnings []string
	if rt.Backend == nil {
		mode, err := settings.ResolveProvisioner(env, fileCfg)
		if err != nil {
			return err
		}
		rt.Backend, err = cloudflare.NewBackend(cloudflare.BackendOptions{
			Mode:      mode,
			APIToken:  env.CloudflareAPIToken,
			AccountID: settings.AccountID(env, fileCfg),
			Runner:    rt.Runner,
			Dir:       cfg.TargetDir,
		})
		if err != nil {
			logger.Debug().Err(err).Str("mode", mode).Msg("provisioning backend unavailable")
			rt.Backend = cloudflare.SkipBackend{}
			setupWarnings = append(setupWarnings, ProvisioningUnavailableWarning)
		}
	}

	startTime := time.Now()

	fmt.Fprintln(rt.Out, shared.Cyan(fmt.Sprintf("\n🚀 Creating %s...", cfg.Name)))
	logger.Debug().
		Str("dir", cfg.TargetDir).
		Str("pm", string(cfg.PackageManager)).
		Bool("typescript", cfg.UseTypeScript).
		Msg("project config")

	checker := preflight.NewChecker(rt.Runner)
	if rt.LookPath != nil {
		checker.LookPath = rt.LookPath
	}
	warnings, err := checker.Check(ctx, cfg.PackageManager)
	if err != nil {
		return err
	}
	warnings = append(warnings, setupWarnings...)
	for _, w := range warnings {
		fmt.Fprintln(rt.Out, shared.Yellow("⚠ "+w))
	}

	if err := shared.EnsureDir(cfg.TargetDir); err != nil {
		return err
	}

	generated, err := generators.Run(ctx, generators.Stages(), cfg, generators.Deps{
		Runner:    rt.Runner,
		Backend:   rt.Backend,
		Templates: templates.TemplateFS,
		Out:       rt.Out,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	warnings = append(warnings, generated...)

	finalizer := finalize.Finalizer{Runner: rt.Runner, Out: rt.Out}
	finalized, err := finalizer.Finalize(ctx, cfg)
	if err != nil {
		return err
	}
	warnings = append(warnings, finalized...)

	report.Print(rt.Out, report.Summary{
		Config:   cfg,
		Elapsed:  time.Since(startTime),
		Warnings: warnings,
	})

	return nil
}

func loadConfig(opts Options) (settings.FileConfig, error) {
	if opts.ConfigPath != "" {
		return settings.LoadConfigFile(opts.ConfigPath)
	}
	return settings.LoadConfig(opts.WorkDir)
}

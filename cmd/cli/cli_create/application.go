package main

import (
	"fmt"
	"os"

	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create"
	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/settings"
	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/shared"
	"github.com/idoru/create-cloudflare-monorepo/internal/version"
)

func main() {
	rootCmd := create.RootCmd(version.Info())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, shared.Bold(shared.Red("\n✖ Error:")), err.Error())
		if env, envErr := settings.LoadEnv(); envErr == nil && env.Debug {
			fmt.Fprintln(os.Stderr, shared.Dim(fmt.Sprintf("%+v", err)))
		}
		os.Exit(1)
	}
}

// Package commands provides public access to the scaffolding command for embedding in other CLIs.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create"
)

// CreateCmd returns the monorepo scaffolding command. Its positional argument
// is the project name; without it the user is prompted.
func CreateCmd() *cobra.Command {
	return create.Cmd()
}

package cloudflare

import (
	"context"
	"fmt"
	"io"

	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/shared"
)

// Sentinel is written in place of an identifier that could not be provisioned
const Sentinel = "FIXME-REPLACE-WITH-ACTUAL-ID"

// Resources is the outcome of provisioning. Every ID is either real or Sentinel.
type Resources struct {
	KVID     string
	D1ID     string
	Warnings []string
}

// Backend creates and looks up the resources the API binds to.
// Lookup returns an empty ID without error when nothing matches the name.
type Backend interface {
	CreateKVNamespace(ctx context.Context, name string) error
	LookupKVNamespace(ctx context.Context, name string) (string, error)
	CreateDatabase(ctx context.Context, name string) error
	LookupDatabase(ctx context.Context, name string) (string, error)
}

// KVName derives the KV namespace name for a project
func KVName(projectName string) string {
	return projectName + "-kv"
}

// DatabaseName derives the D1 database name for a project
func DatabaseName(projectName string) string {
	return projectName + "-db"
}

// resourceKind binds one resource type to its backend calls
type resourceKind struct {
	label  string
	create func(ctx context.Context, name string) error
	lookup func(ctx context.Context, name string) (string, error)
}

// Provision creates the KV namespace and D1 database for projectName.
// It never fails: each resource that cannot be created and resolved gets
// the Sentinel ID and a warning.
func Provision(ctx context.Context, backend Backend, projectName string, out io.Writer) Resources {
	fmt.Fprintln(out, shared.Cyan("\nCreating Cloudflare resources..."))

	kvName := KVName(projectName)
	d1Name := DatabaseName(projectName)

	var warnings []string

	kvID := ensure(ctx, out, resourceKind{"KV namespace", backend.CreateKVNamespace, backend.LookupKVNamespace}, kvName)
	if kvID == "" {
		warnings = append(warnings, fmt.Sprintf("KV namespace %q could not be created. Update the ID in api/wrangler.jsonc manually.", kvName))
		kvID = Sentinel
	}

	d1ID := ensure(ctx, out, resourceKind{"D1 database", backend.CreateDatabase, backend.LookupDatabase}, d1Name)
	if d1ID == "" {
		warnings = append(warnings, fmt.Sprintf("D1 database %q could not be created. Update the ID in api/wrangler.jsonc manually.", d1Name))
		d1ID = Sentinel
	}

	if len(warnings) == 0 {
		fmt.Fprintln(out, shared.Green("   ✓ All Cloudflare resources created"))
	}

	return Resources{KVID: kvID, D1ID: d1ID, Warnings: warnings}
}

// ensure returns the ID of the created resource, or "" on any failure
func ensure(ctx context.Context, out io.Writer, kind resourceKind, name string) string {
	fmt.Fprintln(out, shared.Dim(fmt.Sprintf("   Creating %s: %s...", kind.label, name)))

	if err := kind.create(ctx, name); err != nil {
		fmt.Fprintln(out, shared.Yellow(fmt.Sprintf("   ⚠ Could not create %s: %v", kind.label, err)))
		return ""
	}
	fmt.Fprintln(out, shared.Green(fmt.Sprintf("   ✓ %s created", kind.label)))

	id, err := kind.lookup(ctx, name)
	if err != nil || id == "" {
		fmt.Fprintln(out, shared.Yellow(fmt.Sprintf("   ⚠ Could not retrieve %s ID", kind.label)))
		return ""
	}

	fmt.Fprintln(out, shared.Dim("     ID: "+id))
	return id
}

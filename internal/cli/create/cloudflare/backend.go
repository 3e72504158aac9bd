package cloudflare

import (
	"context"

	"github.com/pixie-sh/errors-go"

	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/settings"
	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/shared"
)

// BackendOptions selects and configures a provisioning backend
type BackendOptions struct {
	Mode      string // One of the settings.Provisioner* values
	APIToken  string
	AccountID string
	Runner    shared.Runner
	Dir       string // Working directory for wrangler
}

// NewBackend returns the backend for opts.Mode. In auto mode the API is used
// when a token and account id are both configured, wrangler otherwise.
func NewBackend(opts BackendOptions) (Backend, error) {
	mode := opts.Mode
	if mode == "" || mode == settings.ProvisionerAuto {
		mode = settings.ProvisionerWrangler
		if opts.APIToken != "" && opts.AccountID != "" {
			mode = settings.ProvisionerAPI
		}
	}

	switch mode {
	case settings.ProvisionerWrangler:
		return WranglerBackend{Runner: opts.Runner, Dir: opts.Dir}, nil
	case settings.ProvisionerAPI:
		return NewAPIBackend(opts.APIToken, opts.AccountID)
	case settings.ProvisionerSkip:
		return SkipBackend{}, nil
	default:
		return nil, errors.New("unknown provisioner %q", opts.Mode)
	}
}

// SkipBackend refuses every request, leaving both resources as sentinels
type SkipBackend struct{}

var errSkipped = errors.New("provisioning disabled")

func (SkipBackend) CreateKVNamespace(context.Context, string) error { return errSkipped }

func (SkipBackend) LookupKVNamespace(context.Context, string) (string, error) { return "", errSkipped }

func (SkipBackend) CreateDatabase(context.Context, string) error { return errSkipped }

func (SkipBackend) LookupDatabase(context.Context, string) (string, error) { return "", errSkipped }

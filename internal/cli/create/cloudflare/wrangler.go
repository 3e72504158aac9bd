package cloudflare

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/pixie-sh/errors-go"

	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/shared"
)

// WranglerBackend provisions through the wrangler CLI and the user's wrangler login
type WranglerBackend struct {
	Runner shared.Runner
	Dir    string
}

type kvNamespace struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type d1Info struct {
	UUID string `json:"uuid"`
}

func (w WranglerBackend) wrangler(ctx context.Context, args ...string) (string, error) {
	res, err := w.Runner.Run(ctx, shared.Command{
		Dir:   w.Dir,
		Name:  "npx",
		Args:  append([]string{"wrangler"}, args...),
		Mode:  shared.Capture,
		Quiet: true,
	})
	return res.Stdout, err
}

func (w WranglerBackend) CreateKVNamespace(ctx context.Context, name string) error {
	_, err := w.wrangler(ctx, "kv", "namespace", "create", name)
	return err
}

func (w WranglerBackend) LookupKVNamespace(ctx context.Context, name string) (string, error) {
	out, err := w.wrangler(ctx, "kv", "namespace", "list")
	if err != nil {
		return "", err
	}

	var namespaces []kvNamespace
	if err := json.Unmarshal([]byte(out), &namespaces); err != nil {
		return "", errors.Wrap(err, "failed to parse kv namespace list")
	}

	for _, ns := range namespaces {
		if ns.Title == name {
			return ns.ID, nil
		}
	}
	return "", nil
}

func (w WranglerBackend) CreateDatabase(ctx context.Context, name string) error {
	_, err := w.wrangler(ctx, "d1", "create", name)
	return err
}

func (w WranglerBackend) LookupDatabase(ctx context.Context, name string) (string, error) {
	out, err := w.wrangler(ctx, "d1", "info", name, "--json")
	if err != nil {
		return "", err
	}

	var info d1Info
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		return "", errors.Wrap(err, "failed to parse d1 info for %s", name)
	}
	return info.UUID, nil
}

package cloudflare

import (
	"context"

	cf "github.com/cloudflare/cloudflare-go"
	"github.com/pixie-sh/errors-go"
)

// API is the subset of the Cloudflare client used for provisioning
type API interface {
	CreateWorkersKVNamespace(ctx context.Context, rc *cf.ResourceContainer, params cf.CreateWorkersKVNamespaceParams) (cf.WorkersKVNamespaceResponse, error)
	ListWorkersKVNamespaces(ctx context.Context, rc *cf.ResourceContainer, params cf.ListWorkersKVNamespacesParams) ([]cf.WorkersKVNamespace, *cf.ResultInfo, error)
	CreateD1Database(ctx context.Context, rc *cf.ResourceContainer, params cf.CreateD1DatabaseParams) (cf.D1Database, error)
	ListD1Databases(ctx context.Context, rc *cf.ResourceContainer, params cf.ListD1DatabasesParams) ([]cf.D1Database, *cf.ResultInfo, error)
}

// APIBackend provisions through the Cloudflare REST API with an API token
type APIBackend struct {
	API       API
	AccountID string
}

// NewAPIBackend creates a backend authenticated with token for accountID
func NewAPIBackend(token, accountID string) (*APIBackend, error) {
	if token == "" {
		return nil, errors.New("cloudflare api token is required")
	}
	if accountID == "" {
		return nil, errors.New("cloudflare account id is required")
	}

	api, err := cf.NewWithAPIToken(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Cloudflare API client")
	}

	return &APIBackend{API: api, AccountID: accountID}, nil
}

func (b *APIBackend) account() *cf.ResourceContainer {
	return cf.AccountIdentifier(b.AccountID)
}

func (b *APIBackend) CreateKVNamespace(ctx context.Context, name string) error {
	_, err := b.API.CreateWorkersKVNamespace(ctx, b.account(), cf.CreateWorkersKVNamespaceParams{Title: name})
	if err != nil {
		return errors.Wrap(err, "failed to create kv namespace %s", name)
	}
	return nil
}

func (b *APIBackend) LookupKVNamespace(ctx context.Context, name string) (string, error) {
	namespaces, _, err := b.API.ListWorkersKVNamespaces(ctx, b.account(), cf.ListWorkersKVNamespacesParams{})
	if err != nil {
		return "", errors.Wrap(err, "failed to list kv namespaces")
	}

	for _, ns := range namespaces {
		if ns.Title == name {
			return ns.ID, nil
		}
	}
	return "", nil
}

func (b *APIBackend) CreateDatabase(ctx context.Context, name string) error {
	_, err := b.API.CreateD1Database(ctx, b.account(), cf.CreateD1DatabaseParams{Name: name})
	if err != nil {
		return errors.Wrap(err, "failed to create d1 database %s", name)
	}
	return nil
}

func (b *APIBackend) LookupDatabase(ctx context.Context, name string) (string, error) {
	databases, _, err := b.API.ListD1Databases(ctx, b.account(), cf.ListD1DatabasesParams{Name: name})
	if err != nil {
		return "", errors.Wrap(err, "failed to list d1 databases")
	}

	for _, db := range databases {
		if db.Name == name {
			return db.UUID, nil
		}
	}
	return "", nil
}

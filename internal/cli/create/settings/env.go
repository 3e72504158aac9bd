package settings

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pixie-sh/errors-go"
	"github.com/spf13/viper"
)

// Env holds the settings read from the process environment
type Env struct {
	Debug               bool   // DEBUG: verbose diagnostics and detailed errors
	CloudflareAPIToken  string // CLOUDFLARE_API_TOKEN
	CloudflareAccountID string // CLOUDFLARE_ACCOUNT_ID
	Provisioner         string // CREATE_CF_MONOREPO_PROVISIONER
}

var envBindings = map[string]string{
	"debug":                 "DEBUG",
	"cloudflare_api_token":  "CLOUDFLARE_API_TOKEN",
	"cloudflare_account_id": "CLOUDFLARE_ACCOUNT_ID",
	"provisioner":           "CREATE_CF_MONOREPO_PROVISIONER",
}

// LoadDotEnv loads path into the process environment when it exists.
// Variables already set are not overridden.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrap(err, "failed to load env file: %s", path)
	}
	return nil
}

// LoadEnv reads the environment settings
func LoadEnv() (Env, error) {
	v := viper.New()
	for key, name := range envBindings {
		if err := v.BindEnv(key, name); err != nil {
			return Env{}, errors.Wrap(err, "failed to bind env %s", name)
		}
	}

	return Env{
		Debug:               isTruthy(v.GetString("debug")),
		CloudflareAPIToken:  strings.TrimSpace(v.GetString("cloudflare_api_token")),
		CloudflareAccountID: strings.TrimSpace(v.GetString("cloudflare_account_id")),
		Provisioner:         strings.ToLower(strings.TrimSpace(v.GetString("provisioner"))),
	}, nil
}

// isTruthy treats any non-empty value other than an explicit false as enabled,
// so DEBUG=1, DEBUG=* and DEBUG=create all turn diagnostics on.
func isTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "false", "no", "off":
		return false
	}
	return true
}

// ResolveProvisioner picks the effective provisioner mode: the environment wins over the config file
func ResolveProvisioner(env Env, cfg FileConfig) (string, error) {
	mode := cfg.Cloudflare.Provisioner
	if env.Provisioner != "" {
		mode = env.Provisioner
	}
	if mode == "" {
		mode = ProvisionerAuto
	}

	switch mode {
	case ProvisionerAuto, ProvisionerWrangler, ProvisionerAPI, ProvisionerSkip:
		return mode, nil
	}
	return "", errors.New("unsupported provisioner: %s (valid: auto, wrangler, api, skip)", mode)
}

// AccountID returns the Cloudflare account id, preferring the environment
func AccountID(env Env, cfg FileConfig) string {
	if env.CloudflareAccountID != "" {
		return env.CloudflareAccountID
	}
	return cfg.Cloudflare.AccountID
}

package settings

import (
	"os"
	"path/filepath"

	"github.com/pixie-sh/errors-go"
	"gopkg.in/yaml.v3"

	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/models"
)

// Provisioner modes accepted in the config file and environment
const (
	ProvisionerAuto     = "auto"
	ProvisionerWrangler = "wrangler"
	ProvisionerAPI      = "api"
	ProvisionerSkip     = "skip"
)

// ConfigFileNames are looked up in the working directory, in order
var ConfigFileNames = []string{".create-cf-monorepo.yaml", "create-cf-monorepo.yaml"}

// FileConfig holds user preferences loaded from the config file.
// Missing keys keep their defaults.
type FileConfig struct {
	Defaults   PromptDefaults   `yaml:"defaults"`
	Cloudflare CloudflareConfig `yaml:"cloudflare"`
}

// PromptDefaults are the initial answers offered by the prompts
type PromptDefaults struct {
	TypeScript     bool   `yaml:"typescript"`
	PackageManager string `yaml:"package_manager"`
	BaseColor      string `yaml:"base_color"`
}

// CloudflareConfig configures resource provisioning
type CloudflareConfig struct {
	Provisioner string `yaml:"provisioner"` // auto, wrangler, api or skip
	AccountID   string `yaml:"account_id"`
}

// DefaultConfig returns a FileConfig with the built-in defaults
func DefaultConfig() FileConfig {
	return FileConfig{
		Defaults: PromptDefaults{
			TypeScript:     true,
			PackageManager: string(models.PNPM),
			BaseColor:      string(models.Neutral),
		},
		Cloudflare: CloudflareConfig{
			Provisioner: ProvisionerAuto,
		},
	}
}

// ResolveConfigPath returns the first config file found in dir, then in the home directory.
// An empty string means no config file exists.
func ResolveConfigPath(dir string) string {
	for _, name := range ConfigFileNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(home, ConfigFileNames[0])
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}

// LoadConfig loads the config file found from dir.
// If no config file is found, returns DefaultConfig with no error.
func LoadConfig(dir string) (FileConfig, error) {
	path := ResolveConfigPath(dir)
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadConfigFile(path)
}

// LoadConfigFile parses and validates a specific config file
func LoadConfigFile(path string) (FileConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "failed to read config file: %s", path)
	}

	issues, err := Validate(data)
	if err != nil {
		return cfg, errors.Wrap(err, "failed to validate config file: %s", path)
	}
	if len(issues) > 0 {
		return cfg, errors.New("invalid config file %s:\n%s", path, FormatIssues(issues))
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "failed to parse config file: %s", path)
	}

	return cfg, nil
}

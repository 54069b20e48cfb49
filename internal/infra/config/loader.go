package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/starapp/internal/domain"
)

// FileName is the config file looked up in the config root.
const FileName = "starapp.yaml"

// LoadConfig loads starapp.yaml from root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	path := filepath.Join(root, FileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapConfig(path, y)
}

// Discover searches upward from startDir for starapp.yaml. A missing file
// is not an error: defaults are returned with an empty root.
func Discover(startDir string) (domain.Config, string, error) {
	root, err := NewFinder().FindRoot(startDir)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return domain.DefaultConfig(), "", nil
		}
		return domain.DefaultConfig(), "", err
	}

	cfg, err := LoadConfig(root)
	return cfg, root, err
}

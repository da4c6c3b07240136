package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/treeml-cli/internal/core/domain"
	"github.com/custodia-labs/treeml-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is a file-based implementation of driven.ConfigStore using TOML.
// Configuration is stored in a TOML file within the treeml config directory.
type ConfigStore struct {
	mu       sync.Mutex
	filePath string
}

// fileConfig is the on-disk TOML shape of domain.Config.
type fileConfig struct {
	Strict     bool          `toml:"strict"`
	PrettyJSON bool          `toml:"pretty_json"`
	Dialect    dialectConfig `toml:"dialect"`
	Archive    archiveConfig `toml:"archive"`
}

type dialectConfig struct {
	VoidTags    []string `toml:"void_tags"`
	RawTextTags []string `toml:"raw_text_tags"`
}

type archiveConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// NewConfigStore creates a new TOML-based config store.
// If configDir is empty, defaults to ~/.treeml/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		configDir = filepath.Join(home, ".treeml")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	return &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
	}, nil
}

// Load reads the configuration file. A missing file yields the
// defaults; keys absent from an existing file keep their default
// values.
func (s *ConfigStore) Load(_ context.Context) (*domain.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	fc := toFileConfig(domain.DefaultConfig())
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return fromFileConfig(fc), nil
}

// Save writes the configuration with restricted permissions.
func (s *ConfigStore) Save(_ context.Context, cfg *domain.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := toml.Marshal(toFileConfig(cfg))
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

func toFileConfig(cfg *domain.Config) fileConfig {
	return fileConfig{
		Strict:     cfg.Strict,
		PrettyJSON: cfg.PrettyJSON,
		Dialect: dialectConfig{
			VoidTags:    cfg.ExtraVoidTags,
			RawTextTags: cfg.ExtraRawTextTags,
		},
		Archive: archiveConfig{
			Enabled: cfg.Archive.Enabled,
			Path:    cfg.Archive.Path,
		},
	}
}

func fromFileConfig(fc fileConfig) *domain.Config {
	return &domain.Config{
		Strict:           fc.Strict,
		PrettyJSON:       fc.PrettyJSON,
		ExtraVoidTags:    fc.Dialect.VoidTags,
		ExtraRawTextTags: fc.Dialect.RawTextTags,
		Archive: domain.ArchiveConfig{
			Enabled: fc.Archive.Enabled,
			Path:    fc.Archive.Path,
		},
	}
}

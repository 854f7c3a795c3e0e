// Config loading for the pantry CLI.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/pantry/internal/catalog"
	"github.com/mesh-intelligence/pantry/internal/paths"
	"github.com/mesh-intelligence/pantry/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// envPrefix scopes environment overrides, e.g. PANTRY_CONTAINER_SHAPE.
	envPrefix = "PANTRY"

	// Config keys.
	cfgKeyShape   = "container.shape"
	cfgKeyCatalog = "catalog"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Container containerSection      `yaml:"container"`
	Catalog   []catalog.MediaRecord `yaml:"catalog"`
}

type containerSection struct {
	Shape string `yaml:"shape"`
}

// load reads .env, resolves the config directory and reads config.yaml into
// a.v. Missing .env and config.yaml files are not errors.
func (a *app) load() error {
	if err := loadEnvFile(); err != nil {
		return sysError(err)
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return sysError(err)
	}

	cfg := types.Config{
		ConfigDir: configDir,
		Shape:     v.GetString(cfgKeyShape),
	}
	if err := cfg.Validate(); err != nil {
		return userError(fmt.Errorf("invalid config in %s: %w", configDir, err))
	}

	a.v = v
	a.cfg = cfg
	a.logger.Debug("config loaded", "config_dir", configDir, "file", v.ConfigFileUsed(), "shape", cfg.Shape)
	return nil
}

// loadEnvFile loads .env from the working directory into the process
// environment without overriding variables that are already set.
func loadEnvFile() error {
	path, err := paths.EnvFile()
	if err != nil {
		return fmt.Errorf("locate .env: %w", err)
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// loadConfig reads config.yaml from configDir using Viper. Environment
// variables prefixed with PANTRY_ override file values.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyShape, types.DefaultShape)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// seedCatalog builds the catalog from the "catalog" key. When the key is
// absent the sample records are used.
func (a *app) seedCatalog() (*catalog.Catalog, error) {
	records := catalog.DefaultRecords
	if a.v.IsSet(cfgKeyCatalog) {
		records = nil
		if err := a.v.UnmarshalKey(cfgKeyCatalog, &records); err != nil {
			return nil, userError(fmt.Errorf("decode catalog: %w", err))
		}
	}

	c, err := catalog.Seed(records)
	if err != nil {
		return nil, userError(err)
	}
	a.logger.Debug("catalog seeded", "items", c.Len())
	return c, nil
}

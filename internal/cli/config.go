package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/storedesk/internal/logger"
	"github.com/mesh-intelligence/storedesk/internal/paths"
	"github.com/mesh-intelligence/storedesk/pkg/orders"
	"github.com/mesh-intelligence/storedesk/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"
	envFileName    = ".env"
	envPrefix      = "STOREDESK"

	cfgKeyBackend        = "backend"
	cfgKeyDataDir        = "data_dir"
	cfgKeyStoreID        = "store_id"
	cfgKeyInitialVisible = "initial_visible"
	cfgKeyLogLevel       = "log.level"
	cfgKeyLogFormat      = "log.format"
	cfgKeyLogOutput      = "log.output"
	cfgKeyLogFile        = "log.file"
)

// envKeys are the settings that STOREDESK_* variables override. data_dir is
// absent: its variable ranks below config.yaml and is read by paths.
var envKeys = []string{
	cfgKeyBackend,
	cfgKeyStoreID,
	cfgKeyInitialVisible,
	cfgKeyLogLevel,
	cfgKeyLogFormat,
	cfgKeyLogOutput,
	cfgKeyLogFile,
}

// Settings is the decoded CLI configuration.
type Settings struct {
	Backend        string      `mapstructure:"backend" validate:"required,oneof=sqlite"`
	DataDir        string      `mapstructure:"data_dir"`
	StoreID        string      `mapstructure:"store_id"`
	InitialVisible int         `mapstructure:"initial_visible" validate:"gte=0"`
	Log            LogSettings `mapstructure:"log"`

	// ConfigDir is where the settings were read from.
	ConfigDir string `mapstructure:"-"`
}

// LogSettings configures internal/logger.
type LogSettings struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn warning error fatal panic"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
	Output string `mapstructure:"output" validate:"oneof=stderr file both"`
	File   string `mapstructure:"file"`
}

// loggerConfig builds the logger configuration. File output without an
// explicit path goes to the data directory.
func (s *Settings) loggerConfig() logger.Config {
	c := logger.DefaultConfig()
	c.Level = s.Log.Level
	c.Format = s.Log.Format
	c.Output = s.Log.Output
	c.File = s.Log.File
	if c.File == "" && c.Output != logger.OutputStderr {
		c.File = paths.LogFile(s.DataDir)
	}
	return c
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// loadSettings reads config.yaml from configDir, applies STOREDESK_*
// overrides (seeded from an optional .env next to it), and validates the
// result. A missing config directory or config.yaml is not an error.
func loadSettings(configDir string) (*Settings, error) {
	envPath := filepath.Join(configDir, envFileName)
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, userError(fmt.Errorf("read %s: %w", envPath, err))
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendSQLite)
	v.SetDefault(cfgKeyDataDir, "")
	v.SetDefault(cfgKeyStoreID, "")
	v.SetDefault(cfgKeyInitialVisible, orders.DefaultVisible)
	v.SetDefault(cfgKeyLogLevel, "info")
	v.SetDefault(cfgKeyLogFormat, logger.FormatText)
	v.SetDefault(cfgKeyLogOutput, logger.OutputStderr)
	v.SetDefault(cfgKeyLogFile, "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, sysError(fmt.Errorf("bind %s: %w", key, err))
		}
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, userError(fmt.Errorf("read config: %w", err))
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, userError(fmt.Errorf("decode config: %w", err))
	}
	if err := validate.Struct(&s); err != nil {
		return nil, userError(fmt.Errorf("invalid config: %w", err))
	}
	return &s, nil
}

// configFile is the structure written to a fresh config.yaml.
type configFile struct {
	Backend        string        `yaml:"backend"`
	DataDir        string        `yaml:"data_dir,omitempty"`
	StoreID        string        `yaml:"store_id,omitempty"`
	InitialVisible int           `yaml:"initial_visible"`
	Log            configFileLog `yaml:"log"`
}

type configFileLog struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns false.
func writeConfigIfMissing(configDir, dataDir string) (bool, error) {
	path := filepath.Join(configDir, configFileExt)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	cfg := configFile{
		Backend:        types.BackendSQLite,
		DataDir:        dataDir,
		InitialVisible: orders.DefaultVisible,
		Log: configFileLog{
			Level:  "info",
			Format: logger.FormatText,
			Output: logger.OutputStderr,
		},
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}

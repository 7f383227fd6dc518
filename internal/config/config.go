package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/OCAP2/milsymbol/internal/database"
	"github.com/OCAP2/milsymbol/pkg/core"
	"github.com/spf13/viper"
)

// FileName is the config file Load looks for.
const FileName = "milsymbol.cfg.json"

// CatalogConfig selects where entity icons are loaded from.
type CatalogConfig struct {
	// Type is one of builtin, yaml, sqlite or postgres.
	Type string `json:"type" mapstructure:"type"`
	// Path is the YAML file or the SQLite database file.
	Path string `json:"path" mapstructure:"path"`
}

// OTelConfig holds OpenTelemetry settings
type OTelConfig struct {
	Enabled      bool          `json:"enabled" mapstructure:"enabled"`
	ServiceName  string        `json:"serviceName" mapstructure:"serviceName"`
	BatchTimeout time.Duration `json:"batchTimeout" mapstructure:"batchTimeout"`
	Endpoint     string        `json:"endpoint" mapstructure:"endpoint"`
	Insecure     bool          `json:"insecure" mapstructure:"insecure"`
}

// Load sets default values and, when configDir is not empty, reads the
// JSON config file from it.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "")

	viper.SetDefault("style.colorMode", "light")
	viper.SetDefault("style.civilianColor", true)
	viper.SetDefault("style.frameStrokeWidth", core.DefaultFrameStrokeWidth)
	viper.SetDefault("style.hqStaffLength", core.DefaultHQStaffLength)
	viper.SetDefault("style.padding", 0)
	viper.SetDefault("style.frame", true)
	viper.SetDefault("style.entityIcon", true)
	viper.SetDefault("style.modifiers", true)
	viper.SetDefault("style.amplifiers", true)
	viper.SetDefault("style.colorOverride", "")
	viper.SetDefault("style.strokeWidthOverride", -1)
	viper.SetDefault("style.iconSize", core.NominalIconSize)

	viper.SetDefault("catalog.type", "builtin")
	viper.SetDefault("catalog.path", "")

	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", "5432")
	viper.SetDefault("db.username", "postgres")
	viper.SetDefault("db.password", "postgres")
	viper.SetDefault("db.database", "milsymbol")

	viper.SetDefault("otel.enabled", false)
	viper.SetDefault("otel.serviceName", "milsymbol")
	viper.SetDefault("otel.batchTimeout", "5s")
	viper.SetDefault("otel.endpoint", "")
	viper.SetDefault("otel.insecure", false)

	if configDir == "" {
		return nil
	}

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// GetStyle builds the render style from the style.* keys.
func GetStyle() (core.Style, error) {
	style := core.DefaultStyle()

	mode := viper.GetString("style.colorMode")
	m, ok := core.ParseColorMode(mode)
	if !ok {
		return style, fmt.Errorf("unknown color mode %q", mode)
	}
	style.ColorMode = m

	style.UseCivilianColor = viper.GetBool("style.civilianColor")
	style.FrameStrokeWidth = viper.GetFloat64("style.frameStrokeWidth")
	style.HQStaffLength = viper.GetFloat64("style.hqStaffLength")
	style.Padding = viper.GetFloat64("style.padding")
	style.ShowFrame = viper.GetBool("style.frame")
	style.ShowEntityIcon = viper.GetBool("style.entityIcon")
	style.ShowModifiers = viper.GetBool("style.modifiers")
	style.ShowAmplifiers = viper.GetBool("style.amplifiers")
	style.IconSize = viper.GetFloat64("style.iconSize")

	if s := viper.GetString("style.colorOverride"); s != "" {
		c, err := core.ParseColor(s)
		if err != nil {
			return style, fmt.Errorf("style.colorOverride: %w", err)
		}
		style = style.WithColorOverride(c)
	}

	if w := viper.GetFloat64("style.strokeWidthOverride"); w >= 0 {
		style = style.WithStrokeWidthOverride(w)
	}

	return style.Normalized(), nil
}

// ErrUnknownCatalogType is returned for a catalog.type outside the known set.
var ErrUnknownCatalogType = errors.New("unknown catalog type")

// GetCatalogConfig returns the catalog settings.
func GetCatalogConfig() (CatalogConfig, error) {
	cfg := CatalogConfig{
		Type: viper.GetString("catalog.type"),
		Path: viper.GetString("catalog.path"),
	}
	switch cfg.Type {
	case "builtin", "postgres":
	case "yaml", "sqlite":
		if cfg.Path == "" {
			return cfg, fmt.Errorf("catalog.path is required for catalog type %q", cfg.Type)
		}
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnknownCatalogType, cfg.Type)
	}
	return cfg, nil
}

// GetDBConfig returns the Postgres connection settings.
func GetDBConfig() database.PostgresConfig {
	return database.PostgresConfig{
		Host:     viper.GetString("db.host"),
		Port:     viper.GetString("db.port"),
		Username: viper.GetString("db.username"),
		Password: viper.GetString("db.password"),
		Database: viper.GetString("db.database"),
	}
}

// GetOTelConfig returns the OpenTelemetry configuration
func GetOTelConfig() OTelConfig {
	return OTelConfig{
		Enabled:      viper.GetBool("otel.enabled"),
		ServiceName:  viper.GetString("otel.serviceName"),
		BatchTimeout: viper.GetDuration("otel.batchTimeout"),
		Endpoint:     viper.GetString("otel.endpoint"),
		Insecure:     viper.GetBool("otel.insecure"),
	}
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

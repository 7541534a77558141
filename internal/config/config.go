package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the full runtime configuration. Defaults reproduce the stock
// report: seed 42, 1000 records, 50 artists, images/ at 300 DPI.
type Config struct {
	Data   DataConfig   `mapstructure:"data"`
	Output OutputConfig `mapstructure:"output"`
	Chart  ChartConfig  `mapstructure:"chart"`
	Log    LogConfig    `mapstructure:"log"`
}

type DataConfig struct {
	Seed    uint64 `mapstructure:"seed"`
	Records int    `mapstructure:"records" validate:"min=1"`
	Artists int    `mapstructure:"artists" validate:"min=1,max=999"`
}

type OutputConfig struct {
	Dir string  `mapstructure:"dir" validate:"required"`
	DPI float64 `mapstructure:"dpi" validate:"gte=10,lte=1200"`
}

// ChartConfig - rendering options
type ChartConfig struct {
	FontPath string `mapstructure:"font_path"` // empty: search etc/fonts, then embedded Go fonts
}

type LogConfig struct {
	Dir   string `mapstructure:"dir"` // empty disables the file log
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// Options locates the optional config sources.
type Options struct {
	ConfigDir string // where config.yaml is looked up; default "."
	EnvFile   string // default ".env"
}

// Load layers configuration, lowest precedence first:
//  1. defaults
//  2. config.yaml
//  3. .env file
//  4. environment
//  5. flags that were set explicitly on fs
func Load(fs *pflag.FlagSet, opts Options) (*Config, error) {
	if opts.ConfigDir == "" {
		opts.ConfigDir = "."
	}
	if opts.EnvFile == "" {
		opts.EnvFile = ".env"
	}

	// a missing .env is fine
	_ = godotenv.Load(opts.EnvFile)

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(opts.ConfigDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("ROYALTY")
	v.AutomaticEnv()
	setupEnvAliases(v)

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration with no file, env or flag overrides.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func setupEnvAliases(v *viper.Viper) {
	v.BindEnv("data.seed", "ROYALTY_SEED")
	v.BindEnv("data.records", "ROYALTY_RECORDS")
	v.BindEnv("data.artists", "ROYALTY_ARTISTS")
	v.BindEnv("output.dir", "ROYALTY_OUTPUT_DIR")
	v.BindEnv("output.dpi", "ROYALTY_OUTPUT_DPI")
	v.BindEnv("chart.font_path", "ROYALTY_FONT_PATH")
	v.BindEnv("log.dir", "ROYALTY_LOG_DIR")
	v.BindEnv("log.level", "ROYALTY_LOG_LEVEL")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data.seed", 42)
	v.SetDefault("data.records", 1000)
	v.SetDefault("data.artists", 50)

	v.SetDefault("output.dir", "images")
	v.SetDefault("output.dpi", 300)

	v.SetDefault("chart.font_path", "")

	v.SetDefault("log.dir", "logs")
	v.SetDefault("log.level", "info")
}

// RegisterFlags declares every setting as a flag on fs. Flags only override
// lower layers when they are set on the command line.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Uint64("data.seed", 42, "Random seed for the synthetic dataset (env: ROYALTY_SEED)")
	fs.Int("data.records", 1000, "Number of royalty records to synthesize (env: ROYALTY_RECORDS)")
	fs.Int("data.artists", 50, "Size of the artist pool (env: ROYALTY_ARTISTS)")
	fs.String("output.dir", "images", "Directory the charts are written to (env: ROYALTY_OUTPUT_DIR)")
	fs.Float64("output.dpi", 300, "Image resolution in dots per inch (env: ROYALTY_OUTPUT_DPI)")
	fs.String("chart.font_path", "", "TrueType font for chart text (env: ROYALTY_FONT_PATH)")
	fs.String("log.dir", "logs", "Directory for app.log, empty to disable (env: ROYALTY_LOG_DIR)")
	fs.String("log.level", "info", "Log level: debug, info, warn, error (env: ROYALTY_LOG_LEVEL)")
}

func validateConfig(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, e := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %s=%s (got %v)", e.Namespace(), e.Tag(), e.Param(), e.Value()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

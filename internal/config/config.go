package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/gregtusar/datagen/pkg/generator"
	"github.com/gregtusar/datagen/pkg/refdata"
)

type Config struct {
	Generator GeneratorConfig `mapstructure:"generator"`
	Output    OutputConfig    `mapstructure:"output"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type GeneratorConfig struct {
	Ticks             int64    `mapstructure:"ticks"`
	Instruments       []string `mapstructure:"instruments"`
	StrictInstruments bool     `mapstructure:"strict_instruments"` // fail on CUSIPs missing from the reference table
	TradeSeed         uint64   `mapstructure:"trade_seed"`
	InquirySeed       uint64   `mapstructure:"inquiry_seed"`
	IDLength          int      `mapstructure:"id_length"`
}

type OutputConfig struct {
	Dir       string `mapstructure:"dir"`
	Prices    string `mapstructure:"prices"`
	OrderBook string `mapstructure:"orderbook"`
	Trades    string `mapstructure:"trades"`
	Inquiries string `mapstructure:"inquiries"`
}

// Path joins name onto the output directory unless name is absolute.
func (o OutputConfig) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(o.Dir, name)
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "text" or "json"
}

// Load reads configuration from configPath, or from config.yaml in the
// usual locations when configPath is empty. Environment variables prefixed
// with DATAGEN_ override file values, e.g. DATAGEN_GENERATOR_TICKS.
func Load(configPath string) (*Config, error) {
	return LoadWith(viper.New(), configPath)
}

// LoadWith is Load on a caller-supplied viper instance, so command-line
// flags bound to v take precedence over file and environment values.
func LoadWith(v *viper.Viper, configPath string) (*Config, error) {
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/datagen")
	}

	v.SetEnvPrefix("DATAGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; use defaults and environment
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	// Generator defaults
	v.SetDefault("generator.ticks", 1000)
	v.SetDefault("generator.instruments", refdata.DefaultCUSIPs)
	v.SetDefault("generator.strict_instruments", false)
	v.SetDefault("generator.trade_seed", 0)
	v.SetDefault("generator.inquiry_seed", 12345)
	v.SetDefault("generator.id_length", 12)

	// Output defaults
	v.SetDefault("output.dir", ".")
	v.SetDefault("output.prices", "price.txt")
	v.SetDefault("output.orderbook", "marketdata.txt")
	v.SetDefault("output.trades", "trades.txt")
	v.SetDefault("output.inquiries", "inquiries.txt")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Validate checks the generator and output settings.
func (c *Config) Validate() error {
	if c.Generator.Ticks < 0 {
		return fmt.Errorf("generator.ticks must be >= 0, got %d", c.Generator.Ticks)
	}
	if len(c.Generator.Instruments) == 0 {
		return errors.New("generator.instruments must not be empty")
	}
	for i, id := range c.Generator.Instruments {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("generator.instruments[%d] is empty", i)
		}
	}
	if err := generator.ValidateInstruments(c.Generator.Instruments); err != nil {
		return fmt.Errorf("generator.%w", err)
	}
	if c.Generator.StrictInstruments {
		if err := refdata.Validate(c.Generator.Instruments); err != nil {
			return fmt.Errorf("generator.instruments: %w", err)
		}
	}
	if c.Generator.IDLength < 1 {
		return fmt.Errorf("generator.id_length must be >= 1, got %d", c.Generator.IDLength)
	}

	files := map[string]string{
		"output.prices":    c.Output.Prices,
		"output.orderbook": c.Output.OrderBook,
		"output.trades":    c.Output.Trades,
		"output.inquiries": c.Output.Inquiries,
	}
	for key, name := range files {
		if name == "" {
			return fmt.Errorf("%s is required", key)
		}
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	return nil
}

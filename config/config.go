package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/trmnl-community/servarr-collector/servarr"
)

// Load loads the configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/servarr-collector/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("interval", 0)
	v.SetDefault("defaults.calendar_days", 7)
	v.SetDefault("defaults.calendar_days_before", 0)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if len(cfg.Instances) == 0 {
		return fmt.Errorf("no instances defined")
	}

	for i, inst := range cfg.Instances {
		if inst.URL == "" {
			return fmt.Errorf("instances[%d]: url is required", i)
		}
		if inst.APIKey == "" {
			return fmt.Errorf("instances[%d]: api_key is required", i)
		}
		if inst.Type != "" {
			if _, err := servarr.ParseAppKind(inst.Type); err != nil {
				return fmt.Errorf("instances[%d]: %w", i, err)
			}
		}
	}

	if cfg.Interval < 0 {
		return fmt.Errorf("interval must not be negative")
	}

	return nil
}

// applyDefaults fills per-instance settings from defaults and names
// unnamed instances after their URL.
func (c *Config) applyDefaults() {
	for i := range c.Instances {
		inst := &c.Instances[i]
		if inst.Name == "" {
			inst.Name = inst.URL
		}
		if inst.CalendarDays == nil {
			days := c.Defaults.CalendarDays
			inst.CalendarDays = &days
		}
		if inst.CalendarDaysBefore == nil {
			days := c.Defaults.CalendarDaysBefore
			inst.CalendarDaysBefore = &days
		}
	}
}

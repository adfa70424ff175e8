package config

// Config represents the complete configuration structure
type Config struct {
	Interval  int              `mapstructure:"interval"`
	Timezone  string           `mapstructure:"timezone"`
	Defaults  Defaults         `mapstructure:"defaults"`
	Instances []InstanceConfig `mapstructure:"instances"`
}

// Defaults holds the calendar-window settings applied to instances
// that don't set their own
type Defaults struct {
	CalendarDays       int `mapstructure:"calendar_days"`
	CalendarDaysBefore int `mapstructure:"calendar_days_before"`
}

// InstanceConfig holds one Servarr instance's connection details.
// The calendar fields are pointers so an explicit zero can be told
// apart from "use the default".
type InstanceConfig struct {
	Name               string `mapstructure:"name"`
	URL                string `mapstructure:"url"`
	APIKey             string `mapstructure:"api_key"`
	Webhook            string `mapstructure:"webhook"`
	Type               string `mapstructure:"type"`
	CalendarDays       *int   `mapstructure:"calendar_days"`
	CalendarDaysBefore *int   `mapstructure:"calendar_days_before"`
	CalendarOnly       bool   `mapstructure:"calendar_only"`
}

package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	DB       DBConfig       `mapstructure:"db"`
	Import   ImportConfig   `mapstructure:"import"`
	Metabase MetabaseConfig `mapstructure:"metabase"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type DBConfig struct {
	DSN          string `mapstructure:"dsn"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
}

// ImportConfig names the default data files loaded by commands that need
// a populated store.
type ImportConfig struct {
	CustomersFile string `mapstructure:"customers_file"`
	OrdersFile    string `mapstructure:"orders_file"`
}

// MetabaseConfig points at the optional BI endpoint notified after a
// mirror save. An empty URL disables the notification.
type MetabaseConfig struct {
	URL            string `mapstructure:"url"`
	APIKey         string `mapstructure:"api_key"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// LoadConfig loads configuration from config.yaml and environment variables
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.bookdesk/")
	v.AddConfigPath("/etc/bookdesk/")

	// Enable environment variable override with BOOKDESK_ prefix
	v.SetEnvPrefix("BOOKDESK")
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("db.maxOpenConns", 4)
	v.SetDefault("import.customers_file", "clients_100.csv")
	v.SetDefault("import.orders_file", "book_orders.csv")
	v.SetDefault("metabase.timeout_seconds", 5)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

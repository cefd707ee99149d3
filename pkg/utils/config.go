package utils

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Lot      LotConfig
	Store    StoreConfig
	Database DatabaseConfig
}

type AppConfig struct {
	Name    string
	Debug   bool
	LogPath string
}

type LotConfig struct {
	ID         string
	TotalSlots int
	HourlyRate float64
}

type StoreConfig struct {
	Driver  string // file | postgres
	DataDir string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "smart-parking")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("LOT_ID", "LOT-001")
	viper.SetDefault("TOTAL_SLOTS", 20)
	viper.SetDefault("HOURLY_RATE", 50.0)
	viper.SetDefault("STORE_DRIVER", "file")
	viper.SetDefault("DATA_DIR", "data/")
	viper.SetDefault("DB_MAX_CONNS", 10)

	// Missing .env is fine, defaults + environment take over
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Lot: LotConfig{
			ID:         viper.GetString("LOT_ID"),
			TotalSlots: viper.GetInt("TOTAL_SLOTS"),
			HourlyRate: viper.GetFloat64("HOURLY_RATE"),
		},
		Store: StoreConfig{
			Driver:  viper.GetString("STORE_DRIVER"),
			DataDir: viper.GetString("DATA_DIR"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
	}

	return config, nil
}

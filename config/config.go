package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	Export ExportConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Path          string
	SeedCatalogue bool
}

type ExportConfig struct {
	Dir string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "local")
	viper.SetDefault("DB_PATH", "lab-supply.db")
	viper.SetDefault("DB_SEED_CATALOGUE", true)
	viper.SetDefault("EXPORT_DIR", "exports")

	// A missing .env is fine for a local workstation install; every
	// setting has a default and can still come from the environment.
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Path:          viper.GetString("DB_PATH"),
			SeedCatalogue: viper.GetBool("DB_SEED_CATALOGUE"),
		},
		Export: ExportConfig{
			Dir: viper.GetString("EXPORT_DIR"),
		},
	}

	return config, nil
}

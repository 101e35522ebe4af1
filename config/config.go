package config

import (
	"log"

	"github.com/spf13/viper"

	"logitrack-app/internal/models"
)

type Config struct {
	Server   ServerConfig
	Gemini   GeminiConfig
	Defaults DefaultsConfig
	Site     models.SiteInfo
}

type ServerConfig struct {
	Port               string
	Env                string
	JWTSecret          string `mapstructure:"jwt_secret"`
	JWTExpirationHours int    `mapstructure:"jwt_expiration_hours"`
}

type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type DefaultsConfig struct {
	AdminPassword      string `mapstructure:"admin_password"`
	DispatcherPassword string `mapstructure:"dispatcher_password"`
	CompanyName        string `mapstructure:"company_name"`
	CompanyAddress     string `mapstructure:"company_address"`
	CompanyPhone       string `mapstructure:"company_phone"`
}

var AppConfig *Config

func LoadConfig() {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, checking environment variables: %v", err)
	}

	// Enable reading from OS environment variables as fallback/override
	viper.AutomaticEnv()
	viper.BindEnv("SERVER_PORT", "PORT") // Fallback to PORT if SERVER_PORT is missing
	viper.BindEnv("GEMINI_API_KEY", "API_KEY")

	viper.SetDefault("SERVER_PORT", "8000")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 12)
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("ADMIN_PASSWORD", "admin123")
	viper.SetDefault("DISPATCHER_PASSWORD", "user123")

	AppConfig = &Config{
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			Env:                viper.GetString("SERVER_ENV"),
			JWTSecret:          viper.GetString("JWT_SECRET"),
			JWTExpirationHours: viper.GetInt("JWT_EXPIRATION_HOURS"),
		},
		Gemini: GeminiConfig{
			APIKey: viper.GetString("GEMINI_API_KEY"),
			Model:  viper.GetString("GEMINI_MODEL"),
		},
		Defaults: DefaultsConfig{
			AdminPassword:      viper.GetString("ADMIN_PASSWORD"),
			DispatcherPassword: viper.GetString("DISPATCHER_PASSWORD"),
			CompanyName:        viper.GetString("COMPANY_NAME"),
			CompanyAddress:     viper.GetString("COMPANY_ADDRESS"),
			CompanyPhone:       viper.GetString("COMPANY_PHONE"),
		},
	}

	// Load TOML Config for Site Info
	siteViper := viper.New()
	siteViper.SetConfigFile("config/config.toml")
	siteViper.SetConfigType("toml")
	if err := siteViper.ReadInConfig(); err != nil {
		log.Printf("Warning: config/config.toml not found, using empty site info: %v", err)
	} else {
		if err := siteViper.UnmarshalKey("site", &AppConfig.Site); err != nil {
			log.Printf("Error: Failed to unmarshal site info from TOML: %v", err)
		}
	}
}

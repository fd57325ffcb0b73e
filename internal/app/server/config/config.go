package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress   = ":8080"
	defaultArtsyBaseURL = "https://api.artsy.net/api"
	defaultTokenFile    = "artsy_token.json"
)

type Config struct {
	Env    string
	DB     DB
	Server Server
	Auth   Auth
	Artsy  Artsy
	Logger Logger
}

type DB struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type Server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

// Auth — параметры выпуска пользовательских JWT.
type Auth struct {
	Secret string `env:"JWT_SECRET"`
}

// Artsy — доступ к каталогу Artsy: базовый URL, креды xapp-токена
// и путь к файлу, в который зеркалируется полученный токен.
type Artsy struct {
	BaseURL      string `env:"ARTSY_API_URL"`
	ClientID     string `env:"ARTSY_CLIENT_ID"`
	ClientSecret string `env:"ARTSY_CLIENT_SECRET"`
	TokenFile    string `env:"ARTSY_TOKEN_FILE"`
}

type Logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("RUN_ADDRESS", defaultRunAddress)
	viper.SetDefault("ARTSY_API_URL", defaultArtsyBaseURL)
	viper.SetDefault("ARTSY_TOKEN_FILE", defaultTokenFile)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("APP_ENV", EnvLocal)

	config := Config{
		Env: viper.GetString("APP_ENV"),
		DB: DB{
			DatabaseURI: viper.GetString("DATABASE_URI"),
			Migrations:  viper.GetString("MIGRATIONS_PATH"),
		},
		Server: Server{RunAddress: viper.GetString("RUN_ADDRESS")},
		Auth:   Auth{Secret: viper.GetString("JWT_SECRET")},
		Artsy: Artsy{
			BaseURL:      viper.GetString("ARTSY_API_URL"),
			ClientID:     viper.GetString("ARTSY_CLIENT_ID"),
			ClientSecret: viper.GetString("ARTSY_CLIENT_SECRET"),
			TokenFile:    viper.GetString("ARTSY_TOKEN_FILE"),
		},
		Logger: Logger{LogLevel: viper.GetString("LOG_LEVEL")},
	}

	if config.Auth.Secret == "" {
		log.Fatalln("JWT_SECRET is required")
	}

	return &config
}

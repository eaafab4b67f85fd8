package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                   App                   `mapstructure:",squash"`
	Server                Server                `mapstructure:",squash"`
	Database              Database              `mapstructure:",squash"`
	Backend               Backend               `mapstructure:",squash"`
	Proxy                 Proxy                 `mapstructure:",squash"`
	Theme                 Theme                 `mapstructure:",squash"`
	Cors                  Cors                  `mapstructure:",squash"`
	CampaignLifecycleSync CampaignLifecycleSync `mapstructure:",squash"`
	SecretKey             string                `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Backend é a API remota de automação de marketing
type Backend struct {
	BaseURL        string        `mapstructure:"backend_base_url"`
	TimeoutSeconds int           `mapstructure:"backend_timeout_seconds"`
	Timeout        time.Duration `mapstructure:"-"`
}

type Proxy struct {
	MountPath string `mapstructure:"proxy_mount_path"`
}

// Theme configura o armazenamento local onde o tema da marca é persistido
type Theme struct {
	StoragePath  string `mapstructure:"theme_storage_path"`
	WatchEnabled bool   `mapstructure:"theme_watch_enabled"`
	DocumentName string `mapstructure:"theme_document_title"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type CampaignLifecycleSync struct {
	CronSchedule string `mapstructure:"campaign_lifecycle_sync_cron"`
	Enabled      bool   `mapstructure:"campaign_lifecycle_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/digisol?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("BACKEND_BASE_URL", "http://localhost:8001/api")
	viper.SetDefault("BACKEND_TIMEOUT_SECONDS", 30)
	viper.SetDefault("PROXY_MOUNT_PATH", "/api")

	viper.SetDefault("THEME_STORAGE_PATH", "./data/local_storage.json")
	viper.SetDefault("THEME_WATCH_ENABLED", true)
	viper.SetDefault("THEME_DOCUMENT_TITLE", "Marketing Dashboard")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Ativa campanhas agendadas e encerra as vencidas a cada 5 minutos
	viper.SetDefault("CAMPAIGN_LIFECYCLE_SYNC_CRON", "*/5 * * * *")
	viper.SetDefault("CAMPAIGN_LIFECYCLE_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.finalize()

	return config, nil
}

// finalize deriva os campos calculados a partir dos valores carregados
func (c *Config) finalize() {
	c.Backend.BaseURL = strings.TrimRight(c.Backend.BaseURL, "/")
	if c.Backend.TimeoutSeconds <= 0 {
		c.Backend.TimeoutSeconds = 30
	}
	c.Backend.Timeout = time.Duration(c.Backend.TimeoutSeconds) * time.Second

	c.Proxy.MountPath = "/" + strings.Trim(c.Proxy.MountPath, "/")

	origins := make([]string, 0, len(c.Cors.AllowedOrigins))
	for _, origin := range c.Cors.AllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	c.Cors.AllowedOrigins = origins

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}

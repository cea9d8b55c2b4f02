package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Profile         Profile         `mapstructure:",squash"`
	ResolutionAudit ResolutionAudit `mapstructure:",squash"`
	Cors            Cors            `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN          string        `mapstructure:"-"`
	Driver       string        `mapstructure:"database_driver"`
	Password     string        `mapstructure:"database_password"`
	URL          string        `mapstructure:"database_url"`
	User         string        `mapstructure:"database_user"`
	MaxOpenConns int           `mapstructure:"database_max_open_conns"`
	QueryTimeout time.Duration `mapstructure:"database_query_timeout"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Profile configura as consultas de distribuição
type Profile struct {
	UnknownValue         string `mapstructure:"profile_unknown_value"`
	MaxConcurrentFetches int    `mapstructure:"profile_max_concurrent_fetches"`
}

type ResolutionAudit struct {
	CronSchedule    string `mapstructure:"resolution_audit_cron"`
	SessionLookback int    `mapstructure:"resolution_audit_session_lookback"`
	Enabled         bool   `mapstructure:"resolution_audit_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/customer_profile")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 20)
	viper.SetDefault("DATABASE_QUERY_TIMEOUT", "10s")

	viper.SetDefault("PROFILE_UNKNOWN_VALUE", "(unknown)")
	viper.SetDefault("PROFILE_MAX_CONCURRENT_FETCHES", 8)

	// Defaults para auditoria de referências
	viper.SetDefault("RESOLUTION_AUDIT_CRON", "0 2 * * *")   // Todos os dias às 2h da manhã
	viper.SetDefault("RESOLUTION_AUDIT_SESSION_LOOKBACK", 5) // 5 sessões mais recentes
	viper.SetDefault("RESOLUTION_AUDIT_ENABLED", false)      // Habilitar auditoria agendada

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado; usando apenas variáveis de ambiente")
}

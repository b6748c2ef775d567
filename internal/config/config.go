package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	CasaAlves        CasaAlves        `mapstructure:",squash"`
	DashboardArchive DashboardArchive `mapstructure:",squash"`
	Workspace        Workspace        `mapstructure:",squash"`
	SecretKey        string           `mapstructure:"secret_key"`
}

type Server struct {
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// CasaAlves configura o acesso ao backend REST
type CasaAlves struct {
	URL          string        `mapstructure:"casa_alves_api_url"`
	Timeout      time.Duration `mapstructure:"casa_alves_api_timeout"`
	ServiceToken string        `mapstructure:"casa_alves_service_token"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type DashboardArchive struct {
	CronSchedule      string `mapstructure:"dashboard_archive_cron"`
	MonthLookBack     int    `mapstructure:"dashboard_archive_month_lookback"`
	MaxConcurrentJobs int    `mapstructure:"dashboard_archive_max_concurrent_jobs"`
	RetentionMonths   int    `mapstructure:"dashboard_archive_retention_months"`
	Enabled           bool   `mapstructure:"dashboard_archive_enabled"`
}

type Workspace struct {
	IdleTimeout   time.Duration `mapstructure:"workspace_idle_timeout"`
	SweepSchedule string        `mapstructure:"workspace_sweep_cron"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/casaalves")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("CASA_ALVES_API_URL", "http://localhost:3001/api")
	viper.SetDefault("CASA_ALVES_API_TIMEOUT", "15s")
	viper.SetDefault("CASA_ALVES_SERVICE_TOKEN", "")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("DASHBOARD_ARCHIVE_CRON", "0 2 * * *")        // Todos os dias às 2h da manhã
	viper.SetDefault("DASHBOARD_ARCHIVE_MONTH_LOOKBACK", 2)         // mês atual e o anterior
	viper.SetDefault("DASHBOARD_ARCHIVE_MAX_CONCURRENT_JOBS", 2)    // 2 requisições simultâneas
	viper.SetDefault("DASHBOARD_ARCHIVE_RETENTION_MONTHS", 24)      // 2 anos de histórico
	viper.SetDefault("DASHBOARD_ARCHIVE_ENABLED", false)

	viper.SetDefault("WORKSPACE_IDLE_TIMEOUT", "30m")
	viper.SetDefault("WORKSPACE_SWEEP_CRON", "*/5 * * * *")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

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

	if err := decode(config); err != nil {
		return nil, err
	}

	return config, nil
}

func decode(config *Config) error {
	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return errors.Wrap(err, "config: erro ao decodificar variáveis")
	}

	if err := config.validate(); err != nil {
		return errors.Wrap(err, "config")
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s?sslmode=disable",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return nil
}

func (c *Config) validate() error {
	if c.CasaAlves.URL == "" {
		return errors.New("CASA_ALVES_API_URL é obrigatório")
	}
	u, err := url.Parse(c.CasaAlves.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.Errorf("CASA_ALVES_API_URL inválida: %q", c.CasaAlves.URL)
	}
	if c.CasaAlves.Timeout <= 0 {
		return errors.New("CASA_ALVES_API_TIMEOUT deve ser positivo")
	}
	if c.DashboardArchive.MonthLookBack < 1 {
		return errors.New("DASHBOARD_ARCHIVE_MONTH_LOOKBACK deve ser ao menos 1 (mês atual)")
	}
	if c.Workspace.IdleTimeout <= 0 {
		return errors.New("WORKSPACE_IDLE_TIMEOUT deve ser positivo")
	}
	return nil
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
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

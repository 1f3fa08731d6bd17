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
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Benchmark    Benchmark    `mapstructure:",squash"`
	WeeklyReport WeeklyReport `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Benchmark struct {
	DefaultRadiusMiles float64       `mapstructure:"benchmark_default_radius_miles"`
	DefaultLimit       int           `mapstructure:"benchmark_default_limit"`
	MaxLimit           int           `mapstructure:"benchmark_max_limit"`
	FetchTimeout       time.Duration `mapstructure:"benchmark_fetch_timeout"`
}

type WeeklyReport struct {
	CronSchedule string `mapstructure:"weekly_report_cron"`
	Enabled      bool   `mapstructure:"weekly_report_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/roi_benchmark?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)

	viper.SetDefault("BENCHMARK_DEFAULT_RADIUS_MILES", 25.0)
	viper.SetDefault("BENCHMARK_DEFAULT_LIMIT", 10)
	viper.SetDefault("BENCHMARK_MAX_LIMIT", 100)
	viper.SetDefault("BENCHMARK_FETCH_TIMEOUT", "10s")

	viper.SetDefault("WEEKLY_REPORT_CRON", "0 7 * * 1") // Toda segunda-feira às 7h
	viper.SetDefault("WEEKLY_REPORT_ENABLED", false)

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

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
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

// Validate garante que os parâmetros do benchmark são utilizáveis
func (c *Config) Validate() error {
	if c.Benchmark.DefaultRadiusMiles < 0 {
		return fmt.Errorf("BENCHMARK_DEFAULT_RADIUS_MILES deve ser >= 0, recebido %v", c.Benchmark.DefaultRadiusMiles)
	}

	if c.Benchmark.MaxLimit <= 0 {
		return fmt.Errorf("BENCHMARK_MAX_LIMIT deve ser > 0, recebido %d", c.Benchmark.MaxLimit)
	}

	if c.Benchmark.DefaultLimit <= 0 || c.Benchmark.DefaultLimit > c.Benchmark.MaxLimit {
		return fmt.Errorf("BENCHMARK_DEFAULT_LIMIT deve estar entre 1 e %d, recebido %d", c.Benchmark.MaxLimit, c.Benchmark.DefaultLimit)
	}

	if c.Benchmark.FetchTimeout <= 0 {
		return fmt.Errorf("BENCHMARK_FETCH_TIMEOUT deve ser positivo, recebido %s", c.Benchmark.FetchTimeout)
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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

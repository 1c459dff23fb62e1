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
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	Company       Company       `mapstructure:",squash"`
	History       History       `mapstructure:",squash"`
	Realtime      Realtime      `mapstructure:",squash"`
	LoginLimit    LoginLimit    `mapstructure:",squash"`
	DailySnapshot DailySnapshot `mapstructure:",squash"`
	BusRanking    BusRanking    `mapstructure:",squash"`
	SecretKey     string        `mapstructure:"secret_key"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN           string `mapstructure:"-"`
	Driver        string `mapstructure:"database_driver"`
	Password      string `mapstructure:"database_password"`
	URL           string `mapstructure:"database_url"`
	User          string `mapstructure:"database_user"`
	SSLMode       string `mapstructure:"database_ssl_mode"`
	RunMigrations bool   `mapstructure:"run_migrations"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

func (a App) IsDevelopment() bool {
	return a.Env == "" || a.Env == "development"
}

type Auth struct {
	TokenTTL time.Duration `mapstructure:"token_ttl"`
}

type Company struct {
	Name         string `mapstructure:"company_name"`
	CurrencyCode string `mapstructure:"currency_code"`
}

type History struct {
	CacheTTL time.Duration `mapstructure:"history_cache_ttl"`
}

type Realtime struct {
	Enabled  bool          `mapstructure:"realtime_enabled"`
	Channel  string        `mapstructure:"realtime_channel"`
	Debounce time.Duration `mapstructure:"realtime_debounce"`
}

type LoginLimit struct {
	RPS   float64 `mapstructure:"login_rate_limit_rps"`
	Burst int     `mapstructure:"login_rate_limit_burst"`
}

type DailySnapshot struct {
	CronSchedule string `mapstructure:"daily_snapshot_cron"`
	LookbackDays int    `mapstructure:"daily_snapshot_lookback_days"`
	Enabled      bool   `mapstructure:"daily_snapshot_enabled"`
}

type BusRanking struct {
	CronSchedule string `mapstructure:"bus_ranking_cron"`
	SyncEnabled  bool   `mapstructure:"bus_ranking_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/transport")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSL_MODE", "disable")
	viper.SetDefault("RUN_MIGRATIONS", false)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("TOKEN_TTL", "24h")

	viper.SetDefault("COMPANY_NAME", "Trans Doramald")
	viper.SetDefault("CURRENCY_CODE", "USD")

	viper.SetDefault("HISTORY_CACHE_TTL", "1m")

	viper.SetDefault("REALTIME_ENABLED", true)
	viper.SetDefault("REALTIME_CHANNEL", "collection_changed")
	viper.SetDefault("REALTIME_DEBOUNCE", "500ms")

	viper.SetDefault("LOGIN_RATE_LIMIT_RPS", 1)
	viper.SetDefault("LOGIN_RATE_LIMIT_BURST", 5)

	viper.SetDefault("DAILY_SNAPSHOT_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("DAILY_SNAPSHOT_LOOKBACK_DAYS", 7)
	viper.SetDefault("DAILY_SNAPSHOT_ENABLED", false)

	viper.SetDefault("BUS_RANKING_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("BUS_RANKING_SYNC_ENABLED", false)
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

	config.Database.DSN = BuildDSN(config.Database)

	return config, nil
}

// BuildDSN monta a string de conexão no formato aceito pelo lib/pq e pelo migrate
func BuildDSN(db Database) string {
	dsn := fmt.Sprintf(
		"%s://%s:%s@%s",
		db.Driver,
		db.User,
		db.Password,
		db.URL,
	)
	if db.SSLMode != "" {
		dsn += "?sslmode=" + db.SSLMode
	}
	return dsn
}

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

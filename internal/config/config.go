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
	"github.com/vfg2006/growth-dashboard-api/internal/domain"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	GA4        GA4        `mapstructure:",squash"`
	Meta       Meta       `mapstructure:",squash"`
	Sheets     Sheets     `mapstructure:",squash"`
	Reporting  Reporting  `mapstructure:",squash"`
	Export     Export     `mapstructure:",squash"`
	ExportSync ExportSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	FrontendDistPath   string   `mapstructure:"frontend_dist_path"`
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type GA4 struct {
	PropertyID      string `mapstructure:"ga4_property_id"`
	CredentialsFile string `mapstructure:"ga4_credentials_file"`
	Endpoint        string `mapstructure:"ga4_endpoint"`
}

type Meta struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	URL         string `mapstructure:"meta_url"`
	Version     string `mapstructure:"meta_version"`
	AccessToken string `mapstructure:"meta_access_token"`
	AdAccountID string `mapstructure:"meta_ad_account_id"`
	EventLocale string `mapstructure:"meta_event_locale"`
	PageLimit   int    `mapstructure:"meta_page_limit"`
}

type Sheets struct {
	SpreadsheetID   string `mapstructure:"google_spreadsheet_id"`
	CredentialsFile string `mapstructure:"google_sheets_credentials_file"`
	SheetName       string `mapstructure:"google_sheet_name"`
	Endpoint        string `mapstructure:"google_sheets_endpoint"`
}

type Reporting struct {
	DefaultDays              int `mapstructure:"default_days"`
	MaxDays                  int `mapstructure:"max_days"`
	HTTPClientTimeoutSeconds int `mapstructure:"http_client_timeout_seconds"`
}

type Export struct {
	Days            int    `mapstructure:"export_days"`
	CSVPath         string `mapstructure:"export_csv_path"`
	SheetsEnabled   bool   `mapstructure:"export_sheets_enabled"`
	DatabaseEnabled bool   `mapstructure:"export_database_enabled"`
}

type ExportSync struct {
	CronSchedule string `mapstructure:"export_sync_cron"`
	Enabled      bool   `mapstructure:"export_sync_enabled"`
}

// HTTPClientTimeout é o timeout aplicado às chamadas das APIs externas
func (c *Config) HTTPClientTimeout() time.Duration {
	return time.Duration(c.Reporting.HTTPClientTimeoutSeconds) * time.Second
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 5000)
	viper.SetDefault("FRONTEND_DIST_PATH", "frontend/dist")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("GA4_PROPERTY_ID", "")
	viper.SetDefault("GA4_CREDENTIALS_FILE", "credentials_ga4.json")
	viper.SetDefault("GA4_ENDPOINT", "")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v19.0")
	viper.SetDefault("META_ACCESS_TOKEN", "")
	viper.SetDefault("META_AD_ACCOUNT_ID", "")
	viper.SetDefault("META_EVENT_LOCALE", "pl")
	viper.SetDefault("META_PAGE_LIMIT", 100)

	viper.SetDefault("GOOGLE_SPREADSHEET_ID", "")
	viper.SetDefault("GOOGLE_SHEETS_CREDENTIALS_FILE", "credentials_sheets.json")
	viper.SetDefault("GOOGLE_SHEET_NAME", "")
	viper.SetDefault("GOOGLE_SHEETS_ENDPOINT", "")

	viper.SetDefault("DEFAULT_DAYS", 30)
	viper.SetDefault("MAX_DAYS", 365)
	viper.SetDefault("HTTP_CLIENT_TIMEOUT_SECONDS", 30)

	viper.SetDefault("EXPORT_DAYS", 30)
	viper.SetDefault("EXPORT_CSV_PATH", "ga4_meta.csv")
	viper.SetDefault("EXPORT_SHEETS_ENABLED", true)
	viper.SetDefault("EXPORT_DATABASE_ENABLED", false)

	viper.SetDefault("EXPORT_SYNC_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("EXPORT_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica as configurações que não possuem valor padrão razoável
func (c *Config) Validate() error {
	if c.Reporting.DefaultDays < 0 {
		return fmt.Errorf("config: DEFAULT_DAYS must not be negative")
	}
	if c.Reporting.MaxDays <= 0 || c.Reporting.MaxDays > domain.MaxRangeDays {
		return fmt.Errorf("config: MAX_DAYS must be between 1 and %d", domain.MaxRangeDays)
	}
	if c.Reporting.DefaultDays > c.Reporting.MaxDays {
		return fmt.Errorf("config: DEFAULT_DAYS must not exceed MAX_DAYS")
	}
	if c.Export.Days < 0 {
		return fmt.Errorf("config: EXPORT_DAYS must not be negative")
	}
	if c.Meta.PageLimit <= 0 {
		return fmt.Errorf("config: META_PAGE_LIMIT must be positive")
	}

	if c.GA4.PropertyID == "" {
		logrus.Warn("config: GA4_PROPERTY_ID não configurado, métricas do GA4 serão zeradas")
	}
	if c.Meta.AdAccountID == "" || c.Meta.AccessToken == "" {
		logrus.Warn("config: META_AD_ACCOUNT_ID ou META_ACCESS_TOKEN não configurados, dados do Meta serão zerados")
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

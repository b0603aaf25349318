// Package config provides configuration management for sentimentstream.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Reddit   RedditConfig   `mapstructure:"reddit"`
	Stocks   StocksConfig   `mapstructure:"stocks"`
	LLM      LLMConfig      `mapstructure:"llm"`
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

// DatabaseConfig holds database configuration.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the database connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// RedditConfig holds Reddit feed configuration. When use_feeds is
// false the fetcher serves simulated data only, which keeps the app
// fully functional without network access.
type RedditConfig struct {
	BaseURL         string        `mapstructure:"base_url"`
	UserAgent       string        `mapstructure:"user_agent"`
	UseFeeds        bool          `mapstructure:"use_feeds"`
	RequestInterval time.Duration `mapstructure:"request_interval"`
	Seed            int64         `mapstructure:"seed"`
}

// StocksConfig holds stock data configuration. When use_live is false
// all price and overview data is simulated.
type StocksConfig struct {
	ChartBaseURL string        `mapstructure:"chart_base_url"`
	QuoteBaseURL string        `mapstructure:"quote_base_url"`
	UseLive      bool          `mapstructure:"use_live"`
	RequestDelay time.Duration `mapstructure:"request_delay"`
	Seed         int64         `mapstructure:"seed"`
}

// LLMConfig holds LLM provider configuration. The provider only writes
// narrative market briefs; it is never asked to score sentiment.
type LLMConfig struct {
	Provider string       `mapstructure:"provider"` // none, ollama, openai, gemini
	Ollama   OllamaConfig `mapstructure:"ollama"`
	OpenAI   OpenAIConfig `mapstructure:"openai"`
	Gemini   GeminiConfig `mapstructure:"gemini"`
}

// OllamaConfig holds Ollama-specific configuration.
type OllamaConfig struct {
	URL   string `mapstructure:"url"`
	Model string `mapstructure:"model"`
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// Load loads configuration from file and environment variables.
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists (don't error if not found)
	envFiles := []string{".env", ".env.local"}
	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				fmt.Printf("Warning: could not load %s: %v\n", envFile, err)
			} else {
				fmt.Printf("Loaded environment from %s\n", envFile)
			}
		}
	}

	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Read config file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			fmt.Printf("Warning: could not read config file: %v\n", err)
		}
	} else {
		// Look for config in default locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			fmt.Printf("Warning: could not read config file: %v\n", err)
		}
	}

	// Read from environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Bind environment variables
	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.env", "development")
	v.SetDefault("app.log_level", "debug")

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "sentimentstream")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "5m")

	// Server defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")

	// Reddit defaults
	v.SetDefault("reddit.base_url", "https://www.reddit.com")
	v.SetDefault("reddit.user_agent", "sentimentstream/1.0 (feed reader)")
	v.SetDefault("reddit.use_feeds", false)
	v.SetDefault("reddit.request_interval", "2s")
	v.SetDefault("reddit.seed", 0)

	// Stocks defaults
	v.SetDefault("stocks.chart_base_url", "https://query1.finance.yahoo.com")
	v.SetDefault("stocks.quote_base_url", "https://finviz.com/quote.ashx")
	v.SetDefault("stocks.use_live", false)
	v.SetDefault("stocks.request_delay", "3s")
	v.SetDefault("stocks.seed", 0)

	// LLM defaults
	v.SetDefault("llm.provider", "none")
	v.SetDefault("llm.ollama.url", "http://localhost:11434")
	v.SetDefault("llm.ollama.model", "llama2")
	v.SetDefault("llm.openai.model", "gpt-4o-mini")
	v.SetDefault("llm.gemini.model", "gemini-pro")
}

// bindEnvVars binds environment variables to config keys.
func bindEnvVars(v *viper.Viper) {
	// App
	_ = v.BindEnv("app.env", "APP_ENV")
	_ = v.BindEnv("app.log_level", "LOG_LEVEL")

	// Database
	_ = v.BindEnv("database.host", "DB_HOST")
	_ = v.BindEnv("database.port", "DB_PORT")
	_ = v.BindEnv("database.user", "DB_USER")
	_ = v.BindEnv("database.password", "DB_PASSWORD")
	_ = v.BindEnv("database.dbname", "DB_NAME")
	_ = v.BindEnv("database.sslmode", "DB_SSLMODE")

	// Server
	_ = v.BindEnv("server.port", "SERVER_PORT")

	// Reddit
	_ = v.BindEnv("reddit.base_url", "REDDIT_BASE_URL")
	_ = v.BindEnv("reddit.user_agent", "REDDIT_USER_AGENT")
	_ = v.BindEnv("reddit.use_feeds", "REDDIT_USE_FEEDS")
	_ = v.BindEnv("reddit.seed", "REDDIT_SEED")

	// Stocks
	_ = v.BindEnv("stocks.chart_base_url", "STOCKS_CHART_BASE_URL")
	_ = v.BindEnv("stocks.quote_base_url", "STOCKS_QUOTE_BASE_URL")
	_ = v.BindEnv("stocks.use_live", "STOCKS_USE_LIVE")
	_ = v.BindEnv("stocks.seed", "STOCKS_SEED")

	// LLM
	_ = v.BindEnv("llm.provider", "LLM_PROVIDER")
	_ = v.BindEnv("llm.ollama.url", "OLLAMA_URL")
	_ = v.BindEnv("llm.ollama.model", "OLLAMA_MODEL")
	_ = v.BindEnv("llm.openai.api_key", "OPENAI_API_KEY")
	_ = v.BindEnv("llm.openai.model", "OPENAI_MODEL")
	_ = v.BindEnv("llm.gemini.api_key", "GEMINI_API_KEY")
	_ = v.BindEnv("llm.gemini.model", "GEMINI_MODEL")
}

// IsDevelopment returns true if the app is in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if the app is in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

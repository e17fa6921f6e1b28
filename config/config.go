package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// LLM backends and the model variants bound to them
	LLM    LLMConfig
	Models ModelsConfig

	// Retrieval
	Embedding EmbeddingConfig
	Qdrant    QdrantConfig
	Context   ContextConfig

	// Knowledge graph
	Knowledge KnowledgeConfig

	Cache    CacheConfig
	History  HistoryConfig
	Telegram TelegramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerMinute int
	Burst             int
	MaxClients        int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// ModelsConfig binds each model variant to a provider.
type ModelsConfig struct {
	Default  string
	Variants []ModelVariantConfig
}

// ModelVariantConfig is one entry of models.variants. Model overrides the provider's model.
type ModelVariantConfig struct {
	ID          string
	Provider    string
	Model       string
	Temperature float64
	MaxTokens   int
	Extra       map[string]any
}

type EmbeddingConfig struct {
	Provider   string // voyage | openai
	Model      string
	APIKey     string
	BaseURL    string
	Dimensions int
}

type QdrantConfig struct {
	URL            string
	APIKey         string
	CollectionName string
	VectorSize     int
	Timeout        time.Duration
}

type ContextConfig struct {
	MaxContextLength int
	TopK             int
	CacheCapacity    int
}

type KnowledgeConfig struct {
	DSN string
}

type CacheConfig struct {
	ComparisonCapacity int
	ComparisonTTL      time.Duration
	StrategyCapacity   int
	StrategyTTL        time.Duration
}

type HistoryConfig struct {
	RouteCap        int
	ConversationCap int
}

type TelegramConfig struct {
	BotToken    string
	WebhookURL  string
	SecretToken string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/hr-assistant/
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom reads the given file instead of searching when path is not empty.
func LoadFrom(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/hr-assistant/")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMinute = viper.GetInt("rate_limit.requests_per_minute")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")
	cfg.RateLimit.MaxClients = viper.GetInt("rate_limit.max_clients")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	for _, providerMap := range getMapList("llm.providers") {
		cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
			Name:     getStringFromMap(providerMap, "name"),
			Enabled:  getBoolFromMap(providerMap, "enabled"),
			Priority: getIntFromMap(providerMap, "priority"),
			APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
			BaseURL:  getStringFromMap(providerMap, "base_url"),
			Model:    getStringFromMap(providerMap, "model"),
			Timeout:  getStringFromMap(providerMap, "timeout"),
		})
	}

	// Model variants
	cfg.Models.Default = viper.GetString("models.default")
	for _, m := range getMapList("models.variants") {
		extra, _ := m["extra"].(map[string]any)
		cfg.Models.Variants = append(cfg.Models.Variants, ModelVariantConfig{
			ID:          getStringFromMap(m, "id"),
			Provider:    getStringFromMap(m, "provider"),
			Model:       getStringFromMap(m, "model"),
			Temperature: getFloatFromMap(m, "temperature"),
			MaxTokens:   getIntFromMap(m, "max_tokens"),
			Extra:       extra,
		})
	}

	// Retrieval
	cfg.Embedding.Provider = viper.GetString("embedding.provider")
	cfg.Embedding.Model = viper.GetString("embedding.model")
	cfg.Embedding.APIKey = expandEnvVar(viper.GetString("embedding.api_key"))
	cfg.Embedding.BaseURL = viper.GetString("embedding.base_url")
	cfg.Embedding.Dimensions = viper.GetInt("embedding.dimensions")
	if voyageKey := viper.GetString("voyage_api_key"); voyageKey != "" && cfg.Embedding.APIKey == "" {
		cfg.Embedding.APIKey = voyageKey
	}

	cfg.Qdrant.URL = viper.GetString("qdrant.url")
	cfg.Qdrant.CollectionName = viper.GetString("qdrant.collection_name")
	cfg.Qdrant.VectorSize = viper.GetInt("qdrant.vector_size")
	cfg.Qdrant.APIKey = expandEnvVar(viper.GetString("qdrant.api_key"))
	cfg.Qdrant.Timeout = viper.GetDuration("qdrant.timeout")
	if qdrantURL := viper.GetString("qdrant_url"); qdrantURL != "" {
		cfg.Qdrant.URL = qdrantURL
	}

	cfg.Context.MaxContextLength = viper.GetInt("context.max_context_length")
	cfg.Context.TopK = viper.GetInt("context.top_k")
	cfg.Context.CacheCapacity = viper.GetInt("context.cache_capacity")

	cfg.Knowledge.DSN = viper.GetString("knowledge.dsn")

	cfg.Cache.ComparisonCapacity = viper.GetInt("cache.comparison_capacity")
	cfg.Cache.ComparisonTTL = viper.GetDuration("cache.comparison_ttl")
	cfg.Cache.StrategyCapacity = viper.GetInt("cache.strategy_capacity")
	cfg.Cache.StrategyTTL = viper.GetDuration("cache.strategy_ttl")

	cfg.History.RouteCap = viper.GetInt("history.route_cap")
	cfg.History.ConversationCap = viper.GetInt("history.conversation_cap")

	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = viper.GetString("telegram.secret_token")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_minute", 60)
	viper.SetDefault("rate_limit.burst", 10)
	viper.SetDefault("rate_limit.max_clients", 10000)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
	viper.SetDefault("models.default", "fast")

	viper.SetDefault("embedding.provider", "voyage")
	viper.SetDefault("qdrant.url", "http://localhost:6333")
	viper.SetDefault("qdrant.collection_name", "hr_documents")
	viper.SetDefault("qdrant.vector_size", 1024)
	viper.SetDefault("qdrant.timeout", "30s")

	viper.SetDefault("context.max_context_length", 4096)
	viper.SetDefault("context.top_k", 5)
	viper.SetDefault("context.cache_capacity", 1024)

	viper.SetDefault("knowledge.dsn", "file:hr_knowledge.db?_pragma=busy_timeout(5000)")

	viper.SetDefault("cache.comparison_capacity", 1024)
	viper.SetDefault("cache.comparison_ttl", "24h")
	viper.SetDefault("cache.strategy_capacity", 1024)
	viper.SetDefault("cache.strategy_ttl", "168h")

	viper.SetDefault("history.route_cap", 1000)
	viper.SetDefault("history.conversation_cap", 10)
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	if err := validateLLMConfig(&c.LLM); err != nil {
		return err
	}

	known := make(map[string]bool, len(c.LLM.Providers))
	for _, p := range c.LLM.Providers {
		known[p.Name] = true
	}
	for _, v := range c.Models.Variants {
		if v.ID == "" {
			return fmt.Errorf("models.variants: id is required")
		}
		if !known[v.Provider] {
			return fmt.Errorf("model %s: unknown provider %q", v.ID, v.Provider)
		}
	}

	if c.Context.MaxContextLength <= 0 {
		return fmt.Errorf("context.max_context_length must be positive, got %d", c.Context.MaxContextLength)
	}
	return nil
}

// Durations parses the retry delay and the chain timeout.
func (c LLMConfig) Durations() (retryDelay, maxTotal time.Duration, err error) {
	if c.RetryDelay != "" {
		if retryDelay, err = time.ParseDuration(c.RetryDelay); err != nil {
			return 0, 0, fmt.Errorf("llm.retry_delay: %w", err)
		}
	}
	if c.MaxTotalTimeout != "" {
		if maxTotal, err = time.ParseDuration(c.MaxTotalTimeout); err != nil {
			return 0, 0, fmt.Errorf("llm.max_total_timeout: %w", err)
		}
	}
	return retryDelay, maxTotal, nil
}

// Provider returns the named provider config.
func (c LLMConfig) Provider(name string) (ProviderConfig, bool) {
	for _, p := range c.Providers {
		if p.Name == name {
			return p, true
		}
	}
	return ProviderConfig{}, false
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}
	envVar := value[2 : len(value)-1]
	if envValue := viper.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	if envValue := os.Getenv(envVar); envValue != "" {
		return envValue
	}
	return value
}

func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}
	return nil
}

func getMapList(key string) []map[string]any {
	if !viper.IsSet(key) {
		return nil
	}
	list, ok := viper.Get(key).([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]any
func getStringFromMap(m map[string]any, key string) string {
	if str, ok := m[key].(string); ok {
		return str
	}
	return ""
}

func getBoolFromMap(m map[string]any, key string) bool {
	if b, ok := m[key].(bool); ok {
		return b
	}
	return false
}

func getIntFromMap(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func getFloatFromMap(m map[string]any, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

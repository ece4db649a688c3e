package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Load reads the configuration. A missing config file is not an error: the
// defaults describe a working CLI setup. File values are validated and then
// overridden by environment variables.
func Load(path string) (*AppConfig, error) {
	cfg := defaults()

	paths := []string{"config.yml"}
	if path != "" {
		paths = []string{path}
	}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		break
	}

	applyEnv(&cfg)

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func defaults() AppConfig {
	cacheDir := ".cache"
	if base, err := os.UserCacheDir(); err == nil {
		cacheDir = filepath.Join(base, "12306-skill")
	}
	return AppConfig{
		Server: ServerConfig{Port: 8012},
		Upstream: UpstreamConfig{
			DirectoryURL:      "https://kyfw.12306.cn/otn/resources/js/framework/station_name.js",
			QueryURL:          "https://kyfw.12306.cn/otn/leftTicket/query",
			SessionURL:        "https://kyfw.12306.cn/otn/leftTicket/init",
			TimeoutMS:         10000,
			RequestsPerSecond: 2,
			Burst:             4,
		},
		Cache: CacheConfig{
			Dir:               cacheDir,
			DirectoryTTLHours: 7 * 24,
			Redis: RedisConfig{
				Host:       "localhost",
				Port:       "6379",
				TTLSeconds: 300,
			},
		},
		Logging: LoggingConfig{
			Level:    "info",
			Console:  true,
			FilePath: "12306-skill.log",
		},
	}
}

func applyEnv(cfg *AppConfig) {
	cfg.Server.Port = getEnvInt("PORT", cfg.Server.Port)
	cfg.Upstream.DirectoryURL = getEnv("UPSTREAM_DIRECTORY_URL", cfg.Upstream.DirectoryURL)
	cfg.Upstream.QueryURL = getEnv("UPSTREAM_QUERY_URL", cfg.Upstream.QueryURL)
	cfg.Upstream.SessionURL = getEnv("UPSTREAM_SESSION_URL", cfg.Upstream.SessionURL)
	cfg.Cache.Dir = getEnv("CACHE_DIR", cfg.Cache.Dir)
	cfg.Cache.Redis.Enabled = getEnvBool("REDIS_ENABLED", cfg.Cache.Redis.Enabled)
	cfg.Cache.Redis.Host = getEnv("REDIS_HOST", cfg.Cache.Redis.Host)
	cfg.Cache.Redis.Port = getEnv("REDIS_PORT", cfg.Cache.Redis.Port)
	cfg.Cache.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Cache.Redis.Password)
	cfg.Logging.Level = getEnv("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.File = getEnvBool("LOG_FILE", cfg.Logging.File)
	cfg.Logging.FilePath = getEnv("LOG_FILE_PATH", cfg.Logging.FilePath)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

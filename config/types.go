package config

// ServerConfig contains the serve-mode HTTP listener configuration.
type ServerConfig struct {
	Port int `yaml:"port" validate:"gte=0,lte=65535"`
}

// UpstreamConfig contains the remote ticketing service endpoints.
type UpstreamConfig struct {
	DirectoryURL      string  `yaml:"directoryURL" validate:"omitempty,url"`
	QueryURL          string  `yaml:"queryURL" validate:"omitempty,url"`
	SessionURL        string  `yaml:"sessionURL" validate:"omitempty,url"`
	TimeoutMS         int     `yaml:"timeoutMS" validate:"gte=0"`
	RequestsPerSecond float64 `yaml:"requestsPerSecond" validate:"gte=0"`
	Burst             int     `yaml:"burst" validate:"gte=0"`
}

// RedisConfig contains the optional query-result cache settings.
type RedisConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Host       string `yaml:"host"`
	Port       string `yaml:"port"`
	Password   string `yaml:"password"`
	DB         int    `yaml:"db" validate:"gte=0"`
	TTLSeconds int    `yaml:"ttlSeconds" validate:"gte=0"`
}

// CacheConfig contains the station directory cache settings.
type CacheConfig struct {
	Dir               string      `yaml:"dir"`
	DirectoryTTLHours int         `yaml:"directoryTTLHours" validate:"gte=0"`
	Redis             RedisConfig `yaml:"redis"`
}

// LoggingConfig contains log output settings.
type LoggingConfig struct {
	Level    string `yaml:"level"`
	Console  bool   `yaml:"console"`
	File     bool   `yaml:"file"`
	FilePath string `yaml:"filePath"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Cache    CacheConfig    `yaml:"cache"`
	Logging  LoggingConfig  `yaml:"logging"`
}

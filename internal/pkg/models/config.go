package models

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Logger   LoggerConfig
	Rides    RidesConfig
}

// AppConfig holds application metadata
type AppConfig struct {
	Name        string `json:"name"`
	Environment string `json:"environment"`
	Debug       bool   `json:"debug"`
	Version     string `json:"version"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string `json:"host"`
	Port            int    `json:"port"`
	ReadTimeout     int    `json:"read_timeout"`
	WriteTimeout    int    `json:"write_timeout"`
	ShutdownTimeout int    `json:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	SSLMode   string `json:"ssl_mode"`
	MaxConns  int    `json:"max_conns"`
	IdleConns int    `json:"idle_conns"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	PoolSize int    `json:"pool_size"`
}

// NSQConfig holds NSQ producer configuration
type NSQConfig struct {
	Address           string `json:"address"`
	NotificationTopic string `json:"notification_topic"`
}

// JWTConfig holds JWT validation configuration
type JWTConfig struct {
	Secret     string `json:"secret"`
	Expiration int    `json:"expiration"`
	Issuer     string `json:"issuer"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string `json:"level"`
	FilePath string `json:"file_path"`
}

// RidesConfig holds ride listing policy knobs.
//
// BoardIncludeConfirmed and BoardExcludeJoined exist because two revisions of
// the open board disagreed on both points; product has not settled them, so
// they are configuration rather than code.
type RidesConfig struct {
	PageSize              int  `json:"page_size"`
	BoardIncludeConfirmed bool `json:"board_include_confirmed"`
	BoardExcludeJoined    bool `json:"board_exclude_joined"`
	BoardCacheTTLSeconds  int  `json:"board_cache_ttl_seconds"`
}

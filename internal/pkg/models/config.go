package models

// Config represents application configuration
type Config struct {
	App     AppConfig
	Server  ServerConfig
	Mongo   MongoConfig
	SQLite  SQLiteConfig
	Redis   RedisConfig
	NATS    NATSConfig
	JWT     JWTConfig
	SMS     SMSConfig
	Stripe  StripeConfig
	Logger  LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// MongoConfig contains the document store connection configuration
type MongoConfig struct {
	URI      string
	Database string
}

// SQLiteConfig contains the embedded credential store configuration
type SQLiteConfig struct {
	Path string
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// SMSConfig contains the SMS gateway (Twilio) configuration
type SMSConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

// StripeConfig contains the payment gateway configuration
type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

package config

import "os"

// Config holds the server configuration. Every value has a development
// default and can be overridden via the environment (or a .env file,
// loaded in main).
type Config struct {
	Port          string
	MongoURI      string
	MongoDB       string
	SessionSecret string
	RedisAddr     string
	UploadDir     string
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "recipe_book"),
		SessionSecret: getEnv("SESSION_SECRET", "dev-secret-key"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		UploadDir:     getEnv("UPLOAD_DIR", "static/images"),
	}
}

// Addr returns the listen address with a leading colon.
func (c *Config) Addr() string {
	if c.Port == "" {
		return ":8080"
	}
	if c.Port[0] == ':' {
		return c.Port
	}
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

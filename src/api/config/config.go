package config

import "os"

type Config struct {
	MySQLDSN     string
	RedisURL     string
	JWTSecret    string
	Port         string
	AllowOrigins []string
}

func Load() Config {
	origins := []string{"http://localhost:3000"}
	if extra := os.Getenv("DASHBOARD_ORIGIN"); extra != "" {
		origins = append(origins, extra)
	}

	return Config{
		MySQLDSN:     getenv("MYSQL_DSN", "snowbot:snowbot@tcp(127.0.0.1:3306)/snowbot"),
		RedisURL:     getenv("REDIS_URL", "redis://127.0.0.1:6379/0"),
		JWTSecret:    getenv("JWT_SECRET", "snowbot-dev-secret"),
		Port:         getenv("PORT", "5000"),
		AllowOrigins: origins,
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

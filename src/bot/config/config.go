package config

import (
	"log"
	"os"

	"github.com/frostworks/snowbot/src/data"
)

type Config struct {
	Token    string
	Prefix   string
	MySQLDSN string
	RedisURL string
}

// Load resolves the bot token from the stored profile first, then the
// DISCORD_TOKEN environment variable as a bootstrap fallback.
func Load(store data.Store) Config {
	var token string
	if settings, err := store.GetBotSettings(); err != nil {
		log.Printf("read bot settings: %v", err)
	} else if settings != nil {
		token = settings.Token
	}
	if token == "" {
		token = os.Getenv("DISCORD_TOKEN")
	}

	return Config{
		Token:    token,
		Prefix:   getenv("COMMAND_PREFIX", "!"),
		MySQLDSN: getenv("MYSQL_DSN", "snowbot:snowbot@tcp(127.0.0.1:3306)/snowbot"),
		RedisURL: getenv("REDIS_URL", "redis://127.0.0.1:6379/0"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

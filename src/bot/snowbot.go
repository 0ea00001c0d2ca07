package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/frostworks/snowbot/src/bot/bot"
	"github.com/frostworks/snowbot/src/bot/config"
	"github.com/frostworks/snowbot/src/data"
)

func main() {
	mysqlDSN := os.Getenv("MYSQL_DSN")
	if mysqlDSN == "" {
		mysqlDSN = "snowbot:snowbot@tcp(127.0.0.1:3306)/snowbot"
	}
	db := data.MustMySQL(mysqlDSN)

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://127.0.0.1:6379/0"
	}
	rdb := data.MustRedis(redisURL)

	store := data.NewStore(db, rdb)
	cfg := config.Load(store)
	if cfg.Token == "" {
		log.Fatal("bot token not set in bot settings or DISCORD_TOKEN")
	}

	b, err := bot.New(bot.Config{
		Token:  cfg.Token,
		Prefix: cfg.Prefix,
		Store:  store,
		Redis:  rdb,
	})
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	if err := b.Start(); err != nil {
		log.Fatalf("Failed to start bot: %v", err)
	}

	log.Println("Snow bot is running. Press CTRL-C to exit.")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	b.Stop()
	log.Println("Snow bot stopped gracefully")
}

package main

import (
	"log"
	"os"

	"github.com/frostworks/snowbot/src/data"
	"github.com/frostworks/snowbot/src/types"
)

func main() {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "snowbot:snowbot@tcp(127.0.0.1:3306)/snowbot"
	}
	db := data.MustMySQL(dsn)
	if err := data.Seed(db); err != nil {
		log.Fatalf("seed: %v", err)
	}

	store := data.NewStore(db, nil)

	settings, err := store.GetBotSettings()
	if err != nil {
		log.Fatalf("bot settings: %v", err)
	}
	log.Printf("Bot: %s (%s)", settings.Username, settings.Status)

	ai, err := store.GetAISettings()
	if err != nil {
		log.Fatalf("ai settings: %v", err)
	}
	log.Printf("Persona: %s, speed %s, security %s", ai.Name, ai.ResponseSpeed, ai.SecurityLevel)

	created, err := store.AddToBlacklist(&types.BlacklistedUser{
		ID:       "smoke-test-user",
		Username: "smoke-test",
		Reason:   "storage smoke test",
	})
	if err != nil {
		log.Fatalf("blacklist insert: %v", err)
	}
	log.Printf("Blacklist insert created=%v", created)

	listed, err := store.IsBlacklisted("smoke-test-user")
	if err != nil || !listed {
		log.Fatalf("blacklist lookup: listed=%v err=%v", listed, err)
	}

	if err := store.RemoveFromBlacklist("smoke-test-user"); err != nil {
		log.Fatalf("blacklist remove: %v", err)
	}

	stats, err := store.GetBotStats()
	if err != nil {
		log.Fatalf("stats: %v", err)
	}
	log.Printf("Stats: %d servers, %d users, %d commands, %d blacklisted",
		stats.Servers, stats.Users, stats.Commands, stats.Blacklisted)
}

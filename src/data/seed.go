package data

import (
	"log"

	"github.com/frostworks/snowbot/src/types"
	"gorm.io/gorm"
)

// Seed provisions the default owners, profile, persona and stats on an empty
// database. A database with any user rows is left alone.
func Seed(db *gorm.DB) error {
	var existing int64
	if err := db.Model(&types.User{}).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		log.Println("Database already seeded, skipping")
		return nil
	}

	owners := []types.User{
		{ID: "1346484101388959774", Username: "BotOwner", Role: types.RoleOwner},
		{ID: "1380607427774513152", Username: "CoOwner", Role: types.RoleCoOwner},
	}
	if err := db.Create(&owners).Error; err != nil {
		return err
	}

	settings := types.BotSettings{
		Username:     "Snow",
		Bio:          "Your kawaii winter companion! I'm here to make your server magical with fun commands, AI chat, and cute personality. Always watching and ready to help!",
		Status:       types.StatusOnline,
		CustomStatus: "Spreading kawaii vibes...",
	}
	if err := db.Create(&settings).Error; err != nil {
		return err
	}

	persona := types.AISettings{
		Name:              "Snow",
		Age:               16,
		Vibe:              "Cute, Kawaii, Girly, Human-like",
		Theme:             "Soft-hearted winter girl, yaps a lot",
		ResponseSpeed:     types.SpeedHumanLike,
		SecurityLevel:     types.SecurityAutoBlacklist,
		PersonalityTraits: []string{"Kawaii", "Always Watching", "Talkative"},
	}
	if err := db.Create(&persona).Error; err != nil {
		return err
	}

	stats := types.BotStats{Servers: 0, Users: 0, Commands: 0, Blacklisted: 0}
	if err := db.Create(&stats).Error; err != nil {
		return err
	}

	log.Println("Database seeded")
	return nil
}

package presence

import (
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/frostworks/snowbot/src/types"
)

// Store is the slice of the settings store the presence refresh writes.
type Store interface {
	GetBotSettings() (*types.BotSettings, error)
	GetBotStats() (*types.BotStats, error)
	UpdateBotStats(s *types.BotStats) (*types.BotStats, error)
}

// Apply sets the gateway presence from the stored profile. Missing settings
// leave the default presence alone.
func Apply(s *discordgo.Session, settings *types.BotSettings) error {
	if settings == nil {
		return nil
	}

	status := "online"
	switch settings.Status {
	case types.StatusDnd:
		status = "dnd"
	case types.StatusOffline:
		status = "invisible"
	}

	update := discordgo.UpdateStatusData{Status: status}
	if settings.CustomStatus != "" {
		update.Activities = []*discordgo.Activity{{
			Name:  settings.CustomStatus,
			Type:  discordgo.ActivityTypeCustom,
			State: settings.CustomStatus,
		}}
	}
	return s.UpdateStatusComplex(update)
}

// RefreshStats rewrites the server and user counts from the gateway state,
// preserving the monotonic command counter.
func RefreshStats(s *discordgo.Session, store Store) {
	servers := int64(len(s.State.Guilds))
	var users int64
	for _, g := range s.State.Guilds {
		users += int64(g.MemberCount)
	}

	stats, err := store.GetBotStats()
	if err != nil {
		log.Printf("presence: read stats: %v", err)
		return
	}
	if stats == nil {
		stats = &types.BotStats{}
	}
	stats.Servers = servers
	stats.Users = users

	if _, err := store.UpdateBotStats(stats); err != nil {
		log.Printf("presence: update stats: %v", err)
		return
	}
	log.Printf("Bot stats: %d servers, %d users", servers, users)
}

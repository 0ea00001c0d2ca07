package bot

import (
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/frostworks/snowbot/src/bot/components/ai"
	"github.com/frostworks/snowbot/src/bot/components/commands"
	"github.com/frostworks/snowbot/src/bot/components/economy"
	"github.com/frostworks/snowbot/src/bot/components/presence"
	"github.com/frostworks/snowbot/src/bot/components/router"
	"github.com/frostworks/snowbot/src/bot/components/security"
	"github.com/frostworks/snowbot/src/data"
	"github.com/frostworks/snowbot/src/metrics"
	"github.com/redis/go-redis/v9"
)

type Config struct {
	Token  string
	Prefix string
	Store  data.Store
	Redis  *redis.Client
}

type Bot struct {
	session   *discordgo.Session
	store     data.Store
	router    *router.Router
	responder *ai.Responder
}

func New(config Config) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, err
	}

	responder := ai.NewResponder()
	b := &Bot{
		session:   dg,
		store:     config.Store,
		responder: responder,
		router: router.New(router.Config{
			Store:     config.Store,
			Ledger:    economy.NewLedger(),
			Registry:  commands.NewRegistry(),
			Responder: responder,
			AutoMod:   security.NewAutoMod(config.Store),
			Metrics:   metrics.Registry("snowbot"),
			Redis:     config.Redis,
			Prefix:    config.Prefix,
		}),
	}

	dg.AddHandler(b.handleReady)
	dg.AddHandler(b.router.HandleMessage)

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsDirectMessages

	return b, nil
}

func (b *Bot) Start() error {
	return b.session.Open()
}

func (b *Bot) Stop() {
	b.responder.Stop()
	b.session.Close()
}

func (b *Bot) handleReady(s *discordgo.Session, event *discordgo.Ready) {
	log.Printf("Snow bot is online, logged in as %s", event.User.Username)

	presence.RefreshStats(s, b.store)

	settings, err := b.store.GetBotSettings()
	if err != nil {
		log.Printf("read bot settings: %v", err)
		return
	}
	if err := presence.Apply(s, settings); err != nil {
		log.Printf("set presence: %v", err)
	}
}

package router

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/frostworks/snowbot/src/bot/components/ai"
	"github.com/frostworks/snowbot/src/bot/components/commands"
	"github.com/frostworks/snowbot/src/bot/components/economy"
	"github.com/frostworks/snowbot/src/bot/components/security"
	"github.com/frostworks/snowbot/src/data"
	"github.com/frostworks/snowbot/src/metrics"
	"github.com/frostworks/snowbot/src/types"
	"github.com/redis/go-redis/v9"
)

// Store is everything the router reads or writes in the settings store.
type Store interface {
	commands.Store
	security.Store
	GetAISettings() (*types.AISettings, error)
	IncrementCommands() error
}

type Config struct {
	Store     Store
	Ledger    *economy.Ledger
	Registry  *commands.Registry
	Responder *ai.Responder
	AutoMod   *security.AutoMod
	Metrics   *metrics.Metrics
	Redis     *redis.Client
	Prefix    string
}

// Router decides the single response path for each inbound message:
// blacklist gate, then AI-mention branch, then prefix dispatch, then the
// auto-moderation fallback.
type Router struct {
	store     Store
	ledger    *economy.Ledger
	registry  *commands.Registry
	responder *ai.Responder
	automod   *security.AutoMod
	metrics   *metrics.Metrics
	rdb       *redis.Client
	prefix    string
	started   time.Time
}

func New(cfg Config) *Router {
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "!"
	}
	return &Router{
		store:     cfg.Store,
		ledger:    cfg.Ledger,
		registry:  cfg.Registry,
		responder: cfg.Responder,
		automod:   cfg.AutoMod,
		metrics:   cfg.Metrics,
		rdb:       cfg.Redis,
		prefix:    prefix,
		started:   time.Now(),
	}
}

// HandleMessage is the discordgo handler; the work happens in Process.
func (r *Router) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	r.Process(s, s.State.User.ID, m)
}

func (r *Router) Process(s commands.Session, selfID string, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.Author.ID == selfID {
		return
	}
	r.metrics.MessagesSeen.Inc()

	// Hard filter: blacklisted authors get no reaction at all. A store
	// failure falls open so an outage doesn't mute everyone.
	listed, err := r.store.IsBlacklisted(m.Author.ID)
	if err != nil {
		log.Printf("router: blacklist check for %s: %v", m.Author.ID, err)
		r.metrics.StoreErrors.WithLabelValues("blacklist_check").Inc()
	}
	if listed {
		r.metrics.BlacklistDrops.Inc()
		return
	}

	prefixed := strings.HasPrefix(m.Content, r.prefix)

	if !prefixed && r.mentionsSelf(m, selfID) {
		r.handleMention(s, m)
		return
	}

	if !prefixed {
		return
	}

	fields := strings.Fields(strings.TrimSpace(strings.TrimPrefix(m.Content, r.prefix)))
	if len(fields) == 0 {
		return
	}
	name := strings.ToLower(fields[0])
	args := fields[1:]

	if cmd, ok := r.registry.Lookup(name); ok {
		r.handleCommand(s, m, cmd, args)
		return
	}

	if security.Matches(name, args) {
		if r.automod.Enforce(m.Author) {
			r.metrics.AutomodBlacklists.Inc()
		}
		_, _ = s.ChannelMessageSendEmbed(m.ChannelID, security.Alert())
		return
	}

	// unrecognized and harmless: stay silent
}

func (r *Router) mentionsSelf(m *discordgo.MessageCreate, selfID string) bool {
	for _, u := range m.Mentions {
		if u.ID == selfID {
			return true
		}
	}
	return false
}

func (r *Router) handleMention(s commands.Session, m *discordgo.MessageCreate) {
	settings, err := r.store.GetAISettings()
	if err != nil {
		log.Printf("router: ai settings: %v", err)
		r.metrics.StoreErrors.WithLabelValues("ai_settings").Inc()
		return
	}
	if settings == nil {
		return
	}
	r.responder.Schedule(s, m, settings)
	r.metrics.MentionReplies.Inc()
}

func (r *Router) handleCommand(s commands.Session, m *discordgo.MessageCreate, cmd *commands.Command, args []string) {
	// Exactly one counter bump per recognized invocation. Failures degrade:
	// the reply still goes out.
	if err := r.store.IncrementCommands(); err != nil {
		log.Printf("router: command counter: %v", err)
		r.metrics.StoreErrors.WithLabelValues("command_counter").Inc()
	}
	r.metrics.CommandsHandled.WithLabelValues(cmd.Name).Inc()

	if r.rdb != nil {
		_ = data.PublishCommand(context.Background(), r.rdb, map[string]interface{}{
			"command": cmd.Name,
			"author":  m.Author.ID,
			"guild":   m.GuildID,
			"channel": m.ChannelID,
			"time":    time.Now().Unix(),
		})
	}

	r.registry.Dispatch(cmd, &commands.Context{
		Session: s,
		Store:   r.store,
		Ledger:  r.ledger,
		Message: m,
		Args:    args,
		Started: r.started,
	})
}

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics stores the Prometheus collectors shared by the bot and the API.
type Metrics struct {
	MessagesSeen      prometheus.Counter
	BlacklistDrops    prometheus.Counter
	CommandsHandled   *prometheus.CounterVec
	MentionReplies    prometheus.Counter
	AutomodBlacklists prometheus.Counter
	StoreErrors       *prometheus.CounterVec
}

var (
	regOnce  sync.Once
	instance *Metrics
)

// Registry builds and registers the metrics singleton with optional namespace.
func Registry(namespace string) *Metrics {
	regOnce.Do(func() {
		instance = &Metrics{
			MessagesSeen: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "messages_seen_total",
				Help:      "Total inbound messages delivered to the router.",
			}),
			BlacklistDrops: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "blacklist_drops_total",
				Help:      "Messages silently dropped by the blacklist gate.",
			}),
			CommandsHandled: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "commands_handled_total",
				Help:      "Recognized prefix commands by command name.",
			}, []string{"command"}),
			MentionReplies: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "mention_replies_total",
				Help:      "Persona replies scheduled for bot mentions.",
			}),
			AutomodBlacklists: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "automod_blacklists_total",
				Help:      "Users auto-blacklisted by the abuse-keyword rule.",
			}),
			StoreErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "store_errors_total",
				Help:      "Settings-store failures swallowed at the router boundary.",
			}, []string{"op"}),
		}

		prometheus.MustRegister(
			instance.MessagesSeen,
			instance.BlacklistDrops,
			instance.CommandsHandled,
			instance.MentionReplies,
			instance.AutomodBlacklists,
			instance.StoreErrors,
		)
	})
	return instance
}

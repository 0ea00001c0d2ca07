package security

import (
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/frostworks/snowbot/src/types"
)

// Abuse keywords are matched as bare substrings of the command token. That
// includes "admin": any command containing it gets flagged. The false
// positive is an accepted trade-off of the rule, not an accident.
var abuseKeywords = []string{"hack", "ddos", "exploit", "admin"}

// Matches reports whether a command token and its arguments look like an
// abuse attempt: a keyword substring, or a "bot ... token" probe.
func Matches(command string, args []string) bool {
	for _, kw := range abuseKeywords {
		if strings.Contains(command, kw) {
			return true
		}
	}
	if strings.Contains(command, "bot") {
		for _, arg := range args {
			if arg == "token" {
				return true
			}
		}
	}
	return false
}

// Store is the slice of the settings store the rule needs.
type Store interface {
	IsBlacklisted(id string) (bool, error)
	AddToBlacklist(entry *types.BlacklistedUser) (bool, error)
	IncrementBlacklisted() error
}

// AutoMod inserts abusive authors into the blacklist exactly once.
type AutoMod struct {
	store Store
}

func NewAutoMod(store Store) *AutoMod {
	return &AutoMod{store: store}
}

// Enforce blacklists the author unless already listed. It reports whether a
// new entry was created; store failures are logged and reported as no-op so
// the caller still replies.
func (a *AutoMod) Enforce(author *discordgo.User) bool {
	listed, err := a.store.IsBlacklisted(author.ID)
	if err != nil {
		log.Printf("automod: blacklist lookup for %s: %v", author.ID, err)
		return false
	}
	if listed {
		return false
	}

	created, err := a.store.AddToBlacklist(&types.BlacklistedUser{
		ID:       author.ID,
		Username: author.Username,
		Reason:   "Auto-detected abuse/hacking attempt",
	})
	if err != nil {
		log.Printf("automod: blacklist insert for %s: %v", author.ID, err)
		return false
	}
	if !created {
		return false
	}

	if err := a.store.IncrementBlacklisted(); err != nil {
		log.Printf("automod: stats update: %v", err)
	}

	log.Printf("Auto-blacklisted user %s (%s) for suspicious activity", author.Username, author.ID)
	return true
}

// Alert is the fixed security reply sent on every match, whether or not the
// insert happened.
func Alert() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Color:       0xFF0000,
		Title:       "🛡️ Security Alert",
		Description: "Suspicious activity detected! You have been automatically blacklisted. 👀",
		Footer:      &discordgo.MessageEmbedFooter{Text: "Always watching for threats..."},
	}
}

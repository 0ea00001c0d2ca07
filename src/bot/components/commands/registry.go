package commands

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/frostworks/snowbot/src/bot/components/economy"
	"github.com/frostworks/snowbot/src/types"
)

// Session is the slice of the Discord session the command handlers use.
// *discordgo.Session satisfies it; tests substitute a fake.
type Session interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendReply(channelID string, content string, reference *discordgo.MessageReference, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, options ...discordgo.RequestOption) ([]*discordgo.Message, error)
	ChannelMessagesBulkDelete(channelID string, messages []string, options ...discordgo.RequestOption) error
	ChannelTyping(channelID string, options ...discordgo.RequestOption) error
	GuildMemberDeleteWithReason(guildID, userID, reason string, options ...discordgo.RequestOption) error
	GuildBanCreateWithReason(guildID, userID, reason string, days int, options ...discordgo.RequestOption) error
	UserChannelPermissions(userID, channelID string, fetchOptions ...discordgo.RequestOption) (int64, error)
	Guild(guildID string, options ...discordgo.RequestOption) (*discordgo.Guild, error)
}

// Store is the slice of the settings store the command handlers read.
type Store interface {
	GetBotStats() (*types.BotStats, error)
}

// Context carries everything a command invocation needs.
type Context struct {
	Session Session
	Store   Store
	Ledger  *economy.Ledger
	Message *discordgo.MessageCreate
	Args    []string
	Started time.Time
}

func (c *Context) reply(content string) {
	_, _ = c.Session.ChannelMessageSendReply(c.Message.ChannelID, content, c.Message.Reference())
}

func (c *Context) replyEmbed(embed *discordgo.MessageEmbed) {
	embed.Timestamp = time.Now().Format(time.RFC3339)
	_, _ = c.Session.ChannelMessageSendEmbed(c.Message.ChannelID, embed)
}

// firstMention returns the first mentioned user that is not a bot.
func (c *Context) firstMention() *discordgo.User {
	for _, u := range c.Message.Mentions {
		if !u.Bot {
			return u
		}
	}
	return nil
}

// Command is one registry entry. When Permission is non-zero the dispatcher
// checks it before the handler runs, so permission failures always precede
// missing-argument failures.
type Command struct {
	Name           string
	Aliases        []string
	Category       string
	Permission     int64
	PermissionName string
	Run            func(ctx *Context)
}

// Registry maps command names and aliases to handlers.
type Registry struct {
	commands []*Command
	byName   map[string]*Command
}

func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]*Command)}
	r.register(economyCommands()...)
	r.register(funCommands()...)
	r.register(moderationCommands()...)
	r.register(infoCommands()...)
	return r
}

func (r *Registry) register(cmds ...*Command) {
	for _, cmd := range cmds {
		r.commands = append(r.commands, cmd)
		r.byName[cmd.Name] = cmd
		for _, alias := range cmd.Aliases {
			r.byName[alias] = cmd
		}
	}
}

// Lookup resolves a lowercased command token to its handler.
func (r *Registry) Lookup(name string) (*Command, bool) {
	cmd, ok := r.byName[name]
	return cmd, ok
}

// Dispatch runs the command, gating on the required permission first.
func (r *Registry) Dispatch(cmd *Command, ctx *Context) {
	if cmd.Permission != 0 {
		perms, err := ctx.Session.UserChannelPermissions(ctx.Message.Author.ID, ctx.Message.ChannelID)
		if err != nil || perms&cmd.Permission == 0 {
			ctx.reply("❄️ You need " + cmd.PermissionName + " permissions to use this command!")
			return
		}
	}
	cmd.Run(ctx)
}

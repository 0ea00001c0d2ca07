package commands

import (
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
)

func infoCommands() []*Command {
	return []*Command{
		{Name: "help", Category: "info", Run: runHelp},
		{Name: "stats", Category: "info", Run: runStats},
		{Name: "userinfo", Category: "info", Run: runUserInfo},
		{Name: "serverinfo", Category: "info", Run: runServerInfo},
	}
}

func runHelp(ctx *Context) {
	ctx.replyEmbed(&discordgo.MessageEmbed{
		Color:       crystalColor,
		Title:       "❄️ Snow Bot Commands",
		Description: "Your comprehensive kawaii multipurpose bot! ✨",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "💎 Economy", Value: "`!balance` `!daily` `!work`", Inline: true},
			{Name: "🎉 Fun", Value: "`!hug` `!snowball` `!cute` `!8ball`", Inline: true},
			{Name: "😂 Memes", Value: "`!meme` `!joke` `!roast`", Inline: true},
			{Name: "🛡️ Moderation", Value: "`!kick` `!ban` `!clear`", Inline: true},
			{Name: "🎨 Image Gen", Value: "`!imagegen` (AI art coming soon)", Inline: true},
			{Name: "🤖 AI Chat", Value: "Just mention me to chat!", Inline: true},
			{Name: "📊 Info", Value: "`!stats` `!serverinfo` `!userinfo`", Inline: true},
			{Name: "🛡️ Security", Value: "Auto-detects abuse attempts", Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Always watching and ready to help! 👀"},
	})
}

func runStats(ctx *Context) {
	stats, err := ctx.Store.GetBotStats()
	if err != nil || stats == nil {
		if err != nil {
			log.Printf("stats command: %v", err)
		}
		ctx.reply("❄️ Failed to fetch bot statistics!")
		return
	}

	ctx.replyEmbed(&discordgo.MessageEmbed{
		Color: crystalColor,
		Title: "📊 Snow Bot Statistics",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "🏠 Servers", Value: fmt.Sprintf("%d", stats.Servers), Inline: true},
			{Name: "👥 Users", Value: fmt.Sprintf("%d", stats.Users), Inline: true},
			{Name: "⚡ Commands Used", Value: fmt.Sprintf("%d", stats.Commands), Inline: true},
			{Name: "🛡️ Blacklisted", Value: fmt.Sprintf("%d", stats.Blacklisted), Inline: true},
			{Name: "⏰ Uptime", Value: formatUptime(time.Since(ctx.Started)), Inline: true},
			{Name: "💙 Status", Value: "Always Watching 👀", Inline: true},
		},
	})
}

func runUserInfo(ctx *Context) {
	target := ctx.Message.Author
	if mention := ctx.firstMention(); mention != nil {
		target = mention
	}

	created, _ := discordgo.SnowflakeTimestamp(target.ID)
	ctx.replyEmbed(&discordgo.MessageEmbed{
		Color:     crystalColor,
		Title:     fmt.Sprintf("👤 %s's Info", target.Username),
		Thumbnail: &discordgo.MessageEmbedThumbnail{URL: target.AvatarURL("")},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Username", Value: target.Username, Inline: true},
			{Name: "ID", Value: target.ID, Inline: true},
			{Name: "Account Created", Value: created.Format("Jan 2, 2006"), Inline: true},
		},
	})
}

func runServerInfo(ctx *Context) {
	guild, err := ctx.Session.Guild(ctx.Message.GuildID)
	if err != nil {
		ctx.reply("❄️ Failed to fetch server info!")
		return
	}

	created, _ := discordgo.SnowflakeTimestamp(guild.ID)
	ctx.replyEmbed(&discordgo.MessageEmbed{
		Color:     crystalColor,
		Title:     fmt.Sprintf("📋 %s Server Info", guild.Name),
		Thumbnail: &discordgo.MessageEmbedThumbnail{URL: guild.IconURL("")},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "👑 Owner", Value: fmt.Sprintf("<@%s>", guild.OwnerID), Inline: true},
			{Name: "👥 Members", Value: fmt.Sprintf("%d", guild.MemberCount), Inline: true},
			{Name: "📅 Created", Value: created.Format("Jan 2, 2006"), Inline: true},
			{Name: "🔒 Verification", Value: fmt.Sprintf("%d", guild.VerificationLevel), Inline: true},
			{Name: "🎭 Roles", Value: fmt.Sprintf("%d", len(guild.Roles)), Inline: true},
		},
	})
}

func formatUptime(d time.Duration) string {
	seconds := int(d.Seconds())
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours%24)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes%60)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds%60)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
)

func moderationCommands() []*Command {
	return []*Command{
		{
			Name:           "kick",
			Category:       "moderation",
			Permission:     discordgo.PermissionKickMembers,
			PermissionName: "kick",
			Run:            runKick,
		},
		{
			Name:           "ban",
			Category:       "moderation",
			Permission:     discordgo.PermissionBanMembers,
			PermissionName: "ban",
			Run:            runBan,
		},
		{
			Name:           "clear",
			Aliases:        []string{"purge"},
			Category:       "moderation",
			Permission:     discordgo.PermissionManageMessages,
			PermissionName: "manage messages",
			Run:            runClear,
		},
	}
}

// moderationReason joins everything after the mention token, defaulting like
// the classic moderation bots do.
func moderationReason(args []string) string {
	if len(args) > 1 {
		return strings.Join(args[1:], " ")
	}
	return "No reason provided"
}

func runKick(ctx *Context) {
	target := ctx.firstMention()
	if target == nil {
		ctx.reply("❄️ Please mention a user to kick!")
		return
	}
	reason := moderationReason(ctx.Args)

	if err := ctx.Session.GuildMemberDeleteWithReason(ctx.Message.GuildID, target.ID, reason); err != nil {
		ctx.reply("❄️ Failed to kick the user!")
		return
	}

	ctx.replyEmbed(&discordgo.MessageEmbed{
		Color:       0xFF6B6B,
		Title:       "👢 User Kicked",
		Description: fmt.Sprintf("**%s** has been kicked from the server.", target.Username),
		Fields:      []*discordgo.MessageEmbedField{{Name: "Reason", Value: reason}},
	})
}

func runBan(ctx *Context) {
	target := ctx.firstMention()
	if target == nil {
		ctx.reply("❄️ Please mention a user to ban!")
		return
	}
	reason := moderationReason(ctx.Args)

	if err := ctx.Session.GuildBanCreateWithReason(ctx.Message.GuildID, target.ID, reason, 0); err != nil {
		ctx.reply("❄️ Failed to ban the user!")
		return
	}

	ctx.replyEmbed(&discordgo.MessageEmbed{
		Color:       0xFF0000,
		Title:       "🔨 User Banned",
		Description: fmt.Sprintf("**%s** has been banned from the server.", target.Username),
		Fields:      []*discordgo.MessageEmbedField{{Name: "Reason", Value: reason}},
	})
}

func runClear(ctx *Context) {
	var count int
	if len(ctx.Args) > 0 {
		count, _ = strconv.Atoi(ctx.Args[0])
	}
	if count < 1 || count > 100 {
		ctx.reply("❄️ Please provide a number between 1 and 100!")
		return
	}

	// count messages plus the command itself
	messages, err := ctx.Session.ChannelMessages(ctx.Message.ChannelID, count+1, "", "", "")
	if err != nil {
		ctx.reply("❄️ Failed to clear messages!")
		return
	}

	ids := make([]string, 0, len(messages))
	for _, msg := range messages {
		ids = append(ids, msg.ID)
	}

	if err := ctx.Session.ChannelMessagesBulkDelete(ctx.Message.ChannelID, ids); err != nil {
		ctx.reply("❄️ Failed to clear messages!")
		return
	}

	deleted := len(ids) - 1
	if deleted < 0 {
		deleted = 0
	}
	_, _ = ctx.Session.ChannelMessageSendEmbed(ctx.Message.ChannelID, &discordgo.MessageEmbed{
		Color:       crystalColor,
		Title:       "🧹 Messages Cleared",
		Description: fmt.Sprintf("Successfully deleted **%d** messages!", deleted),
	})
}

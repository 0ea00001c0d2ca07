package commands

import (
	"fmt"
	"math/rand"

	"github.com/bwmarrin/discordgo"
)

const crystalColor = 0x87CEEB

var workJobs = []string{
	"building snowmen ⛄",
	"catching snowflakes ❄️",
	"delivering winter magic ✨",
	"spreading kawaii vibes 💙",
	"organizing ice crystals 🔮",
}

func economyCommands() []*Command {
	return []*Command{
		{
			Name:     "balance",
			Aliases:  []string{"bal"},
			Category: "economy",
			Run:      runBalance,
		},
		{
			Name:     "daily",
			Category: "economy",
			Run:      runDaily,
		},
		{
			Name:     "work",
			Category: "economy",
			Run:      runWork,
		},
	}
}

func runBalance(ctx *Context) {
	balance := ctx.Ledger.Balance(ctx.Message.Author.ID)
	ctx.replyEmbed(&discordgo.MessageEmbed{
		Color:       crystalColor,
		Title:       "❄️ Snow Bank",
		Description: fmt.Sprintf("**%s**\n💎 Balance: **%d** Snow Crystals", ctx.Message.Author.Username, balance),
		Thumbnail:   &discordgo.MessageEmbedThumbnail{URL: ctx.Message.Author.AvatarURL("")},
	})
}

func runDaily(ctx *Context) {
	amount := 50 + rand.Intn(101) // 50..150
	balance := ctx.Ledger.Credit(ctx.Message.Author.ID, amount)
	ctx.replyEmbed(&discordgo.MessageEmbed{
		Color:       crystalColor,
		Title:       "❄️ Daily Snow Crystals!",
		Description: fmt.Sprintf("You collected **%d** Snow Crystals!\n💎 New Balance: **%d**", amount, balance),
		Footer:      &discordgo.MessageEmbedFooter{Text: "Come back tomorrow for more crystals!"},
	})
}

func runWork(ctx *Context) {
	amount := 25 + rand.Intn(76) // 25..100
	balance := ctx.Ledger.Credit(ctx.Message.Author.ID, amount)
	job := workJobs[rand.Intn(len(workJobs))]
	ctx.replyEmbed(&discordgo.MessageEmbed{
		Color:       crystalColor,
		Title:       "❄️ Work Complete!",
		Description: fmt.Sprintf("You worked %s and earned **%d** Snow Crystals!\n💎 New Balance: **%d**", job, amount, balance),
	})
}

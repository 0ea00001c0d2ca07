package commands

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/bwmarrin/discordgo"
)

var hugGifs = []string{
	"https://tenor.com/view/hug-anime-cute-kawaii-gif-12345",
	"https://tenor.com/view/snow-hug-winter-cute-gif-67890",
}

var cuteLines = []string{
	"Kyaa~ You think I'm cute? >//< Thank you! ❄️✨",
	"Uwu~ You're so sweet! I try my best to be kawaii! 💙",
	"Hehe~ Winter magic makes everything cuter! ❄️🌨️",
	"Aww, you made my snow heart melt! 🥺💙",
	"Yay! Being cute is my specialty! ✨❄️",
}

var eightBallAnswers = []string{
	"Yes, absolutely! ✨",
	"No way, nuh-uh! ❄️",
	"Maybe... I'm not sure! 🤔",
	"Definitely yes! 💙",
	"Ask me again later~ 👀",
	"Very likely! ⭐",
	"Not looking good... 😔",
	"Kyaa~ that's a secret! 🤫",
}

var roastLines = []string{
	"You're like a snow angel... if snow angels were made of participation trophies! ❄️😏",
	"I'd roast you, but my kawaii nature prevents me from being too mean! 💙",
	"You're so cool, you make ice cubes jealous! Wait... that's a compliment! 🧊",
	"If I had a snowball for every smart thing you said... I'd have no snowballs! ⛄",
	"You're special... like a snowflake that fell in the wrong season! ❄️",
}

var memeImages = []string{
	"https://i.imgflip.com/1bij.jpg",
	"https://i.imgflip.com/26am.jpg",
	"https://i.imgflip.com/1g8my4.jpg",
}

var jokes = []string{
	"Why don't scientists trust atoms? Because they make up everything! 🧪",
	"Why did the snowman call his dog Frost? Because Frost bites! ❄️🐕",
	"What do you call a sleeping bull? A bulldozer! 😴🐂",
	"Why don't eggs tell jokes? They'd crack each other up! 🥚😂",
	"What do you call a kawaii vampire? A bite-sized cutie! 🧛‍♀️💙",
}

func funCommands() []*Command {
	return []*Command{
		{Name: "hug", Category: "fun", Run: runHug},
		{Name: "snowball", Category: "fun", Run: runSnowball},
		{Name: "cute", Aliases: []string{"kawaii"}, Category: "fun", Run: runCute},
		{Name: "8ball", Category: "fun", Run: runEightBall},
		{Name: "roast", Category: "fun", Run: runRoast},
		{Name: "meme", Category: "fun", Run: runMeme},
		{Name: "joke", Category: "fun", Run: runJoke},
		{Name: "imagegen", Aliases: []string{"generate"}, Category: "fun", Run: runImageGen},
	}
}

func runHug(ctx *Context) {
	target := ctx.firstMention()
	who := "themselves"
	if target != nil && target.ID != ctx.Message.Author.ID {
		who = target.Username
	}
	ctx.replyEmbed(&discordgo.MessageEmbed{
		Color:       0xFFB6C1,
		Title:       "🤗 Warm Winter Hug!",
		Description: fmt.Sprintf("**%s** gives %s a cozy hug! ❄️💙", ctx.Message.Author.Username, who),
		Image:       &discordgo.MessageEmbedImage{URL: hugGifs[rand.Intn(len(hugGifs))]},
	})
}

func runSnowball(ctx *Context) {
	target := ctx.firstMention()
	if target == nil {
		ctx.reply("❄️ Who do you want to throw a snowball at? Mention someone!")
		return
	}
	ctx.replyEmbed(&discordgo.MessageEmbed{
		Color:       crystalColor,
		Title:       "❄️ Snowball Fight!",
		Description: fmt.Sprintf("**%s** throws a fluffy snowball at **%s**! 🎯❄️", ctx.Message.Author.Username, target.Username),
		Image:       &discordgo.MessageEmbedImage{URL: "https://tenor.com/view/snowball-fight-winter-fun-gif-12345"},
	})
}

func runCute(ctx *Context) {
	ctx.reply(cuteLines[rand.Intn(len(cuteLines))])
}

func runEightBall(ctx *Context) {
	question := strings.Join(ctx.Args, " ")
	if question == "" {
		ctx.reply("❄️ Ask me a question first, silly!")
		return
	}
	ctx.replyEmbed(&discordgo.MessageEmbed{
		Color: 0x9370DB,
		Title: "🎱 Magic 8-Ball",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Question", Value: question},
			{Name: "Snow's Answer", Value: eightBallAnswers[rand.Intn(len(eightBallAnswers))]},
		},
	})
}

func runRoast(ctx *Context) {
	target := ctx.Message.Author
	if mention := ctx.firstMention(); mention != nil {
		target = mention
	}
	ctx.replyEmbed(&discordgo.MessageEmbed{
		Color:       0xFF6B6B,
		Title:       "🔥 Kawaii Roast",
		Description: fmt.Sprintf("%s, %s", target.Username, roastLines[rand.Intn(len(roastLines))]),
		Footer:      &discordgo.MessageEmbedFooter{Text: "Just kidding! You're awesome! 💙"},
	})
}

func runMeme(ctx *Context) {
	ctx.replyEmbed(&discordgo.MessageEmbed{
		Color: 0xFFD700,
		Title: "😂 Random Meme!",
		Image: &discordgo.MessageEmbedImage{URL: memeImages[rand.Intn(len(memeImages))]},
	})
}

func runJoke(ctx *Context) {
	ctx.reply(jokes[rand.Intn(len(jokes))])
}

func runImageGen(ctx *Context) {
	ctx.replyEmbed(&discordgo.MessageEmbed{
		Color:       0xFF69B4,
		Title:       "🎨 AI Image Generation",
		Description: "Kyaa~ AI image generation is coming soon! ✨\nFor now, enjoy some kawaii ASCII art instead!",
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Snow Kawaii Art",
				Value: "```\n    ❄️\n  ❄️❄️❄️\n❄️❄️❄️❄️❄️\n  ❄️❄️❄️\n    ❄️\n```",
			},
		},
	})
}

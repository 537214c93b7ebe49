package utils

import (
	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createHelpCommand creates the /help command
func createHelpCommand() *discord.Command {
	return discord.NewCommand(
		"help",
		"Muestra todos los comandos disponibles",
		"utils",
		helpHandler,
	)
}

// helpHandler handles the /help command
func helpHandler(ctx *discord.CommandContext) error {
	embed := &discordgo.MessageEmbed{
		Title:       "📖 Comandos de PancyStats",
		Description: "Estadísticas, economía y moderación para tu servidor.",
		Color:       0x3498db,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "📊 Estadísticas",
				Value: "`/mentions` `/mentionleaderboard` `/rank` `/levelleaderboard`",
			},
			{
				Name:  "💰 Economía",
				Value: "`/balance` `/daily` `/work` `/deposit` `/withdraw` `/give` `/rob` `/leaderboard`",
			},
			{
				Name:  "🔧 Moderación",
				Value: "`/mod kick` `/mod ban` `/mod unban` `/mod timeout` `/mod warn` `/mod warnings` `/mod clearwarnings` `/mod purge` `/mod say`",
			},
			{
				Name:  "🎉 Diversión",
				Value: "`/8ball` `/coinflip` `/dice` `/meme` `/hug` `/slap` `/rps`",
			},
			{
				Name:  "🛠️ Utilidad",
				Value: "`/serverinfo` `/userinfo` `/avatar` `/poll` `/remind` `/ping` `/status`",
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "💫 Developed by PancyStudio | PancyStats Go",
		},
	}

	return ctx.ReplyEmbed(embed)
}

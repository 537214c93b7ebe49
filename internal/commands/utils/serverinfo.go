package utils

import (
	"fmt"

	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createServerInfoCommand creates the /serverinfo command
func createServerInfoCommand() *discord.Command {
	return discord.NewCommand(
		"serverinfo",
		"Muestra información del servidor",
		"utils",
		serverInfoHandler,
	)
}

// serverInfoHandler handles the /serverinfo command
func serverInfoHandler(ctx *discord.CommandContext) error {
	guild := ctx.Guild()
	if guild == nil {
		return ctx.ReplyEphemeral("❌ Este comando solo funciona dentro de un servidor.")
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🏰 %s", guild.Name),
		Color: 0x3498db,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: guild.IconURL("256"),
		},
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "🆔 ID",
				Value:  guild.ID,
				Inline: true,
			},
			{
				Name:   "👑 Dueño",
				Value:  fmt.Sprintf("<@%s>", guild.OwnerID),
				Inline: true,
			},
			{
				Name:   "👥 Miembros",
				Value:  fmt.Sprintf("%d", guild.MemberCount),
				Inline: true,
			},
			{
				Name:   "💬 Canales",
				Value:  fmt.Sprintf("%d", len(guild.Channels)),
				Inline: true,
			},
			{
				Name:   "🎭 Roles",
				Value:  fmt.Sprintf("%d", len(guild.Roles)),
				Inline: true,
			},
			{
				Name:   "😀 Emojis",
				Value:  fmt.Sprintf("%d", len(guild.Emojis)),
				Inline: true,
			},
		},
	}

	return ctx.ReplyEmbed(embed)
}

package utils

import (
	"fmt"

	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createUserInfoCommand creates the /userinfo command
func createUserInfoCommand() *discord.Command {
	return discord.NewCommand(
		"userinfo",
		"Muestra información de un usuario",
		"utils",
		userInfoHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a consultar (por defecto tú)",
			Required:    false,
		},
	)
}

// userInfoHandler handles the /userinfo command
func userInfoHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		user = ctx.User()
	}

	created, _ := discordgo.SnowflakeTimestamp(user.ID)

	accountType := "Usuario"
	if user.Bot {
		accountType = "Bot"
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("👤 %s", user.Username),
		Color: 0x3498db,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: user.AvatarURL("256"),
		},
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "🆔 ID",
				Value:  user.ID,
				Inline: true,
			},
			{
				Name:   "🏷️ Tipo",
				Value:  accountType,
				Inline: true,
			},
			{
				Name:   "📅 Cuenta creada",
				Value:  fmt.Sprintf("<t:%d:F>", created.Unix()),
				Inline: false,
			},
		},
	}

	return ctx.ReplyEmbed(embed)
}

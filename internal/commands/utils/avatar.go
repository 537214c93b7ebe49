package utils

import (
	"fmt"

	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createAvatarCommand creates the /avatar command
func createAvatarCommand() *discord.Command {
	return discord.NewCommand(
		"avatar",
		"Muestra el avatar de un usuario",
		"utils",
		avatarHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a consultar (por defecto tú)",
			Required:    false,
		},
	)
}

// avatarHandler handles the /avatar command
func avatarHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		user = ctx.User()
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🖼️ Avatar de %s", user.Username),
		Color: 0x3498db,
		Image: &discordgo.MessageEmbedImage{
			URL: user.AvatarURL("1024"),
		},
	}

	return ctx.ReplyEmbed(embed)
}

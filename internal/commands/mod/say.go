// Package mod - /mod say command
package mod

import (
	"fmt"

	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createSayCommand creates the /mod say subcommand
func createSayCommand() *discord.Command {
	return discord.NewCommand(
		"say",
		"Hace que el bot envíe un mensaje",
		"mod",
		sayHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "mensaje",
			Description: "Mensaje a enviar",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "canal",
			Description: "Canal destino (por defecto, el canal actual)",
			Required:    false,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildText,
			},
		},
	).WithUserPermissions(discordgo.PermissionManageMessages)
}

// sayHandler handles the /mod say command
func sayHandler(ctx *discord.CommandContext) error {
	message := ctx.GetStringOption("mensaje")
	if message == "" {
		return ctx.ReplyEphemeral("❌ Debes especificar un mensaje.")
	}

	targetID := ctx.Interaction.ChannelID
	if channel := ctx.GetChannelOption("canal"); channel != nil {
		targetID = channel.ID
	}

	if _, err := ctx.Session.ChannelMessageSend(targetID, message); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Error enviando mensaje: %v", err))
	}

	return ctx.ReplyEphemeral("✅ Mensaje enviado.")
}

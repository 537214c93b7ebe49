// Package mod - /mod purge command
package mod

import (
	"fmt"

	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
	"github.com/PancyStudios/PancyStatsGo/pkg/errors"
	"github.com/bwmarrin/discordgo"
)

// createPurgeCommand creates the /mod purge subcommand
func createPurgeCommand() *discord.Command {
	return discord.NewCommand(
		"purge",
		"Elimina los últimos mensajes del canal",
		"mod",
		purgeHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "cantidad",
			Description: "Cantidad de mensajes a eliminar (1-100)",
			Required:    true,
			MinValue:    func() *float64 { v := 1.0; return &v }(),
			MaxValue:    100,
		},
	).WithUserPermissions(discordgo.PermissionManageMessages).
		WithBotPermissions(discordgo.PermissionManageMessages)
}

// purgeHandler handles the /mod purge command
func purgeHandler(ctx *discord.CommandContext) error {
	amount := int(ctx.GetIntOption("cantidad"))

	go func() {
		defer errors.RecoverMiddleware()()

		ctx.Defer()

		messages, err := ctx.Session.ChannelMessages(ctx.Interaction.ChannelID, amount, "", "", "")
		if err != nil {
			ctx.EditReply(fmt.Sprintf("❌ Error obteniendo mensajes: %v", err))
			return
		}

		ids := make([]string, 0, len(messages))
		for _, msg := range messages {
			ids = append(ids, msg.ID)
		}

		if err := ctx.Session.ChannelMessagesBulkDelete(ctx.Interaction.ChannelID, ids); err != nil {
			ctx.EditReply(fmt.Sprintf("❌ Error eliminando mensajes: %v", err))
			return
		}

		ctx.EditReply(fmt.Sprintf("🧹 Se eliminaron **%d** mensajes.", len(ids)))
	}()

	return nil
}

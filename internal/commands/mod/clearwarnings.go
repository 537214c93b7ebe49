// Package mod - /mod clearwarnings command
package mod

import (
	"fmt"

	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
	"github.com/PancyStudios/PancyStatsGo/pkg/logger"
	"github.com/PancyStudios/PancyStatsGo/pkg/storage"
	"github.com/bwmarrin/discordgo"
)

// createClearWarningsCommand creates the /mod clearwarnings subcommand
func createClearWarningsCommand() *discord.Command {
	return discord.NewCommand(
		"clearwarnings",
		"Elimina todas las advertencias de un usuario",
		"mod",
		clearWarningsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a limpiar",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionAdministrator)
}

// clearWarningsHandler handles the /mod clearwarnings command
func clearWarningsHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	data := storage.Get()
	removed := data.Warnings.Delete(ctx.Interaction.GuildID, user.ID)
	if !removed {
		return ctx.ReplyEphemeral(fmt.Sprintf("ℹ️ **%s** no tiene advertencias en este servidor.", user.Username))
	}

	if err := data.Warnings.Flush(); err != nil {
		logger.Error(fmt.Sprintf("Error guardando advertencias: %v", err), "CMD-ClearWarnings")
		return ctx.ReplyEphemeral("❌ No se pudieron eliminar las advertencias.")
	}

	return ctx.Reply(fmt.Sprintf("🧹 Todas las advertencias de **%s** han sido eliminadas.", user.Username))
}

package discord

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyStatsGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// checkPermissions rechaza comandos privilegiados antes de que el handler
// llegue a ejecutarse. Los handlers confían en este filtro y nunca vuelven
// a comprobar permisos.
func (c *ExtendedClient) checkPermissions(ctx *CommandContext, cmd *Command) error {
	if cmd.UserPermissions == 0 {
		return nil
	}

	member := ctx.Member()
	if member == nil {
		// Privileged commands only make sense inside a guild
		ctx.ReplyEphemeral("❌ Este comando solo puede usarse dentro de un servidor.")
		return fmt.Errorf("privileged command outside a guild")
	}

	if member.Permissions&discordgo.PermissionAdministrator != 0 {
		return nil
	}

	if member.Permissions&cmd.UserPermissions != cmd.UserPermissions {
		embed := &discordgo.MessageEmbed{
			Title:       "🚫 Acceso Denegado",
			Description: "No tienes los permisos necesarios para usar este comando.",
			Color:       0xFF0000,
			Timestamp:   time.Now().Format(time.RFC3339),
		}
		ctx.ReplyEphemeralEmbed(embed)

		logger.Warn(fmt.Sprintf("Usuario sin permisos intentó usar '%s': %s", cmd.Name, ctx.User().ID), "Permissions")
		return fmt.Errorf("missing user permissions for %s", cmd.Name)
	}

	return nil
}

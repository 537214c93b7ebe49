// Package mod - /mod warn command
package mod

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
	"github.com/PancyStudios/PancyStatsGo/pkg/errors"
	"github.com/PancyStudios/PancyStatsGo/pkg/logger"
	"github.com/PancyStudios/PancyStatsGo/pkg/models"
	"github.com/PancyStudios/PancyStatsGo/pkg/mqtt"
	"github.com/PancyStudios/PancyStatsGo/pkg/storage"
	"github.com/PancyStudios/PancyStatsGo/pkg/web"
	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
)

// createWarnCommand creates the /mod warn subcommand
func createWarnCommand() *discord.Command {
	return discord.NewCommand(
		"warn",
		"Advierte a un usuario",
		"mod",
		warnHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a advertir",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón de la advertencia",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

// warnHandler handles the /mod warn command
func warnHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}
	if user.Bot {
		return ctx.ReplyEphemeral("❌ No puedes advertir a un bot.")
	}

	reason := ctx.GetStringOption("razon")
	if reason == "" {
		return ctx.ReplyEphemeral("❌ Debes especificar una razón.")
	}

	warn := models.Warn{
		Reason:    reason,
		Moderator: ctx.User().ID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		ID:        uuid.New().String(),
	}

	data := storage.Get()
	warns := data.Warnings.Update(ctx.Interaction.GuildID, user.ID,
		func() []models.Warn { return nil },
		func(list []models.Warn) []models.Warn { return append(list, warn) },
	)

	if err := data.Warnings.Flush(); err != nil {
		logger.Error(fmt.Sprintf("Error guardando advertencia: %v", err), "CMD-Warn")
		return ctx.ReplyEphemeral("❌ No se pudo guardar la advertencia.")
	}

	warnData := map[string]interface{}{
		"reason": reason,
		"total":  len(warns),
	}
	mqtt.Get().PublishEvent("warn", ctx.Interaction.GuildID, user.ID, warnData)
	if srv := web.Get(); srv != nil {
		srv.Live().Broadcast("warn", ctx.Interaction.GuildID, user.ID, warnData)
	}

	// Enviar MD al usuario advertido
	go func() {
		defer errors.RecoverMiddleware()()

		embedDM := &discordgo.MessageEmbed{
			Title: "⚠️ - Has recibido una advertencia",
			Color: 0xFFA500,
			Description: fmt.Sprintf(
				"⚒ - **Servidor:** %s (%s)\n"+
					"📝 - **Razón:** %s\n\n"+
					"🕒 - **Fecha:** <t:%d:F>",
				guildName(ctx), ctx.Interaction.GuildID, reason, time.Now().Unix(),
			),
			Footer: &discordgo.MessageEmbedFooter{
				Text:    "💫 - Developed by PancyStudios",
				IconURL: ctx.Client.Session.State.User.AvatarURL(""),
			},
		}

		userChannel, err := ctx.Session.UserChannelCreate(user.ID)
		if err == nil {
			_, _ = ctx.Session.ChannelMessageSendEmbed(userChannel.ID, embedDM)
		}
	}()

	return ctx.Reply(fmt.Sprintf("⚠️ **%s** ha sido advertido.\n**Razón:** %s\n**Moderador:** %s\n**Advertencias totales:** %d",
		user.Username,
		reason,
		ctx.User().Username,
		len(warns),
	))
}

// Package mod - /mod warnings command
package mod

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
	"github.com/PancyStudios/PancyStatsGo/pkg/storage"
	"github.com/bwmarrin/discordgo"
)

// maxListedWarns limits the embed to the most recent entries
const maxListedWarns = 5

// createWarningsCommand creates the /mod warnings subcommand
func createWarningsCommand() *discord.Command {
	return discord.NewCommand(
		"warnings",
		"Lista de advertencias de un usuario",
		"mod",
		warningsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a buscar",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

func warningsHandler(ctx *discord.CommandContext) error {
	targetUser := ctx.GetUserOption("usuario")
	if targetUser == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	warns, _ := storage.Get().Warnings.Get(ctx.Interaction.GuildID, targetUser.ID)

	if len(warns) == 0 {
		embedClear := &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("🔖 - Lista de advertencias de %s", targetUser.Username),
			Color:       0x00FF00,
			Description: fmt.Sprintf("No se han encontrado advertencias del usuario en este servidor\n\n> 💫 - **Cantidad de advertencias:** 0\n> 🕒 - **Fecha de consulta:** <t:%d>", time.Now().Unix()),
			Footer: &discordgo.MessageEmbedFooter{
				Text:    "💫 - Developed by PancyStudios",
				IconURL: guildIconURL(ctx),
			},
		}
		return ctx.ReplyEphemeralEmbed(embedClear)
	}

	// Mostrar solo las más recientes
	recent := warns
	if len(recent) > maxListedWarns {
		recent = recent[len(recent)-maxListedWarns:]
	}

	var description string
	for _, warn := range recent {
		when := warn.Timestamp
		if ts, err := time.Parse(time.RFC3339, warn.Timestamp); err == nil {
			when = fmt.Sprintf("<t:%d>", ts.Unix())
		}
		description += fmt.Sprintf("> **Advertencia:** %s \n> **Moderador:** <@%s> \n> **Fecha:** %s \n> **ID:** `%s` \n\n",
			warn.Reason, warn.Moderator, when, warn.ID)
	}

	description += fmt.Sprintf("> 💫 - **Cantidad de advertencias:** %d \n> 🕒 - **Fecha de consulta:** <t:%d>",
		len(warns), time.Now().Unix())

	embedList := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🔖 - Lista de advertencias de %s (%s)", targetUser.Username, targetUser.ID),
		Color:       0xFFA500,
		Description: description,
		Footer: &discordgo.MessageEmbedFooter{
			Text:    "💫 - Developed by PancyStudios",
			IconURL: guildIconURL(ctx),
		},
	}

	return ctx.ReplyEphemeralEmbed(embedList)
}

// Package stats - /rank and /levelleaderboard commands
package stats

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
	"github.com/PancyStudios/PancyStatsGo/pkg/leveling"
	"github.com/bwmarrin/discordgo"
)

// createRankCommand creates the /rank command
func createRankCommand() *discord.Command {
	return discord.NewCommand(
		"rank",
		"Muestra el nivel y la experiencia de un usuario",
		"stats",
		rankHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a consultar (por defecto tú)",
			Required:    false,
		},
	)
}

// rankHandler handles the /rank command
func rankHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		user = ctx.User()
	}

	record, ok := leveling.Get().Record(ctx.Interaction.GuildID, user.ID)
	if !ok {
		return ctx.ReplyEphemeral(fmt.Sprintf("📊 **%s** todavía no tiene experiencia en este servidor.", user.Username))
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📊 Rango de %s", user.Username),
		Color: 0xf1c40f,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: user.AvatarURL("128"),
		},
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "⭐ Nivel",
				Value:  fmt.Sprintf("%d", record.Level),
				Inline: true,
			},
			{
				Name:   "✨ Experiencia",
				Value:  fmt.Sprintf("%d / %d XP", record.XP, record.XPNeeded()),
				Inline: true,
			},
			{
				Name:   "💬 Mensajes",
				Value:  fmt.Sprintf("%d", record.Messages),
				Inline: true,
			},
		},
	}

	return ctx.ReplyEmbed(embed)
}

// createLevelLeaderboardCommand creates the /levelleaderboard command
func createLevelLeaderboardCommand() *discord.Command {
	return discord.NewCommand(
		"levelleaderboard",
		"Top 10 de niveles del servidor",
		"stats",
		levelLeaderboardHandler,
	)
}

// levelLeaderboardHandler handles the /levelleaderboard command
func levelLeaderboardHandler(ctx *discord.CommandContext) error {
	top := leveling.Get().Top(ctx.Interaction.GuildID, 10)

	if len(top) == 0 {
		return ctx.ReplyEphemeral("📊 Todavía no hay experiencia registrada en este servidor.")
	}

	var sb strings.Builder
	for i, entry := range top {
		sb.WriteString(fmt.Sprintf("**%d.** <@%s> — Nivel %d (%d XP)\n",
			i+1, entry.SubjectID, entry.Record.Level, entry.Record.XP))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🏆 Top Niveles",
		Description: sb.String(),
		Color:       0xf1c40f,
	}

	return ctx.ReplyEmbed(embed)
}

// Package stats - /mentions and /mentionleaderboard commands
package stats

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
	"github.com/PancyStudios/PancyStatsGo/pkg/storage"
	"github.com/bwmarrin/discordgo"
)

// createMentionsCommand creates the /mentions command
func createMentionsCommand() *discord.Command {
	return discord.NewCommand(
		"mentions",
		"Muestra cuántas veces ha sido mencionado un usuario",
		"stats",
		mentionsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a consultar (por defecto tú)",
			Required:    false,
		},
	)
}

// mentionsHandler handles the /mentions command
func mentionsHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		user = ctx.User()
	}

	count, _ := storage.Get().Mentions.Get(ctx.Interaction.GuildID, user.ID)

	embed := &discordgo.MessageEmbed{
		Title:       "📣 Menciones",
		Description: fmt.Sprintf("**%s** ha sido mencionado **%d** veces en este servidor.", user.Username, count),
		Color:       0x3498db,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: user.AvatarURL("128"),
		},
	}

	return ctx.ReplyEmbed(embed)
}

// createMentionLeaderboardCommand creates the /mentionleaderboard command
func createMentionLeaderboardCommand() *discord.Command {
	return discord.NewCommand(
		"mentionleaderboard",
		"Top 10 de usuarios más mencionados del servidor",
		"stats",
		mentionLeaderboardHandler,
	)
}

// mentionLeaderboardHandler handles the /mentionleaderboard command
func mentionLeaderboardHandler(ctx *discord.CommandContext) error {
	top := storage.Get().Mentions.TopN(ctx.Interaction.GuildID, 10, func(v int) int { return v })

	if len(top) == 0 {
		return ctx.ReplyEphemeral("📣 Todavía no hay menciones registradas en este servidor.")
	}

	var sb strings.Builder
	for i, entry := range top {
		sb.WriteString(fmt.Sprintf("**%d.** <@%s> — %d menciones\n", i+1, entry.SubjectID, entry.Record))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "📣 Top Menciones",
		Description: sb.String(),
		Color:       0x3498db,
	}

	return ctx.ReplyEmbed(embed)
}

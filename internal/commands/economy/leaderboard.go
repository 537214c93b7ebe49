// Package economy - /leaderboard command
package economy

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
	"github.com/PancyStudios/PancyStatsGo/pkg/economy"
	"github.com/bwmarrin/discordgo"
)

// createLeaderboardCommand creates the /leaderboard command
func createLeaderboardCommand() *discord.Command {
	return discord.NewCommand(
		"leaderboard",
		"Top 10 de usuarios más ricos del servidor",
		"economy",
		leaderboardHandler,
	)
}

// leaderboardHandler handles the /leaderboard command
func leaderboardHandler(ctx *discord.CommandContext) error {
	top := economy.Get().Top(ctx.Interaction.GuildID, 10)

	if len(top) == 0 {
		return ctx.ReplyEphemeral("💰 Todavía no hay cuentas en este servidor.")
	}

	var sb strings.Builder
	for i, entry := range top {
		sb.WriteString(fmt.Sprintf("**%d.** <@%s> — %d 🪙 (👛 %d | 🏦 %d)\n",
			i+1, entry.SubjectID, entry.Record.Total(), entry.Record.Balance, entry.Record.Bank))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "💰 Top Economía",
		Description: sb.String(),
		Color:       0x2ecc71,
	}

	return ctx.ReplyEmbed(embed)
}

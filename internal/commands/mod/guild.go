// Package mod - helpers shared by the moderation subcommands
package mod

import (
	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
)

// guildName resolves the guild's display name. The state cache can miss
// right after startup, so the ID doubles as the fallback.
func guildName(ctx *discord.CommandContext) string {
	if g := ctx.Guild(); g != nil {
		return g.Name
	}
	return ctx.Interaction.GuildID
}

// guildIconURL resolves the guild's icon, empty on a cache miss
func guildIconURL(ctx *discord.CommandContext) string {
	if g := ctx.Guild(); g != nil {
		return g.IconURL("")
	}
	return ""
}

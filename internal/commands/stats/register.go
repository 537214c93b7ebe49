// Package stats provides the mention and leveling query commands.
// Each command is in its own file for better organization
package stats

import (
	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
)

// RegisterStatsCommands registers the mention and level commands
func RegisterStatsCommands(client *discord.ExtendedClient) {
	client.CommandHandler.RegisterCommand(createMentionsCommand())
	client.CommandHandler.RegisterCommand(createMentionLeaderboardCommand())
	client.CommandHandler.RegisterCommand(createRankCommand())
	client.CommandHandler.RegisterCommand(createLevelLeaderboardCommand())
}

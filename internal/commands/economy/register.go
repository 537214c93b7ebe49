// Package economy provides the virtual currency commands.
// Each command is in its own file for better organization
package economy

import (
	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
)

// RegisterEconomyCommands registers all economy commands
func RegisterEconomyCommands(client *discord.ExtendedClient) {
	client.CommandHandler.RegisterCommand(createBalanceCommand())
	client.CommandHandler.RegisterCommand(createDailyCommand())
	client.CommandHandler.RegisterCommand(createWorkCommand())
	client.CommandHandler.RegisterCommand(createDepositCommand())
	client.CommandHandler.RegisterCommand(createWithdrawCommand())
	client.CommandHandler.RegisterCommand(createGiveCommand())
	client.CommandHandler.RegisterCommand(createRobCommand())
	client.CommandHandler.RegisterCommand(createLeaderboardCommand())
}

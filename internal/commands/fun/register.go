// Package fun provides entertainment commands.
// Each command is in its own file for better organization
package fun

import (
	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
)

// RegisterFunCommands registers all fun commands
func RegisterFunCommands(client *discord.ExtendedClient) {
	client.CommandHandler.RegisterCommand(createEightBallCommand())
	client.CommandHandler.RegisterCommand(createCoinflipCommand())
	client.CommandHandler.RegisterCommand(createDiceCommand())
	client.CommandHandler.RegisterCommand(createMemeCommand())
	client.CommandHandler.RegisterCommand(createHugCommand())
	client.CommandHandler.RegisterCommand(createSlapCommand())
	client.CommandHandler.RegisterCommand(createRPSCommand())
}

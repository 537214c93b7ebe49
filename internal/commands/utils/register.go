// Package utils provides general utility commands.
// Each command is in its own file for better organization
package utils

import (
	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
)

// RegisterUtilsCommands registers all utility commands
func RegisterUtilsCommands(client *discord.ExtendedClient) {
	client.CommandHandler.RegisterCommand(createPingCommand())
	client.CommandHandler.RegisterCommand(createStatusCommand())
	client.CommandHandler.RegisterCommand(createHelpCommand())
	client.CommandHandler.RegisterCommand(createServerInfoCommand())
	client.CommandHandler.RegisterCommand(createUserInfoCommand())
	client.CommandHandler.RegisterCommand(createAvatarCommand())
	client.CommandHandler.RegisterCommand(createPollCommand())
	client.CommandHandler.RegisterCommand(createRemindCommand())
}

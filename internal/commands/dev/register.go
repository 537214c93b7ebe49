package dev

import (
	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
)

// Register registers all dev commands as /dev subcommands (only in dev guild)
func Register(client *discord.ExtendedClient) {
	evalCmd := CreateEvalCommand()

	client.CommandHandler.BuildDevCommandGroup(
		"dev",
		"Comandos de desarrollo",
		evalCmd,
	)
}

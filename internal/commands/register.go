// Package commands provides a registry for organizing bot commands.
// Commands are organized in subdirectories by category (stats, economy, mod, etc.)
package commands

import (
	"github.com/PancyStudios/PancyStatsGo/internal/commands/dev"
	"github.com/PancyStudios/PancyStatsGo/internal/commands/economy"
	"github.com/PancyStudios/PancyStatsGo/internal/commands/fun"
	"github.com/PancyStudios/PancyStatsGo/internal/commands/mod"
	"github.com/PancyStudios/PancyStatsGo/internal/commands/stats"
	"github.com/PancyStudios/PancyStatsGo/internal/commands/utils"
	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
)

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient) {
	// Mention and leveling commands
	stats.RegisterStatsCommands(client)

	// Economy commands
	economy.RegisterEconomyCommands(client)

	// Moderation commands (/mod kick, /mod ban, /mod warn, ...)
	mod.RegisterModCommands(client)

	// Fun commands
	fun.RegisterFunCommands(client)

	// Utility commands
	utils.RegisterUtilsCommands(client)

	// Dev commands (/dev eval, only in the dev guild)
	dev.Register(client)
}

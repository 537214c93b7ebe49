// Package fun - /coinflip and /dice commands
package fun

import (
	"fmt"
	"math/rand"

	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createCoinflipCommand creates the /coinflip command
func createCoinflipCommand() *discord.Command {
	return discord.NewCommand(
		"coinflip",
		"Lanza una moneda al aire",
		"fun",
		coinflipHandler,
	)
}

// coinflipHandler handles the /coinflip command
func coinflipHandler(ctx *discord.CommandContext) error {
	result := "🪙 **Cara**"
	if rand.Intn(2) == 1 {
		result = "🪙 **Cruz**"
	}
	return ctx.Reply(result)
}

// createDiceCommand creates the /dice command
func createDiceCommand() *discord.Command {
	return discord.NewCommand(
		"dice",
		"Lanza un dado",
		"fun",
		diceHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "caras",
			Description: "Número de caras del dado (por defecto 6)",
			Required:    false,
			MinValue:    func() *float64 { v := 2.0; return &v }(),
			MaxValue:    1000,
		},
	)
}

// diceHandler handles the /dice command
func diceHandler(ctx *discord.CommandContext) error {
	sides := int(ctx.GetIntOption("caras"))
	if sides < 2 {
		sides = 6
	}

	roll := rand.Intn(sides) + 1
	return ctx.Reply(fmt.Sprintf("🎲 Sacaste un **%d** (dado de %d caras).", roll, sides))
}

// Package fun - /rps command
package fun

import (
	"fmt"
	"math/rand"

	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

var rpsEmoji = map[string]string{
	"piedra":  "🪨",
	"papel":   "📄",
	"tijeras": "✂️",
}

// beats maps each choice to the choice it defeats
var beats = map[string]string{
	"piedra":  "tijeras",
	"papel":   "piedra",
	"tijeras": "papel",
}

// createRPSCommand creates the /rps command
func createRPSCommand() *discord.Command {
	return discord.NewCommand(
		"rps",
		"Piedra, papel o tijeras contra el bot",
		"fun",
		rpsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "eleccion",
			Description: "Tu jugada",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "Piedra 🪨", Value: "piedra"},
				{Name: "Papel 📄", Value: "papel"},
				{Name: "Tijeras ✂️", Value: "tijeras"},
			},
		},
	)
}

// rpsHandler handles the /rps command
func rpsHandler(ctx *discord.CommandContext) error {
	player := ctx.GetStringOption("eleccion")
	if _, ok := beats[player]; !ok {
		return ctx.ReplyEphemeral("❌ Jugada inválida.")
	}

	choices := []string{"piedra", "papel", "tijeras"}
	bot := choices[rand.Intn(len(choices))]

	var outcome string
	switch {
	case player == bot:
		outcome = "🤝 ¡Empate!"
	case beats[player] == bot:
		outcome = "🎉 ¡Ganaste!"
	default:
		outcome = "😈 ¡Gané yo!"
	}

	return ctx.Reply(fmt.Sprintf("Tú: %s %s | Yo: %s %s\n%s",
		rpsEmoji[player], player, rpsEmoji[bot], bot, outcome))
}

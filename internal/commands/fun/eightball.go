// Package fun - /8ball command
package fun

import (
	"fmt"
	"math/rand"

	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

var eightBallAnswers = []string{
	"Sí, definitivamente.",
	"Sin duda alguna.",
	"Probablemente sí.",
	"Las señales apuntan a que sí.",
	"Pregunta de nuevo más tarde.",
	"No puedo predecirlo ahora.",
	"Mejor no te lo digo ahora.",
	"No cuentes con ello.",
	"Mi respuesta es no.",
	"Muy dudoso.",
}

// createEightBallCommand creates the /8ball command
func createEightBallCommand() *discord.Command {
	return discord.NewCommand(
		"8ball",
		"Pregunta a la bola mágica",
		"fun",
		eightBallHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "pregunta",
			Description: "Tu pregunta para la bola mágica",
			Required:    true,
		},
	)
}

// eightBallHandler handles the /8ball command
func eightBallHandler(ctx *discord.CommandContext) error {
	question := ctx.GetStringOption("pregunta")
	answer := eightBallAnswers[rand.Intn(len(eightBallAnswers))]

	embed := &discordgo.MessageEmbed{
		Title:       "🎱 La bola mágica dice...",
		Description: fmt.Sprintf("**Pregunta:** %s\n**Respuesta:** %s", question, answer),
		Color:       0x9b59b6,
	}

	return ctx.ReplyEmbed(embed)
}

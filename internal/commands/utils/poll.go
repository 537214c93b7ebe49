package utils

import (
	"fmt"

	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
	"github.com/PancyStudios/PancyStatsGo/pkg/errors"
	"github.com/PancyStudios/PancyStatsGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

var pollNumbers = []string{"1️⃣", "2️⃣", "3️⃣", "4️⃣"}

// createPollCommand creates the /poll command
func createPollCommand() *discord.Command {
	opts := []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "pregunta",
			Description: "Pregunta de la encuesta",
			Required:    true,
		},
	}

	for i := 1; i <= 4; i++ {
		opts = append(opts, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        fmt.Sprintf("opcion%d", i),
			Description: fmt.Sprintf("Opción %d", i),
			Required:    i <= 2,
		})
	}

	return discord.NewCommand(
		"poll",
		"Crea una encuesta con hasta 4 opciones",
		"utils",
		pollHandler,
	).WithOptions(opts...)
}

// pollHandler handles the /poll command
func pollHandler(ctx *discord.CommandContext) error {
	question := ctx.GetStringOption("pregunta")

	var options []string
	for i := 1; i <= 4; i++ {
		if opt := ctx.GetStringOption(fmt.Sprintf("opcion%d", i)); opt != "" {
			options = append(options, opt)
		}
	}

	if len(options) < 2 {
		return ctx.ReplyEphemeral("❌ Una encuesta necesita al menos 2 opciones.")
	}

	var description string
	for i, opt := range options {
		description += fmt.Sprintf("%s %s\n", pollNumbers[i], opt)
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📊 %s", question),
		Description: description,
		Color:       0x3498db,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Encuesta de %s", ctx.User().Username),
		},
	}

	if err := ctx.ReplyEmbed(embed); err != nil {
		return err
	}

	// Add the numbered reactions to the poll message
	go func() {
		defer errors.RecoverMiddleware()()

		msg, err := ctx.Session.InteractionResponse(ctx.Interaction.Interaction)
		if err != nil {
			logger.Error(fmt.Sprintf("Error obteniendo mensaje de encuesta: %v", err), "CMD-Poll")
			return
		}

		for i := range options {
			if err := ctx.Session.MessageReactionAdd(msg.ChannelID, msg.ID, pollNumbers[i]); err != nil {
				logger.Debug(fmt.Sprintf("Error agregando reacción: %v", err), "CMD-Poll")
			}
		}
	}()

	return nil
}

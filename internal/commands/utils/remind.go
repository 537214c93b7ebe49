package utils

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
	"github.com/PancyStudios/PancyStatsGo/pkg/errors"
	"github.com/PancyStudios/PancyStatsGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createRemindCommand creates the /remind command
func createRemindCommand() *discord.Command {
	return discord.NewCommand(
		"remind",
		"Te envía un recordatorio por mensaje directo",
		"utils",
		remindHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "minutos",
			Description: "Minutos hasta el recordatorio",
			Required:    true,
			MinValue:    func() *float64 { v := 1.0; return &v }(),
			MaxValue:    1440,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "mensaje",
			Description: "Qué quieres que te recuerde",
			Required:    true,
		},
	)
}

// remindHandler handles the /remind command.
// The reminder lives in a goroutine; it does not survive a restart.
func remindHandler(ctx *discord.CommandContext) error {
	minutes := ctx.GetIntOption("minutos")
	message := ctx.GetStringOption("mensaje")
	userID := ctx.User().ID

	go func() {
		defer errors.RecoverMiddleware()()

		time.Sleep(time.Duration(minutes) * time.Minute)

		channel, err := ctx.Session.UserChannelCreate(userID)
		if err != nil {
			logger.Debug(fmt.Sprintf("No se pudo abrir MD para recordatorio: %v", err), "CMD-Remind")
			return
		}

		embed := &discordgo.MessageEmbed{
			Title:       "⏰ ¡Recordatorio!",
			Description: message,
			Color:       0xf1c40f,
		}

		if _, err := ctx.Session.ChannelMessageSendEmbed(channel.ID, embed); err != nil {
			logger.Debug(fmt.Sprintf("No se pudo enviar recordatorio: %v", err), "CMD-Remind")
		}
	}()

	return ctx.ReplyEphemeral(fmt.Sprintf("⏰ Listo, te lo recordaré en **%d** minutos.", minutes))
}

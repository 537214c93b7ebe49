// Package economy - /daily and /work commands
package economy

import (
	"errors"
	"fmt"
	"time"

	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
	"github.com/PancyStudios/PancyStatsGo/pkg/economy"
)

// createDailyCommand creates the /daily command
func createDailyCommand() *discord.Command {
	return discord.NewCommand(
		"daily",
		"Reclama tu recompensa diaria",
		"economy",
		dailyHandler,
	)
}

// dailyHandler handles the /daily command
func dailyHandler(ctx *discord.CommandContext) error {
	svc := economy.Get()

	reward, err := svc.Daily(ctx.Interaction.GuildID, ctx.User().ID)
	if err != nil {
		var cd *economy.CooldownError
		if errors.As(err, &cd) {
			return ctx.ReplyEphemeral(fmt.Sprintf("⏳ Ya reclamaste tu recompensa diaria. Vuelve en **%s**.",
				cd.Remaining.Round(time.Second)))
		}
		return ctx.ReplyEphemeral("❌ No se pudo reclamar la recompensa diaria.")
	}

	if err := svc.Flush(); err != nil {
		return ctx.ReplyEphemeral("❌ Error guardando la cuenta.")
	}

	return ctx.Reply(fmt.Sprintf("🎁 ¡Reclamaste tu recompensa diaria de **%d** 🪙!", reward))
}

// createWorkCommand creates the /work command
func createWorkCommand() *discord.Command {
	return discord.NewCommand(
		"work",
		"Trabaja y gana monedas",
		"economy",
		workHandler,
	)
}

// workHandler handles the /work command
func workHandler(ctx *discord.CommandContext) error {
	svc := economy.Get()

	job, earnings := svc.Work(ctx.Interaction.GuildID, ctx.User().ID)
	if err := svc.Flush(); err != nil {
		return ctx.ReplyEphemeral("❌ Error guardando la cuenta.")
	}

	return ctx.Reply(fmt.Sprintf("💼 Trabajaste como **%s** y ganaste **%d** 🪙.", job, earnings))
}

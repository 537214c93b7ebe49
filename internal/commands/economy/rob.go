// Package economy - /rob command
package economy

import (
	"errors"
	"fmt"

	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
	"github.com/PancyStudios/PancyStatsGo/pkg/economy"
	"github.com/bwmarrin/discordgo"
)

// createRobCommand creates the /rob command
func createRobCommand() *discord.Command {
	return discord.NewCommand(
		"rob",
		"Intenta robar monedas de la cartera de otro usuario",
		"economy",
		robHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Víctima del robo",
			Required:    true,
		},
	)
}

// robHandler handles the /rob command
func robHandler(ctx *discord.CommandContext) error {
	victim := ctx.GetUserOption("usuario")
	if victim == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}
	if victim.ID == ctx.User().ID {
		return ctx.ReplyEphemeral("❌ No puedes robarte a ti mismo.")
	}
	if victim.Bot {
		return ctx.ReplyEphemeral("❌ Los bots no tienen bolsillos.")
	}

	svc := economy.Get()

	result, err := svc.Rob(ctx.Interaction.GuildID, ctx.User().ID, victim.ID)
	if err != nil {
		if errors.Is(err, economy.ErrVictimTooPoor) {
			return ctx.ReplyEphemeral(fmt.Sprintf("❌ **%s** no tiene suficiente dinero para que valga la pena.", victim.Username))
		}
		return ctx.ReplyEphemeral("❌ El robo no pudo completarse.")
	}

	if err := svc.Flush(); err != nil {
		return ctx.ReplyEphemeral("❌ Error guardando las cuentas.")
	}

	if result.Success {
		return ctx.Reply(fmt.Sprintf("🦹 ¡<@%s> le robó **%d** 🪙 a <@%s>!",
			ctx.User().ID, result.Amount, victim.ID))
	}

	return ctx.Reply(fmt.Sprintf("🚔 ¡<@%s> fue atrapado intentando robar a <@%s> y pagó una multa de **%d** 🪙!",
		ctx.User().ID, victim.ID, result.Amount))
}

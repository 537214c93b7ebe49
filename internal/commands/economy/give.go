// Package economy - /give command
package economy

import (
	"errors"
	"fmt"

	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
	"github.com/PancyStudios/PancyStatsGo/pkg/economy"
	"github.com/bwmarrin/discordgo"
)

// createGiveCommand creates the /give command
func createGiveCommand() *discord.Command {
	return discord.NewCommand(
		"give",
		"Transfiere monedas de tu cartera a otro usuario",
		"economy",
		giveHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario que recibe las monedas",
			Required:    true,
		},
		amountOption("Cantidad a transferir"),
	)
}

// giveHandler handles the /give command
func giveHandler(ctx *discord.CommandContext) error {
	target := ctx.GetUserOption("usuario")
	if target == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}
	if target.Bot {
		return ctx.ReplyEphemeral("❌ Los bots no tienen bolsillos.")
	}

	amount := int(ctx.GetIntOption("cantidad"))
	svc := economy.Get()

	err := svc.Give(ctx.Interaction.GuildID, ctx.User().ID, target.ID, amount)
	if err != nil {
		if errors.Is(err, economy.ErrInsufficientFunds) {
			return ctx.ReplyEphemeral("❌ No tienes suficientes monedas en la cartera.")
		}
		return ctx.ReplyEphemeral("❌ Cantidad inválida.")
	}

	if err := svc.Flush(); err != nil {
		return ctx.ReplyEphemeral("❌ Error guardando las cuentas.")
	}

	return ctx.Reply(fmt.Sprintf("💝 <@%s> le dio **%d** 🪙 a <@%s>.",
		ctx.User().ID, amount, target.ID))
}

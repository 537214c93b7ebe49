// Package economy - /deposit and /withdraw commands
package economy

import (
	"errors"
	"fmt"

	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
	"github.com/PancyStudios/PancyStatsGo/pkg/economy"
	"github.com/bwmarrin/discordgo"
)

func amountOption(description string) *discordgo.ApplicationCommandOption {
	minAmount := float64(1)
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "cantidad",
		Description: description,
		Required:    true,
		MinValue:    &minAmount,
	}
}

// createDepositCommand creates the /deposit command
func createDepositCommand() *discord.Command {
	return discord.NewCommand(
		"deposit",
		"Deposita monedas de tu cartera al banco",
		"economy",
		depositHandler,
	).WithOptions(amountOption("Cantidad a depositar"))
}

// depositHandler handles the /deposit command
func depositHandler(ctx *discord.CommandContext) error {
	amount := int(ctx.GetIntOption("cantidad"))
	svc := economy.Get()

	account, err := svc.Deposit(ctx.Interaction.GuildID, ctx.User().ID, amount)
	if err != nil {
		if errors.Is(err, economy.ErrInsufficientFunds) {
			return ctx.ReplyEphemeral(fmt.Sprintf("❌ No tienes suficiente en la cartera (tienes %d 🪙).", account.Balance))
		}
		return ctx.ReplyEphemeral("❌ Cantidad inválida.")
	}

	if err := svc.Flush(); err != nil {
		return ctx.ReplyEphemeral("❌ Error guardando la cuenta.")
	}

	return ctx.Reply(fmt.Sprintf("🏦 Depositaste **%d** 🪙.\n👛 Cartera: %d | 🏦 Banco: %d",
		amount, account.Balance, account.Bank))
}

// createWithdrawCommand creates the /withdraw command
func createWithdrawCommand() *discord.Command {
	return discord.NewCommand(
		"withdraw",
		"Retira monedas del banco a tu cartera",
		"economy",
		withdrawHandler,
	).WithOptions(amountOption("Cantidad a retirar"))
}

// withdrawHandler handles the /withdraw command
func withdrawHandler(ctx *discord.CommandContext) error {
	amount := int(ctx.GetIntOption("cantidad"))
	svc := economy.Get()

	account, err := svc.Withdraw(ctx.Interaction.GuildID, ctx.User().ID, amount)
	if err != nil {
		if errors.Is(err, economy.ErrInsufficientFunds) {
			return ctx.ReplyEphemeral(fmt.Sprintf("❌ No tienes suficiente en el banco (tienes %d 🪙).", account.Bank))
		}
		return ctx.ReplyEphemeral("❌ Cantidad inválida.")
	}

	if err := svc.Flush(); err != nil {
		return ctx.ReplyEphemeral("❌ Error guardando la cuenta.")
	}

	return ctx.Reply(fmt.Sprintf("💸 Retiraste **%d** 🪙.\n👛 Cartera: %d | 🏦 Banco: %d",
		amount, account.Balance, account.Bank))
}

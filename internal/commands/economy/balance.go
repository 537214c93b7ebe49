// Package economy - /balance command
package economy

import (
	"fmt"

	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
	"github.com/PancyStudios/PancyStatsGo/pkg/economy"
	"github.com/bwmarrin/discordgo"
)

// createBalanceCommand creates the /balance command
func createBalanceCommand() *discord.Command {
	return discord.NewCommand(
		"balance",
		"Muestra la cartera y el banco de un usuario",
		"economy",
		balanceHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a consultar (por defecto tú)",
			Required:    false,
		},
	)
}

// balanceHandler handles the /balance command
func balanceHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		user = ctx.User()
	}

	account := economy.Get().Account(ctx.Interaction.GuildID, user.ID)
	if err := economy.Get().Flush(); err != nil {
		return ctx.ReplyEphemeral("❌ Error guardando la cuenta.")
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("💰 Cuenta de %s", user.Username),
		Color: 0x2ecc71,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: user.AvatarURL("128"),
		},
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "👛 Cartera",
				Value:  fmt.Sprintf("%d 🪙", account.Balance),
				Inline: true,
			},
			{
				Name:   "🏦 Banco",
				Value:  fmt.Sprintf("%d 🪙", account.Bank),
				Inline: true,
			},
			{
				Name:   "💎 Total",
				Value:  fmt.Sprintf("%d 🪙", account.Total()),
				Inline: true,
			},
		},
	}

	return ctx.ReplyEmbed(embed)
}

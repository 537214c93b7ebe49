// Package fun - /hug and /slap commands
package fun

import (
	"fmt"

	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

func userOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        "usuario",
		Description: description,
		Required:    true,
	}
}

// createHugCommand creates the /hug command
func createHugCommand() *discord.Command {
	return discord.NewCommand(
		"hug",
		"Abraza a otro usuario",
		"fun",
		hugHandler,
	).WithOptions(userOption("Usuario a abrazar"))
}

// hugHandler handles the /hug command
func hugHandler(ctx *discord.CommandContext) error {
	target := ctx.GetUserOption("usuario")
	if target == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	return ctx.Reply(fmt.Sprintf("🤗 <@%s> le dio un abrazo enorme a <@%s>.", ctx.User().ID, target.ID))
}

// createSlapCommand creates the /slap command
func createSlapCommand() *discord.Command {
	return discord.NewCommand(
		"slap",
		"Dale una bofetada a otro usuario",
		"fun",
		slapHandler,
	).WithOptions(userOption("Usuario a abofetear"))
}

// slapHandler handles the /slap command
func slapHandler(ctx *discord.CommandContext) error {
	target := ctx.GetUserOption("usuario")
	if target == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	return ctx.Reply(fmt.Sprintf("👋 <@%s> le dio una bofetada a <@%s>. ¡Auch!", ctx.User().ID, target.ID))
}

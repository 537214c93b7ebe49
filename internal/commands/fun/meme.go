// Package fun - /meme command
package fun

import (
	"fmt"
	"net/http"
	"time"

	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
	"github.com/PancyStudios/PancyStatsGo/pkg/errors"
	json "github.com/goccy/go-json"
	"github.com/bwmarrin/discordgo"
)

const memeAPIURL = "https://meme-api.com/gimme"

var memeClient = &http.Client{Timeout: 10 * time.Second}

type memeResponse struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Subreddit string `json:"subreddit"`
	Author    string `json:"author"`
}

// createMemeCommand creates the /meme command
func createMemeCommand() *discord.Command {
	return discord.NewCommand(
		"meme",
		"Muestra un meme aleatorio",
		"fun",
		memeHandler,
	)
}

// memeHandler handles the /meme command
func memeHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		ctx.Defer()

		resp, err := memeClient.Get(memeAPIURL)
		if err != nil {
			ctx.EditReply("❌ No se pudo obtener un meme, intenta de nuevo.")
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			ctx.EditReply(fmt.Sprintf("❌ La API de memes respondió con estado %d.", resp.StatusCode))
			return
		}

		var meme memeResponse
		if err := json.NewDecoder(resp.Body).Decode(&meme); err != nil {
			ctx.EditReply("❌ No se pudo leer la respuesta de la API de memes.")
			return
		}

		embed := &discordgo.MessageEmbed{
			Title: meme.Title,
			Color: 0xe67e22,
			Image: &discordgo.MessageEmbedImage{
				URL: meme.URL,
			},
			Footer: &discordgo.MessageEmbedFooter{
				Text: fmt.Sprintf("r/%s | u/%s", meme.Subreddit, meme.Author),
			},
		}

		ctx.EditReplyEmbed(embed)
	}()

	return nil
}

// Package events provides event handlers for message events.
// This is where the mention and XP trackers live: every guild message from
// a human feeds the ledgers and is persisted before the handler returns.
package events

import (
	"fmt"

	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
	"github.com/PancyStudios/PancyStatsGo/pkg/leveling"
	"github.com/PancyStudios/PancyStatsGo/pkg/logger"
	"github.com/PancyStudios/PancyStatsGo/pkg/mqtt"
	"github.com/PancyStudios/PancyStatsGo/pkg/storage"
	"github.com/PancyStudios/PancyStatsGo/pkg/web"
	"github.com/bwmarrin/discordgo"
)

// RegisterMessageEvents registers all message-related event handlers
func RegisterMessageEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onMessageCreate)
}

// onMessageCreate is called when a new message is created
func onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignorar mensajes de bots y mensajes directos
	if m.Author.Bot || m.GuildID == "" {
		return
	}

	trackMentions(m)
	trackLeveling(s, m)
}

// trackMentions credits one mention to every user mentioned in the message
func trackMentions(m *discordgo.MessageCreate) {
	if len(m.Mentions) == 0 {
		return
	}

	data := storage.Get()
	for _, mentioned := range m.Mentions {
		data.Mentions.Update(m.GuildID, mentioned.ID,
			func() int { return 0 },
			func(count int) int { return count + 1 },
		)
	}

	if err := data.Mentions.Flush(); err != nil {
		logger.Error(fmt.Sprintf("Error guardando menciones: %v", err), "Message")
	}
}

// trackLeveling grants XP for the message and announces promotions
func trackLeveling(s *discordgo.Session, m *discordgo.MessageCreate) {
	svc := leveling.Get()

	result := svc.RecordMessage(m.GuildID, m.Author.ID)
	if err := svc.Flush(); err != nil {
		logger.Error(fmt.Sprintf("Error guardando niveles: %v", err), "Message")
	}

	if !result.LeveledUp {
		return
	}

	logger.Info(fmt.Sprintf("⭐ %s subió al nivel %d en %s",
		m.Author.Username, result.Record.Level, m.GuildID), "Leveling")

	levelData := map[string]interface{}{
		"level":    result.Record.Level,
		"messages": result.Record.Messages,
	}
	mqtt.Get().PublishEvent("level_up", m.GuildID, m.Author.ID, levelData)
	if srv := web.Get(); srv != nil {
		srv.Live().Broadcast("level_up", m.GuildID, m.Author.ID, levelData)
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🎉 ¡Subiste de nivel!",
		Description: fmt.Sprintf("¡Felicidades <@%s>! Ahora eres **nivel %d**.", m.Author.ID, result.Record.Level),
		Color:       0xf1c40f,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: m.Author.AvatarURL("128"),
		},
	}

	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
		logger.Error(fmt.Sprintf("Error anunciando subida de nivel: %v", err), "Message")
	}
}

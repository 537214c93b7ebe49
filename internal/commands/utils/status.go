package utils

import (
	"fmt"
	"runtime"
	"time"

	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
	"github.com/PancyStudios/PancyStatsGo/pkg/mqtt"
	"github.com/PancyStudios/PancyStatsGo/pkg/storage"
	"github.com/bwmarrin/discordgo"
)

// createStatusCommand creates the /status command
func createStatusCommand() *discord.Command {
	return discord.NewCommand(
		"status",
		"Muestra el estado interno del bot",
		"utils",
		statusHandler,
	)
}

// statusHandler handles the /status command
func statusHandler(ctx *discord.CommandContext) error {
	uptime := time.Since(ctx.Client.StartTime).Round(time.Second)

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	mqttStatus := "🔴 Desconectado"
	if mc := mqtt.Get(); mc != nil && mc.IsConnected() {
		mqttStatus = "🟢 Conectado"
	}

	storageStatus := "🔴 Sin inicializar"
	if storage.Get() != nil {
		storageStatus = "🟢 Operativo"
	}

	embed := &discordgo.MessageEmbed{
		Title: "📡 Estado de PancyStats",
		Color: 0x3498db,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "⏱️ Uptime",
				Value:  uptime.String(),
				Inline: true,
			},
			{
				Name:   "🌐 Servidores",
				Value:  fmt.Sprintf("%d", ctx.Client.GuildCount()),
				Inline: true,
			},
			{
				Name:   "🏓 Latencia",
				Value:  fmt.Sprintf("%dms", ctx.Client.Session.HeartbeatLatency().Milliseconds()),
				Inline: true,
			},
			{
				Name:   "💾 Almacenamiento",
				Value:  storageStatus,
				Inline: true,
			},
			{
				Name:   "📨 MQTT",
				Value:  mqttStatus,
				Inline: true,
			},
			{
				Name:   "🧠 Memoria",
				Value:  fmt.Sprintf("%.1f MB", float64(memStats.Alloc)/1024/1024),
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "💫 Developed by PancyStudio | PancyStats Go",
		},
	}

	return ctx.ReplyEmbed(embed)
}

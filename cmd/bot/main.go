// Package main is the entry point for the PancyStats Go application.
// It initializes all systems and starts the Discord bot.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PancyStudios/PancyStatsGo/internal/commands"
	"github.com/PancyStudios/PancyStatsGo/internal/events"
	"github.com/PancyStudios/PancyStatsGo/pkg/config"
	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
	"github.com/PancyStudios/PancyStatsGo/pkg/economy"
	"github.com/PancyStudios/PancyStatsGo/pkg/errors"
	"github.com/PancyStudios/PancyStatsGo/pkg/leveling"
	"github.com/PancyStudios/PancyStatsGo/pkg/logger"
	"github.com/PancyStudios/PancyStatsGo/pkg/mqtt"
	"github.com/PancyStudios/PancyStatsGo/pkg/storage"
	"github.com/PancyStudios/PancyStatsGo/pkg/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Iniciando PancyStats Go...", "Main")
	logger.Info(fmt.Sprintf("Directorio de trabajo: %s", getCurrentDir()), "Main")

	// Initialize error handler
	var discordClient *discord.ExtendedClient
	errors.Init(cfg.ErrorWebhook, func() {
		if data := storage.Get(); data != nil {
			if err := data.FlushAll(); err != nil {
				logger.Error(fmt.Sprintf("Error guardando datos en apagado de emergencia: %v", err), "Main")
			}
		}
		if discordClient != nil {
			if err := discordClient.Stop(); err != nil {
				return
			}
		}
	})

	// Initialize the ledger storage
	data, err := storage.Init(cfg.DataDir)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error inicializando almacenamiento: %v", err), "Main")
		os.Exit(1)
	}
	defer func() {
		if err := data.FlushAll(); err != nil {
			logger.Error(fmt.Sprintf("Error guardando datos al salir: %v", err), "Main")
		}
	}()

	// Initialize domain services over the ledgers
	leveling.Init(data.Levels)
	economy.Init(data.Economy, cfg.DailyCooldown)

	// Initialize MQTT
	mqttClientID := "pancystats"
	if !cfg.IsProd() {
		mqttClientID = "pancystats_canary"
	}

	mqttClient := mqtt.Init(
		cfg.MQTTHost,
		cfg.MQTTPort,
		cfg.MQTTUser,
		cfg.MQTTPassword,
		mqttClientID,
	)
	defer mqttClient.Destroy()

	// Answer status requests over the broker
	mqttClient.On("status", func(payload map[string]interface{}) (interface{}, error) {
		client := discord.Get()
		status := map[string]interface{}{
			"online": client != nil && client.IsReady(),
		}
		if client != nil {
			status["guilds"] = client.GuildCount()
			status["uptime"] = time.Since(client.StartTime).Round(time.Second).String()
		}
		return status, nil
	})

	// Initialize web server
	webServer := web.Init(cfg.LogsWebServerHook)
	web.SetupAPIRoutes(webServer)
	webServer.StartAsync(cfg.Port)

	// Initialize Discord client
	discordClient, err = discord.Init(cfg.BotToken)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	// Register commands using the commands package
	commands.RegisterAll(discordClient)

	// Register events using the events package
	events.RegisterAll(discordClient)

	// Start the bot
	if err := discordClient.Start(); err != nil {
		logger.Critical(fmt.Sprintf("Error starting Discord client: %v", err), "Main")
		os.Exit(1)
	}
	defer func(discordClient *discord.ExtendedClient) {
		if err := discordClient.Stop(); err != nil {
			return
		}
	}(discordClient)

	logger.Success("PancyStats Go iniciado correctamente!", "Main")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Apagando PancyStats Go...", "Main")
}

// getCurrentDir returns the current working directory
func getCurrentDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "unknown"
	}
	return dir
}

// Package web provides API routes for the web server.
package web

import (
	"net/http"
	"strconv"

	"github.com/PancyStudios/PancyStatsGo/pkg/discord"
	"github.com/PancyStudios/PancyStatsGo/pkg/models"
	"github.com/PancyStudios/PancyStatsGo/pkg/storage"

	"github.com/gin-gonic/gin"
)

// SetupAPIRoutes sets up the API routes
func SetupAPIRoutes(s *Server) {
	api := s.Group("/api")
	{
		api.GET("/status", statusHandler)
		api.GET("/health", healthHandler)
		api.GET("/bot", botInfoHandler)
		api.GET("/live", s.live.ServeWS)
		api.GET("/guilds/:id/leaderboard", leaderboardHandler)
		api.GET("/guilds/:id/users/:uid", userStatsHandler)
	}
}

// statusHandler returns the bot and storage status
func statusHandler(c *gin.Context) {
	data := storage.Get()
	client := discord.Get()

	botOnline := false
	if client != nil {
		botOnline = client.IsReady()
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"storage": gin.H{
			"isOnline": data != nil,
		},
		"bot": gin.H{
			"isOnline": botOnline,
		},
	})
}

// healthHandler returns a simple health check response
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "PancyStats Go is running",
	})
}

// botInfoHandler returns information about the bot
func botInfoHandler(c *gin.Context) {
	client := discord.Get()

	if client == nil || !client.IsReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Bot Offline",
			"message": "El bot no está disponible en este momento.",
		})
		return
	}

	user := client.Session.State.User

	c.JSON(http.StatusOK, gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"discriminator": user.Discriminator,
		"avatar":        user.Avatar,
		"guilds":        client.GuildCount(),
		"isReady":       client.IsReady(),
	})
}

// leaderboardHandler returns the top users of a guild for a given ledger.
// The "type" query parameter selects mentions, levels or economy.
func leaderboardHandler(c *gin.Context) {
	data := storage.Get()
	if data == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage Offline"})
		return
	}

	guildID := c.Param("id")
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 50 {
			limit = n
		}
	}

	var entries []gin.H
	switch c.DefaultQuery("type", "mentions") {
	case "mentions":
		for _, e := range data.Mentions.TopN(guildID, limit, func(v int) int { return v }) {
			entries = append(entries, gin.H{"userId": e.SubjectID, "mentions": e.Record})
		}
	case "levels":
		key := func(r models.LevelRecord) int { return r.Level*1_000_000 + r.XP }
		for _, e := range data.Levels.TopN(guildID, limit, key) {
			entries = append(entries, gin.H{
				"userId":   e.SubjectID,
				"level":    e.Record.Level,
				"xp":       e.Record.XP,
				"messages": e.Record.Messages,
			})
		}
	case "economy":
		key := func(a models.EconomyAccount) int { return a.Total() }
		for _, e := range data.Economy.TopN(guildID, limit, key) {
			entries = append(entries, gin.H{
				"userId":  e.SubjectID,
				"balance": e.Record.Balance,
				"bank":    e.Record.Bank,
				"total":   e.Record.Total(),
			})
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": "El tipo de leaderboard debe ser mentions, levels o economy.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"guildId": guildID,
		"entries": entries,
	})
}

// userStatsHandler returns the aggregated stats of a single user in a guild
func userStatsHandler(c *gin.Context) {
	data := storage.Get()
	if data == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage Offline"})
		return
	}

	guildID := c.Param("id")
	userID := c.Param("uid")

	mentions, _ := data.Mentions.Get(guildID, userID)
	level, hasLevel := data.Levels.Get(guildID, userID)
	account, hasAccount := data.Economy.Get(guildID, userID)
	warns, _ := data.Warnings.Get(guildID, userID)

	if !hasLevel {
		level = models.NewLevelRecord()
	}
	if !hasAccount {
		account = models.NewEconomyAccount()
	}

	c.JSON(http.StatusOK, gin.H{
		"guildId":  guildID,
		"userId":   userID,
		"mentions": mentions,
		"level": gin.H{
			"level":    level.Level,
			"xp":       level.XP,
			"messages": level.Messages,
		},
		"economy": gin.H{
			"balance": account.Balance,
			"bank":    account.Bank,
		},
		"warnings": len(warns),
	})
}

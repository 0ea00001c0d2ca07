package webserver

import (
	"github.com/frostworks/snowbot/src/api/config"
	"github.com/frostworks/snowbot/src/data"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func attachRoutes(r *gin.Engine, cfg config.Config, store data.Store) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authH := NewAuth(store, []byte(cfg.JWTSecret))
	settingsH := NewSettings(store)
	blacklistH := NewBlacklist(store)
	statsH := NewStats(store)

	api := r.Group("/api")
	{
		api.POST("/auth/login", authH.Login)

		secured := api.Group("")
		secured.Use(authH.RequireOwner())
		{
			secured.GET("/bot/settings", settingsH.GetBot)
			secured.PUT("/bot/settings", settingsH.PutBot)
			secured.GET("/ai/settings", settingsH.GetAI)
			secured.PUT("/ai/settings", settingsH.PutAI)

			secured.GET("/blacklist", blacklistH.List)
			secured.POST("/blacklist", blacklistH.Add)
			secured.DELETE("/blacklist/:id", blacklistH.Remove)
			secured.GET("/blacklist/export", blacklistH.Export)

			secured.GET("/stats", statsH.Get)
			secured.PUT("/stats", statsH.Put)
		}
	}
}

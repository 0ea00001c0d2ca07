package webserver

import (
	"github.com/frostworks/snowbot/src/api/config"
	"github.com/frostworks/snowbot/src/data"
	"github.com/gin-gonic/gin"
)

func New(cfg config.Config, store data.Store) *gin.Engine {
	g := gin.New()
	g.Use(gin.Logger(), gin.Recovery())
	attachRoutes(g, cfg, store)
	return g
}

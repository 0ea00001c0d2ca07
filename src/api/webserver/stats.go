package webserver

import (
	"log"
	"net/http"

	"github.com/frostworks/snowbot/src/data"
	"github.com/frostworks/snowbot/src/types"
	"github.com/gin-gonic/gin"
)

type Stats struct {
	store data.Store
}

func NewStats(store data.Store) Stats {
	return Stats{store: store}
}

func (h Stats) Get(c *gin.Context) {
	stats, err := h.store.GetBotStats()
	if err != nil {
		log.Printf("stats: get: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"err": "failed to get stats"})
		return
	}
	if stats == nil {
		c.JSON(http.StatusNotFound, gin.H{"err": "stats not found"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h Stats) Put(c *gin.Context) {
	var req struct {
		Servers     int64 `json:"servers" binding:"min=0"`
		Users       int64 `json:"users" binding:"min=0"`
		Commands    int64 `json:"commands" binding:"min=0"`
		Blacklisted int64 `json:"blacklisted" binding:"min=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	stats := &types.BotStats{
		Servers:     req.Servers,
		Users:       req.Users,
		Commands:    req.Commands,
		Blacklisted: req.Blacklisted,
	}
	saved, err := h.store.UpdateBotStats(stats)
	if err != nil {
		log.Printf("stats: update: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"err": "failed to update stats"})
		return
	}
	c.JSON(http.StatusOK, saved)
}

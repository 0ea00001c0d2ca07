package webserver

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/frostworks/snowbot/src/data"
	"github.com/frostworks/snowbot/src/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

type Blacklist struct {
	store     data.Store
	sanitizer *bluemonday.Policy
}

func NewBlacklist(store data.Store) Blacklist {
	return Blacklist{store: store, sanitizer: bluemonday.StrictPolicy()}
}

func (h Blacklist) List(c *gin.Context) {
	entries, err := h.store.ListBlacklist()
	if err != nil {
		log.Printf("blacklist: list: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"err": "failed to get blacklisted users"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h Blacklist) Add(c *gin.Context) {
	var req struct {
		ID       string `json:"id" binding:"required,max=64"`
		Username string `json:"username" binding:"required,max=64"`
		Reason   string `json:"reason" binding:"required,max=256"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	entry := &types.BlacklistedUser{
		ID:       req.ID,
		Username: h.sanitizer.Sanitize(req.Username),
		Reason:   h.sanitizer.Sanitize(req.Reason),
	}
	created, err := h.store.AddToBlacklist(entry)
	if err != nil {
		log.Printf("blacklist: add %s: %v", req.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"err": "failed to blacklist user"})
		return
	}
	if !created {
		// already present; the insert is idempotent
		c.JSON(http.StatusOK, gin.H{"id": req.ID, "created": false})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h Blacklist) Remove(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.RemoveFromBlacklist(id); err != nil {
		log.Printf("blacklist: remove %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"err": "failed to remove user from blacklist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user removed from blacklist"})
}

func (h Blacklist) Export(c *gin.Context) {
	entries, err := h.store.ListBlacklist()
	if err != nil {
		log.Printf("blacklist: export: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"err": "failed to export blacklist"})
		return
	}

	exportedBy := ""
	if user := currentUser(c); user != nil {
		exportedBy = user.Username
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "blacklisted.json"))
	c.JSON(http.StatusOK, gin.H{
		"exportId":    uuid.NewString(),
		"blacklisted": entries,
		"exportedAt":  time.Now().UTC().Format(time.RFC3339),
		"exportedBy":  exportedBy,
	})
}

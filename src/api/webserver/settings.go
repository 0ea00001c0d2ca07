package webserver

import (
	"log"
	"net/http"

	"github.com/frostworks/snowbot/src/data"
	"github.com/frostworks/snowbot/src/types"
	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

type Settings struct {
	store     data.Store
	sanitizer *bluemonday.Policy
}

func NewSettings(store data.Store) Settings {
	// Strip everything; profile text is rendered verbatim in the dashboard.
	return Settings{store: store, sanitizer: bluemonday.StrictPolicy()}
}

func (h Settings) GetBot(c *gin.Context) {
	settings, err := h.store.GetBotSettings()
	if err != nil {
		log.Printf("settings: read bot: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"err": "failed to get bot settings"})
		return
	}
	if settings == nil {
		c.JSON(http.StatusNotFound, gin.H{"err": "bot settings not found"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h Settings) PutBot(c *gin.Context) {
	var req struct {
		Username     string `json:"username" binding:"required,max=64"`
		Bio          string `json:"bio" binding:"required,max=2000"`
		Status       string `json:"status" binding:"required,oneof=online dnd offline"`
		CustomStatus string `json:"customStatus" binding:"max=128"`
		Avatar       string `json:"avatar" binding:"omitempty,url,max=256"`
		Banner       string `json:"banner" binding:"omitempty,url,max=256"`
		Token        string `json:"token" binding:"max=128"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	token := req.Token
	if token == "" {
		// keep the stored token when the dashboard omits it
		if existing, err := h.store.GetBotSettings(); err == nil && existing != nil {
			token = existing.Token
		}
	}

	updated, err := h.store.UpdateBotSettings(&types.BotSettings{
		Username:     h.sanitizer.Sanitize(req.Username),
		Bio:          h.sanitizer.Sanitize(req.Bio),
		Status:       req.Status,
		CustomStatus: h.sanitizer.Sanitize(req.CustomStatus),
		Avatar:       req.Avatar,
		Banner:       req.Banner,
		Token:        token,
	})
	if err != nil {
		log.Printf("settings: update bot: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"err": "failed to update bot settings"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h Settings) GetAI(c *gin.Context) {
	settings, err := h.store.GetAISettings()
	if err != nil {
		log.Printf("settings: read ai: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"err": "failed to get AI settings"})
		return
	}
	if settings == nil {
		c.JSON(http.StatusNotFound, gin.H{"err": "AI settings not found"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h Settings) PutAI(c *gin.Context) {
	var req struct {
		Name              string   `json:"name" binding:"required,max=64"`
		Age               int      `json:"age" binding:"required,min=1,max=10000"`
		Vibe              string   `json:"vibe" binding:"required,max=128"`
		Theme             string   `json:"theme" binding:"required,max=128"`
		ResponseSpeed     string   `json:"responseSpeed" binding:"required,oneof=fast human-like slow"`
		SecurityLevel     string   `json:"securityLevel" binding:"required,oneof=auto-blacklist warn-only manual-review"`
		PersonalityTraits []string `json:"personalityTraits" binding:"max=20"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	traits := make([]string, 0, len(req.PersonalityTraits))
	for _, t := range req.PersonalityTraits {
		traits = append(traits, h.sanitizer.Sanitize(t))
	}

	updated, err := h.store.UpdateAISettings(&types.AISettings{
		Name:              h.sanitizer.Sanitize(req.Name),
		Age:               req.Age,
		Vibe:              h.sanitizer.Sanitize(req.Vibe),
		Theme:             h.sanitizer.Sanitize(req.Theme),
		ResponseSpeed:     req.ResponseSpeed,
		SecurityLevel:     req.SecurityLevel,
		PersonalityTraits: traits,
	})
	if err != nil {
		log.Printf("settings: update ai: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"err": "failed to update AI settings"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

package types

import "time"

// Dashboard roles
const (
	RoleOwner   = "owner"
	RoleCoOwner = "co-owner"
)

// Bot presence states
const (
	StatusOnline  = "online"
	StatusDnd     = "dnd"
	StatusOffline = "offline"
)

// AI response speeds
const (
	SpeedFast      = "fast"
	SpeedHumanLike = "human-like"
	SpeedSlow      = "slow"
)

// Security levels
const (
	SecurityAutoBlacklist = "auto-blacklist"
	SecurityWarnOnly      = "warn-only"
	SecurityManualReview  = "manual-review"
)

// Dashboard users (owners and co-owners)
type User struct {
	ID        string `gorm:"primaryKey;size:64" json:"id"` // Discord user ID
	Username  string `gorm:"size:64;not null" json:"username"`
	Role      string `gorm:"size:16;not null" json:"role"` // owner or co-owner
	CreatedAt time.Time `json:"createdAt"`
}

// Bot profile and presence (singleton row)
type BotSettings struct {
	ID           uint32 `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"size:64;not null" json:"username"`
	Bio          string `gorm:"type:text;not null" json:"bio"`
	Status       string `gorm:"size:16;not null" json:"status"` // online, dnd, offline
	CustomStatus string `gorm:"size:128" json:"customStatus"`
	Avatar       string `gorm:"size:256" json:"avatar"`
	Banner       string `gorm:"size:256" json:"banner"`
	Token        string `gorm:"size:128;not null" json:"token"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AI persona configuration (singleton row)
type AISettings struct {
	ID                uint32         `gorm:"primaryKey" json:"id"`
	Name              string         `gorm:"size:64;not null" json:"name"`
	Age               int            `gorm:"not null" json:"age"`
	Vibe              string         `gorm:"size:128;not null" json:"vibe"`
	Theme             string         `gorm:"size:128;not null" json:"theme"`
	ResponseSpeed     string         `gorm:"size:32;not null" json:"responseSpeed"`
	SecurityLevel     string         `gorm:"size:32;not null" json:"securityLevel"`
	PersonalityTraits []string       `gorm:"serializer:json;type:json" json:"personalityTraits"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

// Users the router silently ignores
type BlacklistedUser struct {
	ID            string    `gorm:"primaryKey;size:64" json:"id"` // Discord user ID
	Username      string    `gorm:"size:64;not null" json:"username"`
	Reason        string    `gorm:"size:256;not null" json:"reason"`
	BlacklistedAt time.Time `json:"blacklistedAt"`
}

// Aggregate counters (singleton row). Blacklisted is derived from the live
// blacklist count on read; the stored value is not trusted.
type BotStats struct {
	ID          uint32    `gorm:"primaryKey" json:"id"`
	Servers     int64     `gorm:"not null" json:"servers"`
	Users       int64     `gorm:"not null" json:"users"`
	Commands    int64     `gorm:"not null" json:"commands"`
	Blacklisted int64     `gorm:"not null" json:"blacklisted"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

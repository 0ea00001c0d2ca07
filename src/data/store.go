package data

import (
	"context"
	"errors"
	"time"

	"github.com/frostworks/snowbot/src/types"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Store is the settings-store contract shared by the bot and the admin API.
// Singleton records (bot settings, AI settings, stats) follow an upsert
// contract: create on first write, update afterwards. Missing singletons read
// as (nil, nil), matching "no record yet" rather than an error.
type Store interface {
	GetUser(id string) (*types.User, error)
	GetUserByUsername(username string) (*types.User, error)
	CreateUser(u *types.User) error

	GetBotSettings() (*types.BotSettings, error)
	UpdateBotSettings(s *types.BotSettings) (*types.BotSettings, error)

	GetAISettings() (*types.AISettings, error)
	UpdateAISettings(s *types.AISettings) (*types.AISettings, error)

	ListBlacklist() ([]types.BlacklistedUser, error)
	// AddToBlacklist is idempotent: a second insert for the same id reports
	// created=false and leaves the existing entry untouched.
	AddToBlacklist(entry *types.BlacklistedUser) (created bool, err error)
	RemoveFromBlacklist(id string) error
	IsBlacklisted(id string) (bool, error)

	// GetBotStats recomputes Blacklisted from the live blacklist count; the
	// stored counter is not trusted.
	GetBotStats() (*types.BotStats, error)
	UpdateBotStats(s *types.BotStats) (*types.BotStats, error)
	IncrementCommands() error
	IncrementBlacklisted() error
}

// SQLStore implements Store over MySQL, with an optional redis membership
// cache in front of the blacklist table.
type SQLStore struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewStore(db *gorm.DB, rdb *redis.Client) *SQLStore {
	return &SQLStore{db: db, rdb: rdb}
}

func (s *SQLStore) GetUser(id string) (*types.User, error) {
	var u types.User
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (s *SQLStore) GetUserByUsername(username string) (*types.User, error) {
	var u types.User
	if err := s.db.First(&u, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (s *SQLStore) CreateUser(u *types.User) error {
	return s.db.Create(u).Error
}

func (s *SQLStore) GetBotSettings() (*types.BotSettings, error) {
	var settings types.BotSettings
	if err := s.db.Order("id").First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (s *SQLStore) UpdateBotSettings(in *types.BotSettings) (*types.BotSettings, error) {
	existing, err := s.GetBotSettings()
	if err != nil {
		return nil, err
	}

	in.UpdatedAt = time.Now()
	if existing != nil {
		in.ID = existing.ID
		if err := s.db.Model(existing).Select("*").Omit("id").Updates(in).Error; err != nil {
			return nil, err
		}
		return in, nil
	}

	in.ID = 0
	if err := s.db.Create(in).Error; err != nil {
		return nil, err
	}
	return in, nil
}

func (s *SQLStore) GetAISettings() (*types.AISettings, error) {
	var settings types.AISettings
	if err := s.db.Order("id").First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (s *SQLStore) UpdateAISettings(in *types.AISettings) (*types.AISettings, error) {
	existing, err := s.GetAISettings()
	if err != nil {
		return nil, err
	}

	in.UpdatedAt = time.Now()
	if existing != nil {
		in.ID = existing.ID
		if err := s.db.Model(existing).Select("*").Omit("id").Updates(in).Error; err != nil {
			return nil, err
		}
		return in, nil
	}

	in.ID = 0
	if err := s.db.Create(in).Error; err != nil {
		return nil, err
	}
	return in, nil
}

func (s *SQLStore) ListBlacklist() ([]types.BlacklistedUser, error) {
	var entries []types.BlacklistedUser
	if err := s.db.Order("blacklisted_at").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *SQLStore) AddToBlacklist(entry *types.BlacklistedUser) (bool, error) {
	var existing types.BlacklistedUser
	err := s.db.First(&existing, "id = ?", entry.ID).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	entry.BlacklistedAt = time.Now()
	if err := s.db.Create(entry).Error; err != nil {
		return false, err
	}

	if s.rdb != nil {
		// cache only; MySQL already has the row
		_ = CacheBlacklistAdd(context.Background(), s.rdb, entry.ID)
	}
	return true, nil
}

func (s *SQLStore) RemoveFromBlacklist(id string) error {
	if err := s.db.Delete(&types.BlacklistedUser{}, "id = ?", id).Error; err != nil {
		return err
	}
	if s.rdb != nil {
		_ = CacheBlacklistRemove(context.Background(), s.rdb, id)
	}
	return nil
}

func (s *SQLStore) IsBlacklisted(id string) (bool, error) {
	if s.rdb != nil {
		if hit, err := CacheBlacklistHas(context.Background(), s.rdb, id); err == nil && hit {
			return true, nil
		}
	}

	var n int64
	if err := s.db.Model(&types.BlacklistedUser{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 && s.rdb != nil {
		_ = CacheBlacklistAdd(context.Background(), s.rdb, id)
	}
	return n > 0, nil
}

func (s *SQLStore) GetBotStats() (*types.BotStats, error) {
	var stats types.BotStats
	if err := s.db.Order("id").First(&stats).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var blacklisted int64
	if err := s.db.Model(&types.BlacklistedUser{}).Count(&blacklisted).Error; err == nil {
		stats.Blacklisted = blacklisted
	}
	return &stats, nil
}

func (s *SQLStore) UpdateBotStats(in *types.BotStats) (*types.BotStats, error) {
	var existing types.BotStats
	err := s.db.Order("id").First(&existing).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	in.UpdatedAt = time.Now()
	if err == nil {
		in.ID = existing.ID
		if err := s.db.Model(&existing).Select("*").Omit("id").Updates(in).Error; err != nil {
			return nil, err
		}
		return in, nil
	}

	in.ID = 0
	if err := s.db.Create(in).Error; err != nil {
		return nil, err
	}
	return in, nil
}

// IncrementCommands bumps the command counter once, creating the stats row if
// it does not exist yet. Read-modify-write: concurrent writers are
// last-write-wins, same as the dashboard's PUT.
func (s *SQLStore) IncrementCommands() error {
	var stats types.BotStats
	err := s.db.Order("id").First(&stats).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.Create(&types.BotStats{Commands: 1, UpdatedAt: time.Now()}).Error
	}
	if err != nil {
		return err
	}
	return s.db.Model(&stats).Updates(map[string]interface{}{
		"commands":   stats.Commands + 1,
		"updated_at": time.Now(),
	}).Error
}

func (s *SQLStore) IncrementBlacklisted() error {
	var stats types.BotStats
	err := s.db.Order("id").First(&stats).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.Create(&types.BotStats{Blacklisted: 1, UpdatedAt: time.Now()}).Error
	}
	if err != nil {
		return err
	}
	return s.db.Model(&stats).Updates(map[string]interface{}{
		"blacklisted": stats.Blacklisted + 1,
		"updated_at":  time.Now(),
	}).Error
}

package config

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDatabase opens the single-file SQLite store. HTTP handlers and
// the chat relay share one connection pool, so a busy timeout keeps
// concurrent writers from failing immediately with SQLITE_BUSY.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath+"?_busy_timeout=5000"), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

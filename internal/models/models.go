// Package models contains the row models for the crawler analysis tables.
// The tables are written by the external crawlers; this service only reads
// them. Reddit and 4chan rows live in separate databases.
package models

import (
	"gorm.io/gorm"
)

// RedditModels returns the models stored in the Reddit database.
func RedditModels() []interface{} {
	return []interface{}{
		&RedditSentiment{},
		&RedditToxicity{},
	}
}

// ChanModels returns the models stored in the 4chan database.
func ChanModels() []interface{} {
	return []interface{}{
		&ChanSentiment{},
		&ChanToxicity{},
	}
}

// AutoMigrateReddit creates the Reddit tables. Production schemas are owned
// by the crawlers; this exists for in-memory test fixtures.
func AutoMigrateReddit(db *gorm.DB) error {
	return db.AutoMigrate(RedditModels()...)
}

// AutoMigrateChan creates the 4chan tables. Production schemas are owned
// by the crawlers; this exists for in-memory test fixtures.
func AutoMigrateChan(db *gorm.DB) error {
	return db.AutoMigrate(ChanModels()...)
}

// Package sqlite contains the concrete implementation of the persistence
// layer using GORM over a local SQLite database file.
package sqlite

import (
	"portaljobs/config"
	"portaljobs/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New opens the local session database and ensures its schema exists.
func New(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Session.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open session database")
	}

	if err := db.AutoMigrate(&model.SessionRecordModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate session schema")
	}

	return db, nil
}

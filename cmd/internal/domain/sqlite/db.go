package sqlite

import (
	"time"

	"personalhub/cmd/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func Init(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&entity.Task{},
		&entity.DashboardNote{},
		&entity.Habit{},
		&entity.Bookmark{},
		&entity.ToolNote{},
		&entity.ToolFile{},
		&entity.CommunityPost{},
		&entity.ContactSubmission{},
	)
	if err != nil {
		return nil, err
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

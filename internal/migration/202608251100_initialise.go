package migration

import (
	"github.com/PressKit/go-scopes/models"
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

var Initialise = &gormigrate.Migration{
	ID: "202608251100-gs-118230",
	Migrate: func(db *gorm.DB) error {
		return db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{})
	},
	Rollback: func(db *gorm.DB) error {
		return db.Migrator().DropTable(&models.Comment{}, &models.Post{}, &models.User{})
	},
}

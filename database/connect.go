package database

import (
	"fmt"

	"coworking_market/config"
	"coworking_market/model"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB(settings config.Settings, log *logrus.Logger) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		settings.DBHost, settings.DBPort, settings.DBUser, settings.DBPassword, settings.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	log.Info("Connection Opened to Database")

	err = db.AutoMigrate(
		&model.User{},
		&model.Area{},
		&model.Location{},
		&model.WorkSpace{},
		&model.Booking{},
		&model.Viewing{},
		&model.InternalNotification{},
		&model.PushNotification{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	log.Info("Database Migrated")

	DB = db
	return db, nil
}

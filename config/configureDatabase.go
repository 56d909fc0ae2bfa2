package config

import (
	"fmt"
	"time"

	"licensing-backend/db/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// allModels is the migration list. Order matters: referenced tables first.
var allModels = []interface{}{
	&models.Role{},
	&models.User{},

	&models.Client{},
	&models.Company{},
	&models.Individual{},

	&models.Software{},
	&models.Discount{},
	&models.Contract{},
	&models.Payment{},

	&models.ExchangeRate{},
}

func ConfigureDatabase(s Settings) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=%s",
		s.DBHost, s.DBUser, s.DBPassword, s.DBName, s.DBPort, s.DBTimezone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		// unique violations surface as gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		Logger.Fatal("[DB-CONNECT] Failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(allModels...); err != nil {
		Logger.Fatal("[DB-MIGRATE] Failed to migrate tables", zap.Error(err))
	}
	Logger.Info("[DB-MIGRATE] Tables migrated successfully")

	if err := CreateLicensingIndexes(db); err != nil {
		Logger.Fatal("[DB-MIGRATE] Failed to create indexes", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		Logger.Fatal("[DB-POOL] Failed to get underlying DB connection", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	Logger.Info("[DB-STATUS] Database setup complete")
	return db
}

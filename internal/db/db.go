package db

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-manager/internal/config"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	return db
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Appointment{},
		&models.CompletedAppointment{},
		&models.OperationPrice{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	return seedOperationPrices(db)
}

// seedOperationPrices popula a tabela de preços no primeiro boot.
// Tabela já preenchida (mesmo que editada depois) fica intocada.
func seedOperationPrices(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.OperationPrice{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []models.OperationPrice{
		{Name: "Corte", Price: 45},
		{Name: "Barba", Price: 30},
		{Name: "Corte + Barba", Price: 65},
		{Name: "Sobrancelha", Price: 15},
	}

	return db.Create(&defaults).Error
}

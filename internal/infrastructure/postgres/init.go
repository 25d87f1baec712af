package postgres

import (
	"log"

	"github.com/fixway/fixway-jobs-service/internal/config"
	"github.com/fixway/fixway-jobs-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.JobsConfig) *gorm.DB {
	dsn := cfg.JobsDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.JobModel{},
		&models.BidModel{},
		&models.PaymentModel{},
		&models.LedgerEntryModel{},
		&models.WarrantyHoldModel{},
		&models.DisputeModel{},
		&models.TrustProfileModel{},
		&models.ReviewModel{},
	)

	return db
}

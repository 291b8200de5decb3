package database

import (
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/manfred-witteman/flea/internal/config"
	"github.com/manfred-witteman/flea/internal/models"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("Kan geen verbinding maken met de database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Sale{},
		&models.Settlement{},
		&models.AuditLog{},
	)
	if err != nil {
		logrus.Fatalf("AutoMigrate mislukt: %v", err)
	}

	// QR-uniciteit geldt alleen voor levende rijen: een verwijderde rij mag
	// zijn QR vrijgeven. AutoMigrate kan geen partiële index uitdrukken,
	// dus handmatig.
	if err := DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_sales_qr_id_live
		ON sales (qr_id)
		WHERE qr_id IS NOT NULL AND deleted = false
	`).Error; err != nil {
		logrus.Fatalf("Partiële index op qr_id kon niet worden aangemaakt: %v", err)
	}

	logrus.Info("Databaseverbinding ok, migraties uitgevoerd")
}

package purchase

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/manfred-witteman/flea/internal/apperr"
	"github.com/manfred-witteman/flea/internal/database"
	"github.com/manfred-witteman/flea/internal/models"
)

type CreatePurchaseInput struct {
	Description string
	Cost        *decimal.Decimal
	OwnerUserID uint
	TargetPrice *decimal.Decimal
	Remarks     string
	IsPin       bool
	QRID        *string
	ImageURL    string
	PurchasedAt *time.Time
}

func validateCreatePurchase(in CreatePurchaseInput) error {
	if strings.TrimSpace(in.Description) == "" {
		return apperr.New(apperr.KindValidation, "Omschrijving is verplicht")
	}
	if in.Cost == nil {
		return apperr.New(apperr.KindValidation, "Inkoopbedrag is verplicht")
	}
	if in.OwnerUserID == 0 {
		return apperr.New(apperr.KindValidation, "Eigenaar is verplicht")
	}
	return nil
}

// CreatePurchase legt een inkoop vast: cost bekend, price leeg, sold_at leeg.
func CreatePurchase(in CreatePurchaseInput) (uint, error) {
	if err := validateCreatePurchase(in); err != nil {
		return 0, err
	}

	purchasedAt := time.Now()
	if in.PurchasedAt != nil {
		purchasedAt = *in.PurchasedAt
	}

	if in.QRID != nil && *in.QRID == "" {
		in.QRID = nil
	}
	if in.QRID != nil {
		taken, err := qrInUse(database.DB, *in.QRID, 0)
		if err != nil {
			return 0, err
		}
		if taken {
			return 0, apperr.New(apperr.KindConflict, "QR is al in gebruik")
		}
	}

	sale := models.Sale{
		Description:     strings.TrimSpace(in.Description),
		Cost:            decimal.NullDecimal{Decimal: *in.Cost, Valid: true},
		OwnerUserID:     in.OwnerUserID,
		PurchaseIsPin:   in.IsPin,
		PurchaseRemarks: in.Remarks,
		QRID:            in.QRID,
		ImageURL:        in.ImageURL,
		PurchasedAt:     &purchasedAt,
	}
	if in.TargetPrice != nil {
		sale.TargetPrice = decimal.NullDecimal{Decimal: *in.TargetPrice, Valid: true}
	}

	if err := database.DB.Create(&sale).Error; err != nil {
		return 0, err
	}

	return sale.ID, nil
}

// ListPendingPurchases: ingekocht maar nog niet verkocht, nieuwste eerst.
// Gewone herbevraagbare lijst, geen cursor.
func ListPendingPurchases() ([]models.Sale, error) {
	var sales []models.Sale
	err := database.DB.
		Where("deleted = false AND purchased_at IS NOT NULL AND sold_at IS NULL").
		Order("purchased_at desc, id desc").
		Find(&sales).Error
	return sales, err
}

// AttachQr koppelt eenmalig een QR aan een bestaande rij. Een rij die al een
// QR heeft wordt geweigerd; de koppeling is geen overschrijving.
func AttachQr(saleID uint, qrID string) error {
	qrID = strings.TrimSpace(qrID)
	if qrID == "" {
		return apperr.New(apperr.KindValidation, "QR-code is verplicht")
	}

	tx := database.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var sale models.Sale
	if err := tx.Where("id = ? AND deleted = false", saleID).First(&sale).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.KindNotFound, "Inkoop niet gevonden")
		}
		return err
	}

	if sale.QRID != nil {
		tx.Rollback()
		return apperr.New(apperr.KindConflict, "Item heeft al een QR")
	}

	taken, err := qrInUse(tx, qrID, sale.ID)
	if err != nil {
		tx.Rollback()
		return err
	}
	if taken {
		tx.Rollback()
		return apperr.New(apperr.KindConflict, "QR is al in gebruik")
	}

	if err := tx.Model(&sale).Update("qr_id", qrID).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// ResolveByQr zoekt de unieke levende rij bij een QR-code op, waarmee de
// kassa de verkoopvelden vooraf kan invullen.
func ResolveByQr(qrID string) (*models.Sale, error) {
	var sale models.Sale
	err := database.DB.
		Where("qr_id = ? AND deleted = false", qrID).
		First(&sale).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "Geen item gevonden voor deze QR")
		}
		return nil, err
	}
	return &sale, nil
}

// SetPurchaseImage hangt achteraf een foto aan een inkoop.
func SetPurchaseImage(saleID uint, imageURL string) error {
	res := database.DB.Model(&models.Sale{}).
		Where("id = ? AND deleted = false", saleID).
		Update("image_url", imageURL)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.KindNotFound, "Inkoop niet gevonden")
	}
	return nil
}

func qrInUse(db *gorm.DB, qrID string, excludeID uint) (bool, error) {
	var count int64
	err := db.Model(&models.Sale{}).
		Where("qr_id = ? AND deleted = false AND id <> ?", qrID, excludeID).
		Count(&count).Error
	return count > 0, err
}

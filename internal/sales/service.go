package sales

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

type RecordSaleInput struct {
	Description string
	Price       *decimal.Decimal
	Cost        *decimal.Decimal
	OwnerUserID uint
	ImageURL    string
	IsPin       bool
	QRID        *string
	SoldAt      *time.Time
}

func (in *RecordSaleInput) hasQR() bool {
	return in.QRID != nil && strings.TrimSpace(*in.QRID) != ""
}

func validateRecordSale(in RecordSaleInput) error {
	if in.Price == nil {
		return apperr.New(apperr.KindValidation, "Prijs is verplicht")
	}
	// In de QR-flow komen eigenaar en omschrijving uit de bestaande
	// inkooprij; de kassa hoeft ze dan niet mee te sturen.
	if !in.hasQR() {
		if in.OwnerUserID == 0 {
			return apperr.New(apperr.KindValidation, "Eigenaar is verplicht")
		}
		if strings.TrimSpace(in.Description) == "" {
			return apperr.New(apperr.KindValidation, "Omschrijving is verplicht")
		}
	}
	return nil
}

type qrPlan int

const (
	qrPlanUpdate qrPlan = iota
	qrPlanInsert
)

// planQrSale bepaalt wat een gescande QR met de ledger doet: de levende rij
// bijwerken, een nieuwe voltooide verkoop invoegen, of weigeren. existing is
// de levende rij bij de QR, of nil als die er niet is.
//
// Een rij die al verkocht is wordt geweigerd: een tweede scan mag een
// afgeronde (en mogelijk al verrekende) verkoop niet stilletjes
// overschrijven. Zonder levende rij kan alleen een volledig ingevuld los
// item nog worden ingevoegd.
func planQrSale(existing *models.Sale, in RecordSaleInput) (qrPlan, error) {
	if existing == nil {
		if strings.TrimSpace(in.Description) == "" {
			return 0, apperr.New(apperr.KindNotFound, "Geen inkoop gevonden voor deze QR")
		}
		if in.OwnerUserID == 0 {
			return 0, apperr.New(apperr.KindValidation, "Eigenaar is verplicht")
		}
		return qrPlanInsert, nil
	}
	if existing.SoldAt != nil {
		return 0, apperr.New(apperr.KindConflict, "Item is al verkocht")
	}
	return qrPlanUpdate, nil
}

// RecordSale rondt een verkoop af. Hoort de QR bij een levende rij, dan
// wordt díe rij bijgewerkt naar verkocht; zo niet, dan wordt een nieuwe
// voltooide verkoop ingevoegd. Zo ontstaat nooit een tweede rij voor één
// fysiek item. Geeft naast het id terug of er is bijgewerkt of ingevoegd.
//
// Een QR zonder levende rij én zonder volledige verkoopvelden is een fout:
// dan valt er niets bij te werken en niets in te voegen.
func RecordSale(in RecordSaleInput, cashierID uint) (uint, bool, error) {
	if err := validateRecordSale(in); err != nil {
		return 0, false, err
	}

	soldAt := time.Now()
	if in.SoldAt != nil {
		soldAt = *in.SoldAt
	}

	tx := database.DB.Begin()
	if tx.Error != nil {
		return 0, false, tx.Error
	}

	if in.hasQR() {
		qr := strings.TrimSpace(*in.QRID)

		var existing *models.Sale
		var row models.Sale
		err := tx.Where("qr_id = ? AND deleted = false", qr).First(&row).Error
		switch {
		case err == nil:
			existing = &row
		case errors.Is(err, gorm.ErrRecordNotFound):
			// geen levende rij; planQrSale beslist of invoegen nog kan
		default:
			tx.Rollback()
			return 0, false, err
		}

		plan, err := planQrSale(existing, in)
		if err != nil {
			tx.Rollback()
			return 0, false, err
		}

		if plan == qrPlanUpdate {
			updates := map[string]interface{}{
				"price":           *in.Price,
				"cashier_user_id": cashierID,
				"is_pin":          in.IsPin,
				"sold_at":         soldAt,
			}
			if strings.TrimSpace(in.Description) != "" {
				updates["description"] = strings.TrimSpace(in.Description)
			}
			if in.Cost != nil {
				updates["cost"] = *in.Cost
			}
			if in.ImageURL != "" {
				updates["image_url"] = in.ImageURL
			}

			// sold_at IS NULL vangt een gelijktijdige verkoop van dezelfde
			// QR tussen de leesactie en deze update.
			res := tx.Model(&models.Sale{}).
				Where("id = ? AND deleted = false AND sold_at IS NULL", existing.ID).
				Updates(updates)
			if res.Error != nil {
				tx.Rollback()
				return 0, false, res.Error
			}
			if res.RowsAffected == 0 {
				tx.Rollback()
				return 0, false, apperr.New(apperr.KindConflict, "Item is al verkocht")
			}

			if err := tx.Commit().Error; err != nil {
				return 0, false, err
			}
			return existing.ID, true, nil
		}
		// qrPlanInsert: los item met een verse QR valt door naar de insert
	}

	sale := models.Sale{
		Description:   strings.TrimSpace(in.Description),
		Price:         decimal.NullDecimal{Decimal: *in.Price, Valid: true},
		OwnerUserID:   in.OwnerUserID,
		CashierUserID: &cashierID,
		ImageURL:      in.ImageURL,
		IsPin:         in.IsPin,
		SoldAt:        &soldAt,
	}
	if in.Cost != nil {
		sale.Cost = decimal.NullDecimal{Decimal: *in.Cost, Valid: true}
	}
	if in.hasQR() {
		qr := strings.TrimSpace(*in.QRID)
		sale.QRID = &qr
	}

	if err := tx.Create(&sale).Error; err != nil {
		tx.Rollback()
		return 0, false, err
	}

	if err := tx.Commit().Error; err != nil {
		return 0, false, err
	}
	return sale.ID, false, nil
}

// SoftDelete markeert een verkoop als verwijderd en geeft de bestandsnaam
// van een eventuele foto terug zodat de aanroeper die kan opruimen. De rij
// zelf blijft bestaan voor de audit.
func SoftDelete(saleID uint) (string, error) {
	var sale models.Sale
	if err := database.DB.Where("id = ? AND deleted = false", saleID).First(&sale).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.New(apperr.KindNotFound, "Verkoop niet gevonden")
		}
		return "", err
	}

	now := time.Now()
	if err := database.DB.Model(&sale).Updates(map[string]interface{}{
		"deleted":    true,
		"deleted_at": now,
	}).Error; err != nil {
		return "", err
	}

	return sale.ImageURL, nil
}

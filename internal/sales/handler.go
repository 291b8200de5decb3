package sales

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/manfred-witteman/flea/internal/apperr"
	"github.com/manfred-witteman/flea/internal/audit"
	"github.com/manfred-witteman/flea/internal/auth"
	"github.com/manfred-witteman/flea/internal/config"
	"github.com/manfred-witteman/flea/internal/database"
	"github.com/manfred-witteman/flea/internal/models"
	"github.com/manfred-witteman/flea/internal/uploads"
)

type CreateSaleRequest struct {
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Cost        *decimal.Decimal `json:"cost"`
	OwnerUserID uint             `json:"owner_user_id"`
	ImageURL    string           `json:"image_url"`
	IsPin       bool             `json:"is_pin"`
	QRID        *string          `json:"qr_id"`
}

type saleListItem struct {
	ID            uint                `json:"id"`
	Description   string              `json:"description"`
	Price         decimal.NullDecimal `json:"price"`
	SoldAt        *time.Time          `json:"sold_at"`
	ImageURL      string              `json:"image_url"`
	IsPin         bool                `json:"is_pin"`
	OwnerUserID   uint                `json:"owner_user_id"`
	OwnerName     string              `json:"owner_name"`
	CashierUserID *uint               `json:"cashier_user_id"`
	CashierName   string              `json:"cashier_name"`
}

// POST /api/sales
func CreateSaleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		var body CreateSaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Ongeldige invoer")
		}

		in := RecordSaleInput{
			Description: body.Description,
			Price:       body.Price,
			Cost:        body.Cost,
			OwnerUserID: body.OwnerUserID,
			ImageURL:    body.ImageURL,
			IsPin:       body.IsPin,
			QRID:        body.QRID,
		}

		id, updated, err := RecordSale(in, userID)
		if err != nil {
			return apperr.ToFiber(err)
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    audit.UserName(userID),
			EntityType:  "sale",
			EntityID:    id,
			Action:      models.AuditActionCreate,
			Description: "Verkoop geregistreerd: " + body.Description,
			After:       body,
		})

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id, "updated": updated})
	}
}

// GET /api/sales?date=2025-08-29
func ListSalesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dateStr := c.Query("date")
		var day time.Time
		if dateStr == "" {
			now := time.Now()
			day = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		} else {
			d, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "date heeft een ongeldig formaat, gebruik YYYY-MM-DD")
			}
			day = d
		}

		var sales []models.Sale
		if err := database.DB.
			Preload("Owner").
			Preload("Cashier").
			Where("deleted = false AND sold_at >= ? AND sold_at < ?", day, day.AddDate(0, 0, 1)).
			Order("sold_at desc, id desc").
			Find(&sales).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Verkopen konden niet worden opgehaald")
		}

		resp := make([]saleListItem, 0, len(sales))
		for _, s := range sales {
			item := saleListItem{
				ID:            s.ID,
				Description:   s.Description,
				Price:         s.Price,
				SoldAt:        s.SoldAt,
				ImageURL:      s.ImageURL,
				IsPin:         s.IsPin,
				OwnerUserID:   s.OwnerUserID,
				CashierUserID: s.CashierUserID,
			}
			if s.Owner != nil {
				item.OwnerName = s.Owner.Name
			}
			if s.Cashier != nil {
				item.CashierName = s.Cashier.Name
			}
			resp = append(resp, item)
		}

		return c.JSON(fiber.Map{"sales": resp})
	}
}

// DELETE /api/sales/:id
func DeleteSaleHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Ongeldig ID")
		}

		imageURL, err := SoftDelete(uint(id))
		if err != nil {
			return apperr.ToFiber(err)
		}

		// De rij is al gemarkeerd; een foto die niet weg wil is geen reden
		// om de verwijdering terug te draaien.
		if imageURL != "" {
			if !uploads.Delete(cfg.UploadPath, imageURL) {
				logrus.Warnf("Foto %s kon niet worden verwijderd", imageURL)
			}
		}

		if userID, uerr := auth.CurrentUserID(c); uerr == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    audit.UserName(userID),
				EntityType:  "sale",
				EntityID:    uint(id),
				Action:      models.AuditActionDelete,
				Description: "Verkoop verwijderd",
			})
		}

		return c.JSON(fiber.Map{"ok": true})
	}
}

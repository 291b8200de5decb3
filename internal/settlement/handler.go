package settlement

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/manfred-witteman/flea/internal/apperr"
	"github.com/manfred-witteman/flea/internal/audit"
	"github.com/manfred-witteman/flea/internal/auth"
	"github.com/manfred-witteman/flea/internal/database"
	"github.com/manfred-witteman/flea/internal/models"
)

type settlementListItem struct {
	ID           uint            `json:"id"`
	FromUserID   uint            `json:"from_user_id"`
	FromUserName string          `json:"from_user_name"`
	ToUserID     uint            `json:"to_user_id"`
	ToUserName   string          `json:"to_user_name"`
	Amount       decimal.Decimal `json:"amount"`
	SalesIDs     []uint          `json:"sales_ids"`
	CreatedAt    time.Time       `json:"created_at"`
}

// POST /api/settlements, alleen voor admins; de routegroep dwingt dat af
// voordat hier iets gebeurt.
func ProcessSettlementHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		entries, err := Run()
		if err != nil {
			return apperr.ToFiber(err)
		}

		logrus.Infof("Verrekening uitgevoerd: %d posten", len(entries))

		if userID, uerr := auth.CurrentUserID(c); uerr == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    audit.UserName(userID),
				EntityType:  "settlement",
				Action:      models.AuditActionSettle,
				Description: "Verrekening uitgevoerd",
				After:       entries,
			})
		}

		return c.JSON(fiber.Map{"settlements": entries})
	}
}

// GET /api/settlements
func ListSettlementsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []models.Settlement
		if err := database.DB.
			Preload("FromUser").
			Preload("ToUser").
			Order("created_at desc, id desc").
			Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Verrekeningen konden niet worden opgehaald")
		}

		resp := make([]settlementListItem, 0, len(rows))
		for _, r := range rows {
			item := settlementListItem{
				ID:         r.ID,
				FromUserID: r.FromUserID,
				ToUserID:   r.ToUserID,
				Amount:     r.Amount,
				SalesIDs:   models.SplitSaleIDs(r.SalesIDs),
				CreatedAt:  r.CreatedAt,
			}
			if r.FromUser != nil {
				item.FromUserName = r.FromUser.Name
			}
			if r.ToUser != nil {
				item.ToUserName = r.ToUser.Name
			}
			resp = append(resp, item)
		}

		return c.JSON(fiber.Map{"settlements": resp})
	}
}

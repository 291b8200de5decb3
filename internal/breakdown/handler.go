package breakdown

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/manfred-witteman/flea/internal/apperr"
	"github.com/manfred-witteman/flea/internal/database"
	"github.com/manfred-witteman/flea/internal/models"
)

type Row struct {
	OwnerID   uint            `json:"owner_id"`
	OwnerName string          `json:"owner_name"`
	Revenue   decimal.Decimal `json:"revenue"`
}

type Result struct {
	Rows  []Row           `json:"rows"`
	Total decimal.Decimal `json:"total"`
	Start time.Time       `json:"-"`
	End   time.Time       `json:"-"`
}

// Compute telt per actieve eigenaar de omzet in de periode op. Eigenaren
// zonder verkopen staan er ook in, met omzet 0. Ook admins tellen mee: wie
// zelf items inbrengt moet zijn omzet terugzien, anders klopt het totaal
// niet met wat de verrekening uitkeert. Puur lezend; processed blijft
// onaangeraakt.
func Compute(date time.Time, rng string) (*Result, error) {
	start, end, err := ResolveWindow(date, rng)
	if err != nil {
		return nil, err
	}

	var owners []models.User
	if err := database.DB.
		Where("active = true").
		Order("name").
		Find(&owners).Error; err != nil {
		return nil, err
	}

	type sumRow struct {
		OwnerUserID uint            `gorm:"column:owner_user_id"`
		Revenue     decimal.Decimal `gorm:"column:revenue"`
	}
	var sums []sumRow

	if err := database.DB.Model(&models.Sale{}).
		Select("owner_user_id, COALESCE(SUM(price), 0) AS revenue").
		Where("deleted = false AND sold_at >= ? AND sold_at < ?", start, end.AddDate(0, 0, 1)).
		Group("owner_user_id").
		Scan(&sums).Error; err != nil {
		return nil, err
	}

	revenueByOwner := make(map[uint]decimal.Decimal, len(sums))
	for _, s := range sums {
		revenueByOwner[s.OwnerUserID] = s.Revenue
	}

	result := assembleRows(owners, revenueByOwner)
	result.Start = start
	result.End = end

	return result, nil
}

// assembleRows zet de eigenarenlijst en de opgetelde bedragen om in het
// overzicht: één rij per eigenaar in lijstvolgorde, omzet 0 voor wie niets
// verkocht heeft, en een eindtotaal.
func assembleRows(owners []models.User, revenueByOwner map[uint]decimal.Decimal) *Result {
	result := &Result{
		Rows:  make([]Row, 0, len(owners)),
		Total: decimal.Zero,
	}

	for _, o := range owners {
		rev := revenueByOwner[o.ID].Round(2)
		result.Rows = append(result.Rows, Row{
			OwnerID:   o.ID,
			OwnerName: o.Name,
			Revenue:   rev,
		})
		result.Total = result.Total.Add(rev)
	}
	result.Total = result.Total.Round(2)

	return result
}

func parseParams(c *fiber.Ctx) (time.Time, string, error) {
	dateStr := c.Query("date")
	rng := c.Query("range", "day")

	date := time.Now()
	if dateStr != "" {
		d, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			return time.Time{}, "", fiber.NewError(fiber.StatusBadRequest, "date heeft een ongeldig formaat, gebruik YYYY-MM-DD")
		}
		date = d
	}

	return date, rng, nil
}

// GET /api/breakdown?date=2025-08-29&range=day|week|month
func BreakdownHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		date, rng, err := parseParams(c)
		if err != nil {
			return err
		}

		result, err := Compute(date, rng)
		if err != nil {
			return apperr.ToFiber(err)
		}

		return c.JSON(fiber.Map{
			"rows":  result.Rows,
			"total": result.Total,
		})
	}
}

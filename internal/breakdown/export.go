package breakdown

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"github.com/manfred-witteman/flea/internal/apperr"
)

// GET /api/breakdown/export?date=2025-08-29&range=week
// Zelfde cijfers als /api/breakdown, maar als xlsx-download.
func ExportBreakdownHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		date, rng, err := parseParams(c)
		if err != nil {
			return err
		}

		result, err := Compute(date, rng)
		if err != nil {
			return apperr.ToFiber(err)
		}

		f := excelize.NewFile()
		defer f.Close()

		sheet := "Omzet"
		f.SetSheetName("Sheet1", sheet)

		f.SetCellValue(sheet, "A1", "Eigenaar")
		f.SetCellValue(sheet, "B1", "Omzet")

		row := 2
		for _, r := range result.Rows {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.OwnerName)
			amount, _ := r.Revenue.Float64()
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), amount)
			row++
		}

		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Totaal")
		total, _ := result.Total.Float64()
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), total)

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Export kon niet worden gemaakt")
		}

		filename := fmt.Sprintf("omzet_%s_%s.xlsx", rng, result.Start.Format("2006-01-02"))
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))

		return c.Send(buf.Bytes())
	}
}

package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Settlement is één netto schuld van kassière naar eigenaar, het resultaat
// van een verrekenronde. SalesIDs bewaart de gevouwen verkoop-ids als CSV,
// hetzelfde formaat als het systeem dat dit vervangt.
type Settlement struct {
	ID         uint            `gorm:"primaryKey"`
	FromUserID uint            `gorm:"index;not null"` // kassière die geld ontving
	FromUser   *User           `gorm:"foreignKey:FromUserID"`
	ToUserID   uint            `gorm:"index;not null"` // eigenaar van de items
	ToUser     *User           `gorm:"foreignKey:ToUserID"`
	Amount     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	SalesIDs   string          `gorm:"size:1000;not null"`
	CreatedAt  time.Time
}

func JoinSaleIDs(ids []uint) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatUint(uint64(id), 10))
	}
	return strings.Join(parts, ",")
}

func SplitSaleIDs(csv string) []uint {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(n))
	}
	return ids
}

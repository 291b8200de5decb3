// Package settlement vouwt alle onverwerkte verkopen tot één netto bedrag
// per kassière-eigenaar paar en sluit ze in dezelfde transactie af.
package settlement

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm/clause"

	"github.com/manfred-witteman/flea/internal/apperr"
	"github.com/manfred-witteman/flea/internal/database"
	"github.com/manfred-witteman/flea/internal/models"
)

type Entry struct {
	FromUserID uint            `json:"from_user_id"`
	ToUserID   uint            `json:"to_user_id"`
	Amount     decimal.Decimal `json:"amount"`
	SalesIDs   []uint          `json:"sales_ids"`
}

// Net groepeert verkopen per (kassière, eigenaar) en telt de prijzen op.
// De volgorde van de uitvoer volgt de eerste verkoop van elk paar.
//
// Verkopen waar kassière en eigenaar dezelfde persoon zijn doen niet mee en
// worden ook niet als verwerkt gemarkeerd: er valt niets met jezelf te
// verrekenen. Rijen zonder kassière of verkoopdatum zijn nog inkopen en
// horen niet in een verrekening.
func Net(sales []models.Sale) []Entry {
	type pair struct {
		from uint
		to   uint
	}

	index := make(map[pair]int)
	entries := make([]Entry, 0)

	for _, s := range sales {
		if s.CashierUserID == nil || s.SoldAt == nil {
			continue
		}
		if *s.CashierUserID == s.OwnerUserID {
			continue
		}

		key := pair{from: *s.CashierUserID, to: s.OwnerUserID}
		i, ok := index[key]
		if !ok {
			i = len(entries)
			index[key] = i
			entries = append(entries, Entry{
				FromUserID: key.from,
				ToUserID:   key.to,
				Amount:     decimal.Zero,
			})
		}

		if s.Price.Valid {
			entries[i].Amount = entries[i].Amount.Add(s.Price.Decimal)
		}
		entries[i].SalesIDs = append(entries[i].SalesIDs, s.ID)
	}

	return entries
}

// Run draait één verrekenronde: alle onverwerkte, niet-verwijderde verkopen
// (geen datumfilter, de hele achterstand) worden genet, per paar wordt één
// Settlement-rij geschreven en de bronverkopen gaan op processed. Alles in
// één transactie; bij elke fout blijft de oude toestand staan. Een lege
// achterstand is geen fout en levert een lege lijst op.
func Run() ([]Entry, error) {
	tx := database.DB.Begin()
	if tx.Error != nil {
		return nil, apperr.Wrap(apperr.KindSettlement, "Fout bij verrekenen", tx.Error)
	}

	// FOR UPDATE op de achterstand: een tweede ronde die tegelijk draait
	// wacht op de rijlocks en ziet daarna processed = true, zodat dezelfde
	// verkoop nooit in twee verrekeningen belandt.
	var sales []models.Sale
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("processed = false AND deleted = false AND sold_at IS NOT NULL").
		Find(&sales).Error; err != nil {
		tx.Rollback()
		return nil, apperr.Wrap(apperr.KindSettlement, "Fout bij verrekenen", err)
	}

	entries := Net(sales)

	for _, e := range entries {
		row := models.Settlement{
			FromUserID: e.FromUserID,
			ToUserID:   e.ToUserID,
			Amount:     e.Amount,
			SalesIDs:   models.JoinSaleIDs(e.SalesIDs),
		}
		if err := tx.Create(&row).Error; err != nil {
			tx.Rollback()
			return nil, apperr.Wrap(apperr.KindSettlement, "Fout bij verrekenen", err)
		}

		if err := tx.Model(&models.Sale{}).
			Where("id IN ?", e.SalesIDs).
			Update("processed", true).Error; err != nil {
			tx.Rollback()
			return nil, apperr.Wrap(apperr.KindSettlement, "Fout bij verrekenen", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperr.Wrap(apperr.KindSettlement, "Fout bij verrekenen", err)
	}

	return entries, nil
}

package settlement

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/manfred-witteman/flea/internal/models"
)

func sale(id uint, cashier *uint, owner uint, price string, soldAt *time.Time) models.Sale {
	s := models.Sale{ID: id, OwnerUserID: owner, CashierUserID: cashier, SoldAt: soldAt}
	if price != "" {
		s.Price = decimal.NullDecimal{Decimal: decimal.RequireFromString(price), Valid: true}
	}
	return s
}

func uintPtr(v uint) *uint { return &v }

func TestNetGroepeertPerPaar(t *testing.T) {
	now := time.Now()
	sales := []models.Sale{
		sale(1, uintPtr(2), 1, "10.00", &now),
		sale(2, uintPtr(2), 1, "2.50", &now),
		sale(3, uintPtr(3), 1, "4.00", &now),
	}

	entries := Net(sales)

	if len(entries) != 2 {
		t.Fatalf("verwacht 2 posten, kreeg %d", len(entries))
	}

	first := entries[0]
	if first.FromUserID != 2 || first.ToUserID != 1 {
		t.Fatalf("verwacht paar 2->1, kreeg %d->%d", first.FromUserID, first.ToUserID)
	}
	if !first.Amount.Equal(decimal.RequireFromString("12.50")) {
		t.Fatalf("verwacht bedrag 12.50, kreeg %s", first.Amount)
	}
	if len(first.SalesIDs) != 2 || first.SalesIDs[0] != 1 || first.SalesIDs[1] != 2 {
		t.Fatalf("verwacht sales_ids [1 2], kreeg %v", first.SalesIDs)
	}

	second := entries[1]
	if second.FromUserID != 3 || !second.Amount.Equal(decimal.RequireFromString("4.00")) {
		t.Fatalf("verwacht paar 3->1 met 4.00, kreeg %d->%d met %s",
			second.FromUserID, second.ToUserID, second.Amount)
	}
}

func TestNetSlaatEigenVerkopenOver(t *testing.T) {
	now := time.Now()
	sales := []models.Sale{
		sale(1, uintPtr(1), 1, "10.00", &now), // eigenaar rekent zichzelf af
		sale(2, uintPtr(2), 1, "5.00", &now),
	}

	entries := Net(sales)

	if len(entries) != 1 {
		t.Fatalf("verwacht 1 post, kreeg %d", len(entries))
	}
	if entries[0].FromUserID != 2 {
		t.Fatalf("verwacht post van gebruiker 2, kreeg %d", entries[0].FromUserID)
	}
	for _, id := range entries[0].SalesIDs {
		if id == 1 {
			t.Fatal("eigen verkoop mag niet in een post zitten")
		}
	}
}

func TestNetNegeertOnvoltooideRijen(t *testing.T) {
	now := time.Now()
	sales := []models.Sale{
		sale(1, nil, 1, "10.00", &now),       // geen kassière: nog een inkoop
		sale(2, uintPtr(2), 1, "10.00", nil), // geen verkoopdatum
		sale(3, uintPtr(2), 1, "7.00", &now),
	}

	entries := Net(sales)

	if len(entries) != 1 {
		t.Fatalf("verwacht 1 post, kreeg %d", len(entries))
	}
	if !entries[0].Amount.Equal(decimal.RequireFromString("7.00")) {
		t.Fatalf("verwacht bedrag 7.00, kreeg %s", entries[0].Amount)
	}
}

func TestNetVolgordeIsEersteVerkoop(t *testing.T) {
	now := time.Now()
	sales := []models.Sale{
		sale(1, uintPtr(3), 2, "1.00", &now),
		sale(2, uintPtr(2), 1, "1.00", &now),
		sale(3, uintPtr(3), 2, "1.00", &now),
	}

	entries := Net(sales)

	if len(entries) != 2 {
		t.Fatalf("verwacht 2 posten, kreeg %d", len(entries))
	}
	if entries[0].FromUserID != 3 || entries[1].FromUserID != 2 {
		t.Fatalf("verwacht volgorde [3->2, 2->1], kreeg [%d->%d, %d->%d]",
			entries[0].FromUserID, entries[0].ToUserID,
			entries[1].FromUserID, entries[1].ToUserID)
	}
}

func TestNetLegeInvoer(t *testing.T) {
	entries := Net(nil)
	if len(entries) != 0 {
		t.Fatalf("verwacht geen posten, kreeg %d", len(entries))
	}
}

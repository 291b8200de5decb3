package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is de enige ledger-rij: een record begint als inkoop (cost bekend,
// price leeg) of direct als verkoop. Dezelfde rij wordt bij het scannen van
// de QR afgerond naar verkoop, er komt dus nooit een tweede rij voor
// hetzelfde fysieke item.
type Sale struct {
	ID          uint                `gorm:"primaryKey"`
	Description string              `gorm:"size:255"`
	Price       decimal.NullDecimal `gorm:"type:numeric(10,2)"` // leeg tot het item verkocht is
	Cost        decimal.NullDecimal `gorm:"type:numeric(10,2)"`
	TargetPrice decimal.NullDecimal `gorm:"type:numeric(10,2)"` // richtprijs, puur informatief

	OwnerUserID   uint  `gorm:"index;not null"`
	Owner         *User `gorm:"foreignKey:OwnerUserID"`
	CashierUserID *uint `gorm:"index"` // leeg zolang er alleen een inkoop is
	Cashier       *User `gorm:"foreignKey:CashierUserID"`

	// Uniek onder niet-verwijderde rijen; afgedwongen met een partiële
	// unieke index in database.Init.
	QRID *string `gorm:"column:qr_id;size:100;index"`

	IsPin           bool   `gorm:"not null;default:false"` // pin of contant bij verkoop
	PurchaseIsPin   bool   `gorm:"not null;default:false"` // pin of contant bij inkoop
	PurchaseRemarks string `gorm:"size:255"`
	ImageURL        string `gorm:"size:255"` // bestandsnaam in de uploads-map

	PurchasedAt *time.Time
	SoldAt      *time.Time `gorm:"index"`

	Processed bool `gorm:"not null;default:false"` // true zodra de rij in een verrekening zit
	Deleted   bool `gorm:"not null;default:false;index"`
	DeletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPendingPurchase: ingekocht maar nog niet verkocht.
func (s *Sale) IsPendingPurchase() bool {
	return s.PurchasedAt != nil && s.SoldAt == nil
}

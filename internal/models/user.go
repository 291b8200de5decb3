package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:100;not null"`
	Email        string `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	IsAdmin      bool   `gorm:"not null;default:false"`
	IBAN         string `gorm:"size:34"`                // rekeningnummer voor uitbetaling
	QRURL        string `gorm:"size:255"`               // betaal-QR van de eigenaar
	Active       bool   `gorm:"not null;default:true"`  // inactieve gebruikers kunnen niet inloggen en tellen niet mee
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

package database

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/manfred-witteman/flea/internal/models"
)

// Seed voegt drie ontwikkelgebruikers toe (Alice is admin). Alleen bedoeld
// voor lokaal gebruik, draait uitsluitend met SEED_USERS=1.
func Seed() {
	users := []struct {
		Name     string
		Email    string
		Password string
		IsAdmin  bool
	}{
		{Name: "Alice", Email: "alice@example.com", Password: "password", IsAdmin: true},
		{Name: "Bob", Email: "bob@example.com", Password: "password"},
		{Name: "Carla", Email: "carla@example.com", Password: "password"},
	}

	for _, u := range users {
		var count int64
		DB.Model(&models.User{}).Where("email = ?", u.Email).Count(&count)
		if count > 0 {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			logrus.Warnf("Seed: wachtwoord hashen mislukt voor %s: %v", u.Email, err)
			continue
		}

		user := models.User{
			Name:         u.Name,
			Email:        u.Email,
			PasswordHash: string(hash),
			IsAdmin:      u.IsAdmin,
			Active:       true,
		}
		if err := DB.Create(&user).Error; err != nil {
			logrus.Warnf("Seed: gebruiker %s niet aangemaakt: %v", u.Email, err)
		}
	}

	logrus.Info("Seed-gebruikers gecontroleerd")
}

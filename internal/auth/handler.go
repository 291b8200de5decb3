package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/manfred-witteman/flea/internal/config"
	"github.com/manfred-witteman/flea/internal/database"
	"github.com/manfred-witteman/flea/internal/models"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Ongeldige invoer")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		if body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "E-mail en wachtwoord vereist")
		}

		var user models.User
		if err := database.DB.Where("email = ? AND active = true", body.Email).First(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Ongeldige inlog")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Ongeldige inlog")
		}

		token, err := GenerateToken(cfg.JWTSecret, &user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token kon niet worden aangemaakt")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user": fiber.Map{
				"id":       user.ID,
				"name":     user.Name,
				"email":    user.Email,
				"is_admin": user.IsAdmin,
			},
		})
	}
}

func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := CurrentUserID(c)
		if err != nil {
			return err
		}

		var user models.User
		if err := database.DB.First(&user, userID).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Gebruiker niet gevonden")
		}

		return c.JSON(fiber.Map{
			"user": fiber.Map{
				"id":       user.ID,
				"name":     user.Name,
				"email":    user.Email,
				"is_admin": user.IsAdmin,
			},
		})
	}
}

// ListUsersHandler: actieve, niet-admin gebruikers voor de eigenaar-keuze
// bij het afrekenen, met IBAN en betaal-QR voor de uitbetaling.
func ListUsersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var users []models.User
		if err := database.DB.
			Where("active = true AND is_admin = false").
			Order("name").
			Find(&users).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gebruikers konden niet worden opgehaald")
		}

		resp := make([]fiber.Map, 0, len(users))
		for _, u := range users {
			resp = append(resp, fiber.Map{
				"id":     u.ID,
				"name":   u.Name,
				"iban":   u.IBAN,
				"qr_url": u.QRURL,
			})
		}

		return c.JSON(fiber.Map{"users": resp})
	}
}

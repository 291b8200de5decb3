package uploads

import (
	"io"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/manfred-witteman/flea/internal/apperr"
	"github.com/manfred-witteman/flea/internal/config"
)

// POST /api/uploads (multipart, veld "image")
func UploadImageHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geen bestand ontvangen")
		}

		ext := filepath.Ext(fileHeader.Filename)
		if !AllowedExtension(ext) {
			return fiber.NewError(fiber.StatusBadRequest, "Alleen JPG, PNG of GIF toegestaan")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Bestand kon niet worden gelezen")
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Bestand kon niet worden gelezen")
		}

		filename, err := Store(cfg.UploadPath, data, ext)
		if err != nil {
			return apperr.ToFiber(err)
		}

		return c.JSON(fiber.Map{
			"filename": filename,
			"url":      "/uploads/" + filename,
		})
	}
}

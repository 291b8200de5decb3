// Package uploads bewaart item-foto's op schijf. De ledger verwijst alleen
// naar bestandsnamen; een mislukte upload mag een verkoop nooit blokkeren.
package uploads

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/manfred-witteman/flea/internal/apperr"
)

var allowedExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
}

func AllowedExtension(ext string) bool {
	return allowedExtensions[strings.ToLower(strings.TrimPrefix(ext, "."))]
}

// Store schrijft de bytes weg onder een unieke naam en geeft de bestandsnaam
// terug (alleen de naam, niet het pad; de URL wordt door de server gemaakt).
func Store(uploadPath string, data []byte, ext string) (string, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if !AllowedExtension(ext) {
		return "", apperr.New(apperr.KindValidation, "Alleen JPG, PNG of GIF toegestaan")
	}

	if err := os.MkdirAll(uploadPath, 0755); err != nil {
		return "", apperr.Wrap(apperr.KindStorage, "Uploads-map niet beschikbaar", err)
	}

	filename := fmt.Sprintf("%s.%s", uuid.NewString(), ext)
	target := filepath.Join(uploadPath, filename)

	if err := os.WriteFile(target, data, 0644); err != nil {
		return "", apperr.Wrap(apperr.KindStorage, "Bestand kon niet worden opgeslagen", err)
	}

	return filename, nil
}

// Delete verwijdert een opgeslagen foto. De bestandsnaam wordt eerst tot
// basename teruggebracht zodat een rij nooit buiten de uploads-map kan
// wijzen.
func Delete(uploadPath, filename string) bool {
	if filename == "" {
		return false
	}
	target := filepath.Join(uploadPath, filepath.Base(filename))
	if _, err := os.Stat(target); err != nil {
		return false
	}
	return os.Remove(target) == nil
}

package audit

import (
	"encoding/json"
	"fmt"

	"github.com/manfred-witteman/flea/internal/database"
	"github.com/manfred-witteman/flea/internal/models"
)

type LogOptions struct {
	UserID      uint
	UserName    string
	EntityType  string
	EntityID    uint
	Action      models.AuditAction
	Description string
	After       any
}

func WriteLog(opts LogOptions) error {
	// jsonb accepteert geen lege string, dus "null" als standaard
	afterStr := "null"
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	log := models.AuditLog{
		UserID:      opts.UserID,
		UserName:    opts.UserName,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		AfterData:   afterStr,
	}

	if err := database.DB.Create(&log).Error; err != nil {
		return fmt.Errorf("audit log niet opgeslagen: %w", err)
	}

	return nil
}

// UserName zoekt de naam bij een gebruikers-id op, voor denormalisatie in
// het log. Een lege naam is geen fout; het log is best-effort.
func UserName(userID uint) string {
	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		return ""
	}
	return user.Name
}

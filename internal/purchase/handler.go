package purchase

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/manfred-witteman/flea/internal/apperr"
	"github.com/manfred-witteman/flea/internal/audit"
	"github.com/manfred-witteman/flea/internal/auth"
	"github.com/manfred-witteman/flea/internal/models"
)

type CreatePurchaseRequest struct {
	Description     string           `json:"description"`
	Cost            *decimal.Decimal `json:"cost"`
	OwnerUserID     uint             `json:"owner_user_id"`
	TargetPrice     *decimal.Decimal `json:"target_price"`
	PurchaseRemarks string           `json:"purchase_remarks"`
	PurchaseIsPin   bool             `json:"purchase_is_pin"`
	QRID            *string          `json:"qr_id"`
	ImageURL        string           `json:"image_url"`
	PurchasedAt     *string          `json:"purchased_at"` // "2006-01-02 15:04:05", leeg = nu
}

type AttachQrRequest struct {
	QRID string `json:"qr_id"`
}

type UpdatePurchaseRequest struct {
	ImageURL string `json:"image_url"`
}

type purchaseResponse struct {
	ID              uint                `json:"id"`
	Description     string              `json:"description"`
	Cost            decimal.NullDecimal `json:"cost"`
	TargetPrice     decimal.NullDecimal `json:"target_price"`
	OwnerUserID     uint                `json:"owner_user_id"`
	QRID            *string             `json:"qr_id"`
	PurchaseIsPin   bool                `json:"purchase_is_pin"`
	PurchaseRemarks string              `json:"purchase_remarks"`
	ImageURL        string              `json:"image_url"`
	PurchasedAt     *time.Time          `json:"purchased_at"`
}

func toPurchaseResponse(s models.Sale) purchaseResponse {
	return purchaseResponse{
		ID:              s.ID,
		Description:     s.Description,
		Cost:            s.Cost,
		TargetPrice:     s.TargetPrice,
		OwnerUserID:     s.OwnerUserID,
		QRID:            s.QRID,
		PurchaseIsPin:   s.PurchaseIsPin,
		PurchaseRemarks: s.PurchaseRemarks,
		ImageURL:        s.ImageURL,
		PurchasedAt:     s.PurchasedAt,
	}
}

// POST /api/purchases
func CreatePurchaseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreatePurchaseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Ongeldige invoer")
		}

		in := CreatePurchaseInput{
			Description: body.Description,
			Cost:        body.Cost,
			OwnerUserID: body.OwnerUserID,
			TargetPrice: body.TargetPrice,
			Remarks:     body.PurchaseRemarks,
			IsPin:       body.PurchaseIsPin,
			QRID:        body.QRID,
			ImageURL:    body.ImageURL,
		}

		if body.PurchasedAt != nil && *body.PurchasedAt != "" {
			t, err := parseTimestamp(*body.PurchasedAt)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "purchased_at heeft een ongeldig formaat")
			}
			in.PurchasedAt = &t
		}

		id, err := CreatePurchase(in)
		if err != nil {
			return apperr.ToFiber(err)
		}

		if userID, uerr := auth.CurrentUserID(c); uerr == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    audit.UserName(userID),
				EntityType:  "purchase",
				EntityID:    id,
				Action:      models.AuditActionCreate,
				Description: "Inkoop toegevoegd: " + body.Description,
				After:       body,
			})
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
	}
}

// GET /api/purchases
func ListPurchasesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sales, err := ListPendingPurchases()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Inkopen konden niet worden opgehaald")
		}

		resp := make([]purchaseResponse, 0, len(sales))
		for _, s := range sales {
			resp = append(resp, toPurchaseResponse(s))
		}

		return c.JSON(fiber.Map{"purchases": resp})
	}
}

// POST /api/purchases/:id/qr
func AttachQrHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Ongeldig ID")
		}

		var body AttachQrRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Ongeldige invoer")
		}

		if err := AttachQr(uint(id), body.QRID); err != nil {
			return apperr.ToFiber(err)
		}

		return c.JSON(fiber.Map{"id": id, "qr_id": body.QRID})
	}
}

// GET /api/sales/qr/:qr_id
func GetSaleByQrHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		qrID := c.Params("qr_id")
		if qrID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "QR-code is verplicht")
		}

		sale, err := ResolveByQr(qrID)
		if err != nil {
			return apperr.ToFiber(err)
		}

		return c.JSON(fiber.Map{"sale": toPurchaseResponse(*sale)})
	}
}

// PUT /api/purchases/:id
func UpdatePurchaseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Ongeldig ID")
		}

		var body UpdatePurchaseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Ongeldige invoer")
		}
		if body.ImageURL == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Ongeldige invoer")
		}

		if err := SetPurchaseImage(uint(id), body.ImageURL); err != nil {
			return apperr.ToFiber(err)
		}

		return c.JSON(fiber.Map{"id": id})
	}
}

// parseTimestamp accepteert het kassa-formaat en RFC3339.
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02 15:04:05", s, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

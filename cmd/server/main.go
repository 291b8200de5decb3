package main

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"

	"github.com/manfred-witteman/flea/internal/audit"
	"github.com/manfred-witteman/flea/internal/auth"
	"github.com/manfred-witteman/flea/internal/breakdown"
	"github.com/manfred-witteman/flea/internal/config"
	"github.com/manfred-witteman/flea/internal/database"
	"github.com/manfred-witteman/flea/internal/purchase"
	"github.com/manfred-witteman/flea/internal/sales"
	"github.com/manfred-witteman/flea/internal/settlement"
	"github.com/manfred-witteman/flea/internal/uploads"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	if cfg.SeedUsers {
		database.Seed()
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			logrus.Errorf("Onverwachte fout: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Serverfout",
			})
		},
	})

	// CORS origins staan als kommagescheiden lijst in de omgeving
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// Item-foto's worden direct als statische bestanden geserveerd
	app.Static("/uploads", cfg.UploadPath)

	api := app.Group("/api")

	// Public
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Ingelogde gebruikers
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())
	protected.Get("/users", auth.ListUsersHandler())

	// Foto-uploads
	protected.Post("/uploads", uploads.UploadImageHandler(cfg))

	// Inkopen
	protected.Post("/purchases", purchase.CreatePurchaseHandler())
	protected.Get("/purchases", purchase.ListPurchasesHandler())
	protected.Put("/purchases/:id", purchase.UpdatePurchaseHandler())
	protected.Post("/purchases/:id/qr", purchase.AttachQrHandler())

	// Verkopen
	protected.Get("/sales/qr/:qr_id", purchase.GetSaleByQrHandler())
	protected.Post("/sales", sales.CreateSaleHandler())
	protected.Get("/sales", sales.ListSalesHandler())
	protected.Delete("/sales/:id", sales.DeleteSaleHandler(cfg))

	// Omzetoverzicht
	protected.Get("/breakdown", breakdown.BreakdownHandler())
	protected.Get("/breakdown/export", breakdown.ExportBreakdownHandler())

	// Alleen beheerders
	adminRoutes := protected.Group("")
	adminRoutes.Use(auth.RequireAdmin())

	adminRoutes.Post("/settlements", settlement.ProcessSettlementHandler())
	adminRoutes.Get("/settlements", settlement.ListSettlementsHandler())
	adminRoutes.Get("/audit-logs", audit.ListAuditLogsHandler())

	logrus.Infof("Server draait op poort %s", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		logrus.Fatal(err)
	}
}

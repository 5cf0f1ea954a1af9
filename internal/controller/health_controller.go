package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type IHealthController interface {
	RegisterRoutes(app *fiber.App, api fiber.Router)
	Root(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	db       *gorm.DB
	provider string
}

func NewHealthController(db *gorm.DB, provider string) IHealthController {
	return &healthController{db: db, provider: provider}
}

func (c *healthController) RegisterRoutes(app *fiber.App, api fiber.Router) {
	app.Get("/", c.Root)
	app.Get("/health", c.Health)
	api.Get("/health", c.Health)
}

func (c *healthController) Root(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"service": "ai-tutor-be",
		"status":  "ok",
	})
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	dbStatus := "ok"
	if c.db != nil {
		sqlDB, err := c.db.DB()
		if err != nil || sqlDB.PingContext(ctx.Context()) != nil {
			dbStatus = "unavailable"
		}
	}
	return ctx.JSON(fiber.Map{
		"status":   "ok",
		"database": dbStatus,
		"provider": c.provider,
	})
}

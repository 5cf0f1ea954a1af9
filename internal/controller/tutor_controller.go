package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ai-tutor-be/internal/dto"
	"ai-tutor-be/internal/pkg/serverutils"
	"ai-tutor-be/internal/service"
)

// ITutorController serves the generation endpoints. They accept anonymous
// requests: without a bearer token the output is returned but never stored.
type ITutorController interface {
	RegisterRoutes(r fiber.Router)
	Summarize(ctx *fiber.Ctx) error
	Explain(ctx *fiber.Ctx) error
	GenerateExercises(ctx *fiber.Ctx) error
}

type tutorController struct {
	service       service.ITutorService
	optionalJwt   fiber.Handler
	anonRateLimit fiber.Handler
}

func NewTutorController(service service.ITutorService, optionalJwt fiber.Handler, anonRateLimit fiber.Handler) ITutorController {
	return &tutorController{
		service:       service,
		optionalJwt:   optionalJwt,
		anonRateLimit: anonRateLimit,
	}
}

func (c *tutorController) RegisterRoutes(r fiber.Router) {
	r.Post("/summarize", c.optionalJwt, c.anonRateLimit, c.Summarize)
	r.Post("/explain", c.optionalJwt, c.anonRateLimit, c.Explain)
	r.Post("/generate_exercises", c.optionalJwt, c.anonRateLimit, c.GenerateExercises)
}

func (c *tutorController) Summarize(ctx *fiber.Ctx) error {
	userId, req, err := c.parseGenerateRequest(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Summarize(ctx.Context(), userId, req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *tutorController) Explain(ctx *fiber.Ctx) error {
	userId, req, err := c.parseGenerateRequest(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Explain(ctx.Context(), userId, req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *tutorController) GenerateExercises(ctx *fiber.Ctx) error {
	userId, req, err := c.parseGenerateRequest(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GenerateExercises(ctx.Context(), userId, req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *tutorController) parseGenerateRequest(ctx *fiber.Ctx) (*uuid.UUID, *dto.GenerateRequest, error) {
	var req dto.GenerateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return nil, nil, err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, nil, err
	}
	return currentUserId(ctx), &req, nil
}

// currentUserId returns the authenticated user id or nil for anonymous calls.
func currentUserId(ctx *fiber.Ctx) *uuid.UUID {
	raw := ctx.Locals("user_id")
	if raw == nil {
		return nil
	}
	userIdStr, ok := raw.(string)
	if !ok {
		return nil
	}
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return nil
	}
	return &userId
}

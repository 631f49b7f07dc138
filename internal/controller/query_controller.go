package controller

import (
	"bbp-finder-be/internal/dto"
	"bbp-finder-be/internal/pkg/serverutils"
	"bbp-finder-be/internal/service"
	"bbp-finder-be/pkg/store"

	"github.com/gofiber/fiber/v2"
)

type IQueryController interface {
	RegisterRoutes(r fiber.Router, sessionGuard fiber.Handler)
	Query(ctx *fiber.Ctx) error
}

type queryController struct {
	service service.IQueryService
}

func NewQueryController(service service.IQueryService) IQueryController {
	return &queryController{service: service}
}

func (c *queryController) RegisterRoutes(r fiber.Router, sessionGuard fiber.Handler) {
	h := r.Group("/query/v1")
	h.Use(sessionGuard)
	h.Post("", c.Query)
}

func (c *queryController) Query(ctx *fiber.Ctx) error {
	session := ctx.Locals("session").(*store.Session)

	var req dto.QueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Query(ctx.Context(), session, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success query", res))
}

package controller

import (
	"bbp-finder-be/internal/dto"
	"bbp-finder-be/internal/pkg/serverutils"
	"bbp-finder-be/internal/service"
	"bbp-finder-be/pkg/store"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router, sessionGuard fiber.Handler)
	Create(ctx *fiber.Ctx) error
	End(ctx *fiber.Ctx) error
	GetSettings(ctx *fiber.Ctx) error
	SetCredential(ctx *fiber.Ctx) error
	SetModel(ctx *fiber.Ctx) error
}

type sessionController struct {
	service service.ISessionService
}

func NewSessionController(service service.ISessionService) ISessionController {
	return &sessionController{service: service}
}

func (c *sessionController) RegisterRoutes(r fiber.Router, sessionGuard fiber.Handler) {
	h := r.Group("/session/v1")
	h.Post("", c.Create)
	h.Delete("", sessionGuard, c.End)

	s := r.Group("/settings/v1")
	s.Use(sessionGuard)
	s.Get("", c.GetSettings)
	s.Put("/credential", c.SetCredential)
	s.Put("/model", c.SetModel)
}

func (c *sessionController) Create(ctx *fiber.Ctx) error {
	res, err := c.service.Create()
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *sessionController) End(ctx *fiber.Ctx) error {
	session := ctx.Locals("session").(*store.Session)

	c.service.End(session)

	return ctx.JSON(serverutils.SuccessResponse[any]("Success end session", nil))
}

func (c *sessionController) GetSettings(ctx *fiber.Ctx) error {
	session := ctx.Locals("session").(*store.Session)

	res := c.service.GetSettings(session)

	return ctx.JSON(serverutils.SuccessResponse("Success get settings", res))
}

func (c *sessionController) SetCredential(ctx *fiber.Ctx) error {
	session := ctx.Locals("session").(*store.Session)

	var req dto.SetCredentialRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	c.service.SetCredential(session, &req)

	return ctx.JSON(serverutils.SuccessResponse[any]("Success set credential", nil))
}

func (c *sessionController) SetModel(ctx *fiber.Ctx) error {
	session := ctx.Locals("session").(*store.Session)

	var req dto.SetModelRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	c.service.SetModel(session, &req)

	return ctx.JSON(serverutils.SuccessResponse[any]("Success set model", nil))
}

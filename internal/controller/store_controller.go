package controller

import (
	"io"

	"bbp-finder-be/internal/dto"
	"bbp-finder-be/internal/pkg/serverutils"
	"bbp-finder-be/internal/service"
	"bbp-finder-be/pkg/store"

	"github.com/gofiber/fiber/v2"
)

type IStoreController interface {
	RegisterRoutes(r fiber.Router, sessionGuard fiber.Handler)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Activate(ctx *fiber.Ctx) error
	ClearActive(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	ListFiles(ctx *fiber.Ctx) error
	Upload(ctx *fiber.Ctx) error
	DeleteFile(ctx *fiber.Ctx) error
}

type storeController struct {
	service service.IStoreService
}

func NewStoreController(service service.IStoreService) IStoreController {
	return &storeController{service: service}
}

func (c *storeController) RegisterRoutes(r fiber.Router, sessionGuard fiber.Handler) {
	h := r.Group("/store/v1")
	h.Use(sessionGuard)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Delete("/active", c.ClearActive)
	h.Put(":id/activate", c.Activate)
	h.Delete(":id", c.Delete)
	h.Get(":id/files", c.ListFiles)
	h.Post(":id/files", c.Upload)
	h.Delete(":id/files/:fileId", c.DeleteFile)
}

func (c *storeController) GetAll(ctx *fiber.Ctx) error {
	session := ctx.Locals("session").(*store.Session)

	res, err := c.service.GetAll(ctx.Context(), session)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all stores", res))
}

func (c *storeController) Create(ctx *fiber.Ctx) error {
	session := ctx.Locals("session").(*store.Session)

	var req dto.CreateStoreRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), session, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create store", res))
}

func (c *storeController) Activate(ctx *fiber.Ctx) error {
	session := ctx.Locals("session").(*store.Session)
	id := ctx.Params("id")

	if err := c.service.Activate(session, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success set active store", nil))
}

func (c *storeController) ClearActive(ctx *fiber.Ctx) error {
	session := ctx.Locals("session").(*store.Session)

	c.service.ClearActive(session)

	return ctx.JSON(serverutils.SuccessResponse[any]("Success clear active store", nil))
}

func (c *storeController) Delete(ctx *fiber.Ctx) error {
	session := ctx.Locals("session").(*store.Session)
	id := ctx.Params("id")

	res, err := c.service.Delete(ctx.Context(), session, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete store", res))
}

func (c *storeController) ListFiles(ctx *fiber.Ctx) error {
	session := ctx.Locals("session").(*store.Session)
	id := ctx.Params("id")

	res, err := c.service.ListFiles(ctx.Context(), session, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list store files", res))
}

func (c *storeController) Upload(ctx *fiber.Ctx) error {
	session := ctx.Locals("session").(*store.Session)
	id := ctx.Params("id")

	form, err := ctx.MultipartForm()
	if err != nil {
		return err
	}

	inputs := make([]service.UploadInput, 0)
	for _, header := range form.File["files"] {
		f, err := header.Open()
		if err != nil {
			return err
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return err
		}
		inputs = append(inputs, service.UploadInput{
			Filename: header.Filename,
			Content:  content,
		})
	}

	res, err := c.service.Upload(ctx.Context(), session, id, inputs)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Upload finished", res))
}

func (c *storeController) DeleteFile(ctx *fiber.Ctx) error {
	session := ctx.Locals("session").(*store.Session)
	id := ctx.Params("id")
	fileID := ctx.Params("fileId")

	if err := c.service.DeleteFile(ctx.Context(), session, id, fileID); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete file", nil))
}

package serverutils

import (
	"errors"

	"bbp-finder-be/internal/pkg/apperr"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps the error taxonomy onto HTTP statuses:
// ValidationError -> 400, RemoteError -> 502 (401 when the remote rejected
// the credential), TimeoutError -> 504. None of them are fatal; the user
// may retry the same action.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError

		var validationErr *apperr.ValidationError
		var remoteErr *apperr.RemoteError
		var timeoutErr *apperr.TimeoutError
		var fiberErr *fiber.Error

		switch {
		case errors.As(err, &validationErr):
			code = fiber.StatusBadRequest
		case errors.As(err, &remoteErr):
			if remoteErr.Unauthorized() {
				code = fiber.StatusUnauthorized
			} else {
				code = fiber.StatusBadGateway
			}
		case errors.As(err, &timeoutErr):
			code = fiber.StatusGatewayTimeout
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
		}

		return ctx.Status(code).JSON(ErrorResponse(code, err.Error()))
	}
}

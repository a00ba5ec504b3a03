package serverutils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest runs the struct tags and converts the first failure to a
// 400 fiber error so the error handler can shape the envelope.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			e := errs[0]
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("campo inválido: %s (%s)", e.Field(), e.Tag()))
		}
		return fiber.NewError(fiber.StatusBadRequest, "requisição inválida")
	}
	return nil
}

package utils

import (
	"encoding/json"
	"strconv"

	httpError "storefront-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
)

// Result is the envelope every usecase returns.
type Result struct {
	Data  interface{}
	Error error
}

type responseBody struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
	Code    int         `json:"code"`
}

func Response(data interface{}, message string, code int, ctx *fiber.Ctx) error {
	return ctx.Status(code).JSON(responseBody{
		Success: true,
		Data:    data,
		Message: message,
		Code:    code,
	})
}

func ResponseError(err error, ctx *fiber.Ctx) error {
	if commonErr, ok := err.(*httpError.CommonError); ok {
		return ctx.Status(commonErr.Code).JSON(responseBody{
			Success: false,
			Message: commonErr.Message,
			Code:    commonErr.Code,
		})
	}

	return ctx.Status(fiber.StatusInternalServerError).JSON(responseBody{
		Success: false,
		Message: err.Error(),
		Code:    fiber.StatusInternalServerError,
	})
}

// ConvertString best-effort marshals anything for log meta fields.
func ConvertString(data interface{}) string {
	switch v := data.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case error:
		return v.Error()
	}
	marshaled, err := json.Marshal(data)
	if err != nil {
		return ""
	}
	return string(marshaled)
}

func ConvertInt(data interface{}) int {
	switch v := data.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	}
	return 0
}

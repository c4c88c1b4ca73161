package httperror

import "github.com/gofiber/fiber/v2"

// CommonError is the error shape usecases hand back to controllers.
type CommonError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *CommonError) Error() string {
	return e.Message
}

func NewBadRequest() *CommonError {
	return &CommonError{Code: fiber.StatusBadRequest, Message: "bad request"}
}

func NewUnauthorized() *CommonError {
	return &CommonError{Code: fiber.StatusUnauthorized, Message: "unauthorized"}
}

func NewNotFound() *CommonError {
	return &CommonError{Code: fiber.StatusNotFound, Message: "not found"}
}

func NewConflict() *CommonError {
	return &CommonError{Code: fiber.StatusConflict, Message: "conflict"}
}

// NewUnprocessableEntity is used when a request is well formed but its
// content fails a server-side check, e.g. a client total that does not
// match the recomputed amount.
func NewUnprocessableEntity() *CommonError {
	return &CommonError{Code: fiber.StatusUnprocessableEntity, Message: "unprocessable entity"}
}

func NewInternalServerError() *CommonError {
	return &CommonError{Code: fiber.StatusInternalServerError, Message: "internal server error"}
}

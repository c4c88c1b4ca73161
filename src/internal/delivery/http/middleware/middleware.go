package middleware

import (
	"fmt"
	"strings"
	"time"

	httpError "storefront-service/src/pkg/http-error"
	"storefront-service/src/pkg/log"
	"storefront-service/src/pkg/token"
	"storefront-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

const userContextKey = "auth_user"

// NewLogger logs every request with its latency and status code.
func NewLogger(logger log.Log) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		logger.Info(
			"http",
			fmt.Sprintf("%s %s -> %d (%s)", ctx.Method(), ctx.Path(), ctx.Response().StatusCode(), time.Since(start)),
			"request",
			ctx.IP(),
		)
		return err
	}
}

// VerifyBearer guards the admin surface: it requires a valid bearer
// token and stashes the claim metadata for the controllers.
func VerifyBearer(cfg *viper.Viper, logger log.Log) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, "Bearer ") {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "missing bearer token"
			return utils.ResponseError(errObj, ctx)
		}

		claim, err := token.Verify(cfg, strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			logger.Error("middleware", fmt.Sprintf("Token verification failed: %v", err), "VerifyBearer", ctx.IP())
			errObj := httpError.NewUnauthorized()
			errObj.Message = "invalid or expired token"
			return utils.ResponseError(errObj, ctx)
		}

		ctx.Locals(userContextKey, &claim.Metadata)
		return ctx.Next()
	}
}

// GetUser returns the authenticated admin's claim metadata. Only valid
// behind VerifyBearer.
func GetUser(ctx *fiber.Ctx) *token.Metadata {
	if metadata, ok := ctx.Locals(userContextKey).(*token.Metadata); ok {
		return metadata
	}
	return &token.Metadata{}
}

package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"storefront-service/src/internal/entity"
	"storefront-service/src/internal/model"
	"storefront-service/src/internal/repository"
	httpError "storefront-service/src/pkg/http-error"
	"storefront-service/src/pkg/log"
	"storefront-service/src/pkg/token"
	"storefront-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/hibiken/asynq"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase struct {
	Log        log.Log
	Validate   *validator.Validate
	AdminUsers *repository.AdminUserRepository
	Config     *viper.Viper
	Enqueuer   TaskEnqueuer
}

func NewAuthUseCase(
	logger log.Log,
	validate *validator.Validate,
	adminUsers *repository.AdminUserRepository,
	cfg *viper.Viper,
	enqueuer TaskEnqueuer,
) *AuthUseCase {
	return &AuthUseCase{
		Log:        logger,
		Validate:   validate,
		AdminUsers: adminUsers,
		Config:     cfg,
		Enqueuer:   enqueuer,
	}
}

func (c *AuthUseCase) Login(ctx context.Context, request *model.LoginRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	user, err := c.AdminUsers.FindByEmail(ctx, request.Email)
	if err != nil {
		errObj := httpError.NewUnauthorized()
		errObj.Message = "invalid credentials"
		result.Error = errObj
		c.Log.Error("auth-usecase", fmt.Sprintf("Login failed for %s: %v", request.Email, err), "Login", "")
		return result
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)); err != nil {
		errObj := httpError.NewUnauthorized()
		errObj.Message = "invalid credentials"
		result.Error = errObj
		c.Log.Error("auth-usecase", "Password mismatch", "Login", request.Email)
		return result
	}

	signed, err := token.Generate(c.Config, token.Metadata{
		UserID:   fmt.Sprintf("%d", user.ID),
		FullName: user.FullName,
		Role:     user.Role,
	})
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("Error signing token: %v", err)
		result.Error = errObj
		c.Log.Error("auth-usecase", errObj.Message, "Login", request.Email)
		return result
	}

	result.Data = &model.LoginResponse{
		Token:    signed,
		FullName: user.FullName,
		Role:     user.Role,
	}
	return result
}

func (c *AuthUseCase) Register(ctx context.Context, request *model.RegisterAdminRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	if _, err := c.AdminUsers.FindByEmail(ctx, request.Email); err == nil {
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("account %s already exists", request.Email)
		result.Error = errObj
		return result
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("Error hashing password: %v", err)
		result.Error = errObj
		c.Log.Error("auth-usecase", errObj.Message, "Register", request.Email)
		return result
	}

	user := &entity.AdminUser{
		Email:        request.Email,
		FullName:     request.FullName,
		PasswordHash: string(hash),
		Role:         request.Role,
	}
	id, err := c.AdminUsers.Create(ctx, user)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("Error creating admin user: %v", err)
		result.Error = errObj
		c.Log.Error("auth-usecase", errObj.Message, "Register", request.Email)
		return result
	}
	user.ID = id

	if c.Enqueuer != nil {
		payload, _ := json.Marshal(AdminSignupPayload{
			Email:    request.Email,
			FullName: request.FullName,
			Role:     request.Role,
		})
		if _, err := c.Enqueuer.EnqueueContext(ctx, asynq.NewTask(TypeEmailAdminSignup, payload), asynq.MaxRetry(3)); err != nil {
			c.Log.Error("auth-usecase", fmt.Sprintf("Failed to enqueue signup mail: %v", err), "Register", request.Email)
		}
	}

	c.Log.Info("auth-usecase", "Admin user created", "Register", request.Email)
	result.Data = map[string]interface{}{"id": user.ID, "email": user.Email}
	return result
}

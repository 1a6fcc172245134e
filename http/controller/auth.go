package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tnqbao/gau-photo-service/entity"
	"github.com/tnqbao/gau-photo-service/http/controller/dto"
	"github.com/tnqbao/gau-photo-service/service"
	"github.com/tnqbao/gau-photo-service/utils"
	"golang.org/x/crypto/bcrypt"
)

func (ctrl *Controller) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON422(c, "Invalid registration payload")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to hash password")
		utils.JSON500(c, "Failed to register")
		return
	}

	user := &entity.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := ctrl.Repository.UserRepo.Create(ctx, user); err != nil {
		if errors.Is(err, service.ErrValidation) {
			utils.JSON409(c, "Email is already registered")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to create user")
		utils.JSON500(c, "Failed to register")
		return
	}

	token, err := utils.GenerateToken(user.ID, ctrl.Config.EnvConfig)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to issue token for %s", user.ID)
		utils.JSON500(c, "Failed to register")
		return
	}

	utils.JSON201(c, dto.AuthResponse{
		Token: token,
		User:  &dto.AuthUser{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

func (ctrl *Controller) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON422(c, "Invalid login payload")
		return
	}

	user, err := ctrl.Repository.UserRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.JSON401(c, "Invalid credentials")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to look up user by email")
		utils.JSON500(c, "Failed to login")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		utils.JSON401(c, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID, ctrl.Config.EnvConfig)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to issue token for %s", user.ID)
		utils.JSON500(c, "Failed to login")
		return
	}

	utils.JSON200(c, dto.AuthResponse{
		Token: token,
		User:  &dto.AuthUser{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

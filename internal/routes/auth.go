package routes

import (
	"net/http"

	"Vaquinha/internal/contracts"
	"Vaquinha/internal/domain/auth"
	"Vaquinha/internal/domain/user"
	appErrors "Vaquinha/internal/errors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Authenticate(c *gin.Context) {
	var body contracts.LoginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.AuthService.Login(ctx, auth.Login{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.JwtService.GenerateToken(entity)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AuthResponse{
		Message: "Login realizado com sucesso",
		User:    entity.Name,
		Token:   token,
	})
}

func (h *Handler) Registration(c *gin.Context) {
	var body contracts.UserCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	entity := user.User{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
	}

	ctx := c.Request.Context()
	if err := h.AuthService.Register(ctx, &entity); err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.JwtService.GenerateToken(&entity)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.AuthResponse{
		Message: "Conta criada com sucesso",
		User:    entity.Name,
		Token:   token,
	})
}

func (h *Handler) GoogleAuth(c *gin.Context) {
	var body contracts.GoogleAuthRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.AuthService.GoogleLogin(ctx, body.Credential)
	if err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.JwtService.GenerateToken(entity)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GoogleAuthResponse{
		Message: "Login realizado com sucesso",
		User:    entity.Name,
		Token:   token,
	})
}

package handler

import (
	"main/dto"
	"main/model"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service *usecase.UsersService
}

func NewAuthHandler(service *usecase.UsersService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		utils.TrackAuthAttempt("failure", "register")
		respondDomainError(c, err)
		return
	}

	token, err := services.GenerateJWT(user.UserID)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}

	utils.TrackAuthAttempt("success", "register")
	utils.Created(c, dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.TrackAuthAttempt("failure", "login")
		// Do not reveal whether the email or the password was wrong.
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	token, err := services.GenerateJWT(user.UserID)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}

	utils.TrackAuthAttempt("success", "login")
	utils.Success(c, dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	user, err := h.service.Profile(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.Success(c, dto.ToUserResponse(user))
}

func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req model.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.service.UpdatePassword(c.Request.Context(), userID, &req); err != nil {
		respondDomainError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "Password updated successfully"})
}

func (h *AuthHandler) UpdateSettings(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req model.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	settings, err := h.service.UpdateSettings(c.Request.Context(), userID, &req)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.Success(c, settings)
}

func (h *AuthHandler) Leaderboard(c *gin.Context) {
	entries, err := h.service.Leaderboard(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.Success(c, entries)
}

package handler

import (
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type RewardsHandler struct {
	service *usecase.RewardsService
}

func NewRewardsHandler(service *usecase.RewardsService) *RewardsHandler {
	return &RewardsHandler{service: service}
}

func (h *RewardsHandler) GetRewards(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	rewards, err := h.service.ListRewards(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.Success(c, rewards)
}

func (h *RewardsHandler) CollectReward(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req struct {
		Type        model.RewardType `json:"type" binding:"required"`
		Title       string           `json:"title" binding:"required,max=100"`
		Description string           `json:"description" binding:"required,max=500"`
		Icon        string           `json:"icon"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	reward := &model.Reward{
		UserID:      userID,
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
	}

	if err := h.service.CollectReward(c.Request.Context(), reward); err != nil {
		respondDomainError(c, err)
		return
	}

	utils.Created(c, reward)
}

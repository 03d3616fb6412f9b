package handler

import (
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type AchievementsHandler struct {
	service *usecase.AchievementsService
	users   *usecase.UsersService
}

func NewAchievementsHandler(service *usecase.AchievementsService, users *usecase.UsersService) *AchievementsHandler {
	return &AchievementsHandler{service: service, users: users}
}

// GetAchievements returns the catalog annotated with the caller's
// unlocked set.
func (h *AchievementsHandler) GetAchievements(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	user, err := h.users.Profile(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	catalog, err := h.service.ListCatalog(c.Request.Context(), user.Achievements)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	type entry struct {
		model.Achievement
		Unlocked bool `json:"unlocked"`
	}
	entries := make([]entry, 0, len(catalog))
	for _, a := range catalog {
		entries = append(entries, entry{
			Achievement: a,
			Unlocked:    user.HasAchievement(a.AchievementID),
		})
	}

	utils.Success(c, entries)
}

package handler

import (
	"time"

	"main/dto"
	"main/model"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type HabitsHandler struct {
	service   *usecase.HabitsService
	users     *usecase.UsersService
	scheduler *services.ReminderScheduler
}

func NewHabitsHandler(service *usecase.HabitsService, users *usecase.UsersService, scheduler *services.ReminderScheduler) *HabitsHandler {
	return &HabitsHandler{service: service, users: users, scheduler: scheduler}
}

func (h *HabitsHandler) CreateHabit(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req struct {
		Title           string           `json:"title" binding:"required,max=100"`
		Description     string           `json:"description" binding:"max=500"`
		Category        string           `json:"category"`
		Frequency       model.Frequency  `json:"frequency"`
		CustomDays      []string         `json:"custom_days"`
		TimeOfDay       model.TimeOfDay  `json:"time_of_day"`
		SpecificTime    string           `json:"specific_time"`
		ReminderEnabled bool             `json:"reminder_enabled"`
		ReminderTime    string           `json:"reminder_time"`
		Difficulty      model.Difficulty `json:"difficulty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	habit := &model.Habit{
		UserID:          userID,
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		Frequency:       req.Frequency,
		CustomDays:      req.CustomDays,
		TimeOfDay:       req.TimeOfDay,
		SpecificTime:    req.SpecificTime,
		ReminderEnabled: req.ReminderEnabled,
		ReminderTime:    req.ReminderTime,
		Difficulty:      req.Difficulty,
	}

	if err := h.service.CreateHabit(c.Request.Context(), habit); err != nil {
		respondDomainError(c, err)
		return
	}

	if h.scheduler != nil {
		h.scheduler.Schedule(habit)
	}

	utils.Created(c, dto.ToHabitResponse(habit, time.Now()))
}

func (h *HabitsHandler) GetHabits(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	habits, err := h.service.GetUserHabits(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.Success(c, dto.ToHabitResponses(habits, time.Now()))
}

func (h *HabitsHandler) GetHabit(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	habit, err := h.service.GetHabit(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.Success(c, dto.ToHabitResponse(habit, time.Now()))
}

func (h *HabitsHandler) UpdateHabit(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var updates model.Habit
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	habit, err := h.service.UpdateHabit(c.Request.Context(), c.Param("id"), userID, &updates)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	if h.scheduler != nil {
		h.scheduler.Schedule(habit)
	}

	utils.Success(c, dto.ToHabitResponse(habit, time.Now()))
}

func (h *HabitsHandler) DeleteHabit(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	habitID := c.Param("id")
	if err := h.service.DeleteHabit(c.Request.Context(), habitID, userID); err != nil {
		respondDomainError(c, err)
		return
	}

	if h.scheduler != nil {
		h.scheduler.Cancel(habitID)
	}

	utils.Success(c, gin.H{"message": "Habit deleted successfully"})
}

// CompleteHabit records today's completion and returns the updated
// habit together with the XP outcome.
func (h *HabitsHandler) CompleteHabit(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	now := time.Now()
	user, err := h.users.Profile(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	previousLevel := user.Level

	result, err := h.service.CompleteHabit(c.Request.Context(), c.Param("id"), userID, now)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	// A completion changed total XP, so the cached leaderboard is stale.
	h.users.InvalidateLeaderboard(c.Request.Context())

	// Today's reminder slot no longer applies to a completed habit.
	if h.scheduler != nil {
		h.scheduler.Schedule(result.Habit)
	}

	utils.Success(c, dto.ToCompletionResponse(result, previousLevel, now))
}

func (h *HabitsHandler) GetStats(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	stats, err := h.service.GetHabitStats(c.Request.Context(), userID, time.Now())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.Success(c, stats)
}

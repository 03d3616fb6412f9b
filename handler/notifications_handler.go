package handler

import (
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type NotificationsHandler struct {
	service *usecase.NotificationsService
}

func NewNotificationsHandler(service *usecase.NotificationsService) *NotificationsHandler {
	return &NotificationsHandler{service: service}
}

func (h *NotificationsHandler) CreateNotification(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req struct {
		Type      model.NotificationType `json:"type"`
		Title     string                 `json:"title" binding:"required,max=200"`
		Message   string                 `json:"message" binding:"required,max=1000"`
		ActionURL string                 `json:"action_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	notification, err := h.service.Dispatch(c.Request.Context(), model.Notification{
		UserID:    userID,
		Type:      req.Type,
		Title:     req.Title,
		Message:   req.Message,
		ActionURL: req.ActionURL,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.Created(c, notification)
}

func (h *NotificationsHandler) GetNotifications(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	notifications, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.Success(c, notifications)
}

func (h *NotificationsHandler) MarkRead(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	notification, err := h.service.MarkRead(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.Success(c, notification)
}

func (h *NotificationsHandler) MarkAllRead(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.service.MarkAllRead(c.Request.Context(), userID); err != nil {
		respondDomainError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "All notifications marked as read"})
}

func (h *NotificationsHandler) DeleteNotification(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondDomainError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "Notification deleted"})
}

func (h *NotificationsHandler) DeleteReadNotifications(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteAllRead(c.Request.Context(), userID); err != nil {
		respondDomainError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "Read notifications cleared"})
}

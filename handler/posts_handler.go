package handler

import (
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type PostsHandler struct {
	service *usecase.PostsService
}

func NewPostsHandler(service *usecase.PostsService) *PostsHandler {
	return &PostsHandler{service: service}
}

func (h *PostsHandler) CreatePost(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req struct {
		Content    string           `json:"content" binding:"required,max=1000"`
		Image      string           `json:"image"`
		Visibility model.Visibility `json:"visibility"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	post := &model.Post{
		UserID:     userID,
		Content:    req.Content,
		Image:      req.Image,
		Visibility: req.Visibility,
	}

	if err := h.service.CreatePost(c.Request.Context(), post); err != nil {
		respondDomainError(c, err)
		return
	}

	utils.Created(c, post)
}

func (h *PostsHandler) GetPosts(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	posts, err := h.service.ListPosts(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.Success(c, posts)
}

func (h *PostsHandler) GetPost(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	post, err := h.service.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.Success(c, post)
}

func (h *PostsHandler) DeletePost(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.service.DeletePost(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondDomainError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "Post deleted"})
}

func (h *PostsHandler) ToggleLike(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	post, err := h.service.ToggleLike(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.Success(c, post)
}

func (h *PostsHandler) AddComment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req struct {
		Text string `json:"text" binding:"required,max=500"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), c.Param("id"), userID, req.Text)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.Created(c, comment)
}

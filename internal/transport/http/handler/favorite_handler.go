package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blogpress/internal/domain"
	resp "blogpress/internal/transport/http/response"
)

type FavoriteHandler struct {
	favorites domain.FavoriteRepository
	log       *zap.Logger
}

func NewFavoriteHandler(favorites domain.FavoriteRepository, log *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites, log: log}
}

type favoriteIn struct {
	BlogID string `json:"blogId" binding:"required"`
}

// POST /api/favorites 第二次收藏同一篇返回冲突，不是静默成功
func (h *FavoriteHandler) Add(c *gin.Context) {
	var in favoriteIn
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err.Error())
		return
	}
	if err := h.favorites.Add(c.Request.Context(), c.GetString("userId"), in.BlogID); err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, resp.OK(gin.H{"message": "added to favorites"}))
}

// DELETE /api/favorites/:blogId 幂等，删不存在的行也返回成功
func (h *FavoriteHandler) Remove(c *gin.Context) {
	if err := h.favorites.Remove(c.Request.Context(), c.GetString("userId"), c.Param("blogId")); err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(gin.H{"message": "removed from favorites"}))
}

// GET /api/favorites 按收藏时间倒序
func (h *FavoriteHandler) List(c *gin.Context) {
	items, err := h.favorites.ListForUser(c.Request.Context(), c.GetString("userId"))
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	if items == nil {
		items = []domain.BlogSummary{}
	}
	c.JSON(http.StatusOK, resp.OK(items))
}

// GET /api/favorites/check/:blogId
func (h *FavoriteHandler) Check(c *gin.Context) {
	ok, err := h.favorites.IsFavorited(c.Request.Context(), c.GetString("userId"), c.Param("blogId"))
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(gin.H{"isFavorited": ok}))
}

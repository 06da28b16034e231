package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blogpress/internal/domain"
	resp "blogpress/internal/transport/http/response"
	"blogpress/pkg/utils"
)

// 单张图片（内嵌编码后）最大 5MB，超限在边界直接拒绝
const maxImageBytes = 5 << 20

type BlogHandler struct {
	blogs domain.BlogRepository
	log   *zap.Logger
}

func NewBlogHandler(blogs domain.BlogRepository, log *zap.Logger) *BlogHandler {
	return &BlogHandler{blogs: blogs, log: log}
}

type blogIn struct {
	Title    string   `json:"title"    binding:"required,max=255"`
	Content  string   `json:"content"  binding:"required"`
	Category string   `json:"category" binding:"required,max=64"`
	Images   []string `json:"images"`
}

// GET /api/blogs?category=&search=&authorId=
func (h *BlogHandler) List(c *gin.Context) {
	f := domain.BlogFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		AuthorID: c.Query("authorId"),
	}
	items, err := h.blogs.List(c.Request.Context(), f)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	if items == nil {
		items = []domain.BlogSummary{}
	}
	c.JSON(http.StatusOK, resp.OK(items))
}

// GET /api/blogs/:id
func (h *BlogHandler) Get(c *gin.Context) {
	d, err := h.blogs.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(d))
}

// POST /api/blogs 路由挂了 creator 闸门，这里再校验一次身份是双保险
func (h *BlogHandler) Create(c *gin.Context) {
	if c.GetString("role") != domain.RoleCreator {
		c.JSON(http.StatusForbidden, resp.Error(resp.CodeForbidden, "only creators can post blogs"))
		return
	}
	var in blogIn
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err.Error())
		return
	}
	if err := checkImages(in.Images); err != nil {
		writeErr(c, h.log, err)
		return
	}
	b := &domain.Blog{
		ID:       utils.NewID(),
		Title:    in.Title,
		Content:  in.Content,
		Category: in.Category,
		AuthorID: c.GetString("userId"),
	}
	if err := h.blogs.Create(c.Request.Context(), b, in.Images); err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, resp.OK(gin.H{"blogId": b.ID}))
}

// PUT /api/blogs/:id 作者本人限定，图片集合整体替换
func (h *BlogHandler) Update(c *gin.Context) {
	var in blogIn
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err.Error())
		return
	}
	if err := checkImages(in.Images); err != nil {
		writeErr(c, h.log, err)
		return
	}
	err := h.blogs.Update(c.Request.Context(), c.Param("id"), c.GetString("userId"), domain.BlogChange{
		Title:    in.Title,
		Content:  in.Content,
		Category: in.Category,
		Images:   in.Images,
	})
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(gin.H{"id": c.Param("id")}))
}

// DELETE /api/blogs/:id
func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.blogs.Delete(c.Request.Context(), c.Param("id"), c.GetString("userId")); err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(gin.H{"id": c.Param("id")}))
}

func checkImages(images []string) error {
	for i, img := range images {
		if len(img) > maxImageBytes {
			return domain.Validation(fmt.Sprintf("image %d exceeds the 5MB limit", i))
		}
	}
	return nil
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blogpress/internal/core/auth"
	"blogpress/internal/domain"
	"blogpress/internal/service"
	"blogpress/internal/transport/http/middleware"
	resp "blogpress/internal/transport/http/response"
)

type AuthHandler struct {
	svc   *service.AuthService
	users domain.UserRepository
	jwter *auth.JWTer
	log   *zap.Logger
}

func NewAuthHandler(svc *service.AuthService, users domain.UserRepository, jwter *auth.JWTer, log *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, users: users, jwter: jwter, log: log}
}

type registerIn struct {
	FirstName string `json:"firstName" binding:"required,max=64"`
	LastName  string `json:"lastName"  binding:"required,max=64"`
	Email     string `json:"email"     binding:"required,email"`
	Password  string `json:"password"  binding:"required"`
	Role      string `json:"role"      binding:"required"`
	Category  string `json:"category"  binding:"omitempty,max=64"`
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var in registerIn
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err.Error())
		return
	}
	u, err := h.svc.Register(c.Request.Context(), service.RegisterInput{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
		Role:      in.Role,
		Category:  in.Category,
	})
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, resp.OK(gin.H{"userId": u.ID}))
}

type loginIn struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login 成功后通过 http-only cookie 下发会话 token
func (h *AuthHandler) Login(c *gin.Context) {
	var in loginIn
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err.Error())
		return
	}
	u, err := h.svc.Authenticate(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	tok, err := h.jwter.Issue(u.ID, u.Email, u.Role, u.Category)
	if err != nil {
		writeErr(c, h.log, domain.Internal("issue token failed", err))
		return
	}
	c.SetCookie(middleware.TokenCookie, tok, int(h.jwter.TTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, resp.OK(gin.H{"user": userView(u)}))
}

// POST /api/auth/logout 服务端没有会话状态，注销只是清客户端 cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, resp.OK(gin.H{"message": "logged out"}))
}

// GET /api/auth/check 任何 token 问题都按未登录处理，永不报错
func (h *AuthHandler) Check(c *gin.Context) {
	tok := middleware.TokenFromRequest(c)
	if tok == "" {
		c.JSON(http.StatusOK, resp.OK(gin.H{"authenticated": false}))
		return
	}
	claims, err := h.jwter.Parse(tok)
	if err != nil {
		c.JSON(http.StatusOK, resp.OK(gin.H{"authenticated": false}))
		return
	}
	// 用户行可能在 token 有效期内被删，回表确认
	u, err := h.users.FindByID(c.Request.Context(), claims.UID)
	if err != nil || u == nil {
		c.JSON(http.StatusOK, resp.OK(gin.H{"authenticated": false}))
		return
	}
	c.JSON(http.StatusOK, resp.OK(gin.H{"authenticated": true, "user": userView(u)}))
}

func userView(u *domain.User) gin.H {
	return gin.H{
		"userId":    u.ID,
		"firstName": u.FirstName,
		"lastName":  u.LastName,
		"role":      u.Role,
		"category":  u.Category,
	}
}

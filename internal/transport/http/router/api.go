package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"blogpress/internal/core/auth"
	"blogpress/internal/repo"
	"blogpress/internal/service"
	"blogpress/internal/transport/http/handler"
	mdw "blogpress/internal/transport/http/middleware"
)

func NewAPIEngine(l *zap.Logger, db *gorm.DB, jwter *auth.JWTer) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(50<<20), // 图片内嵌 JSON，整体 50MB 封顶
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		cors.Default(),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	// 运维端点
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 依赖装配
	userRepo := repo.NewUserRepo(db)
	blogRepo := repo.NewBlogRepo(db)
	favRepo := repo.NewFavoriteRepo(db)
	authSvc := service.NewAuthService(userRepo)

	authH := handler.NewAuthHandler(authSvc, userRepo, jwter, l)
	blogH := handler.NewBlogHandler(blogRepo, l)
	favH := handler.NewFavoriteHandler(favRepo, l)

	api := r.Group("/api")

	// 认证：register/login/logout/check 都是公开路由
	authGrp := api.Group("/auth")
	{
		authGrp.POST("/register", authH.Register)
		authGrp.POST("/login", authH.Login)
		authGrp.POST("/logout", authH.Logout)
		authGrp.GET("/check", authH.Check)
	}

	// 博客：读公开；发布要 creator 角色；改/删过认证闸门后由仓储做归属校验
	blogs := api.Group("/blogs")
	{
		blogs.GET("", blogH.List)
		blogs.GET("/:id", blogH.Get)
		blogs.POST("", mdw.AuthJWT(jwter, "creator"), blogH.Create)
		blogs.PUT("/:id", mdw.AuthJWT(jwter, ""), blogH.Update)
		blogs.DELETE("/:id", mdw.AuthJWT(jwter, ""), blogH.Delete)
	}

	// 收藏：reader 专属能力
	favorites := api.Group("/favorites", mdw.AuthJWT(jwter, "reader"))
	{
		favorites.POST("", favH.Add)
		favorites.DELETE("/:blogId", favH.Remove)
		favorites.GET("", favH.List)
		favorites.GET("/check/:blogId", favH.Check)
	}

	return r
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blogpress/internal/domain"
	resp "blogpress/internal/transport/http/response"
)

// writeErr 领域错误 → 固定状态码；内部错误细节只进日志，响应里是通用文案
func writeErr(c *gin.Context, l *zap.Logger, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		de = &domain.Error{Kind: domain.KindInternal, Err: err}
	}

	switch de.Kind {
	case domain.KindValidation:
		c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, de.Msg))
	case domain.KindAuth:
		c.JSON(http.StatusUnauthorized, resp.Error(resp.CodeUnauthorized, de.Msg))
	case domain.KindForbidden:
		c.JSON(http.StatusForbidden, resp.Error(resp.CodeForbidden, de.Msg))
	case domain.KindNotFound:
		c.JSON(http.StatusNotFound, resp.Error(resp.CodeNotFound, de.Msg))
	case domain.KindConflict:
		// 重复邮箱/重复收藏按对外契约走 400，内部仍是独立的 Conflict 类别
		c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, de.Msg))
	default:
		l.Error("internal error",
			zap.String("rid", c.GetString("rid")),
			zap.String("path", c.FullPath()),
			zap.String("msg", de.Msg),
			zap.Error(de.Err),
		)
		c.JSON(http.StatusInternalServerError, resp.Error(resp.CodeServerError, "server error"))
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, msg))
}

package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID 生成 32 位 hex 主键（uuid 去掉连字符）
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

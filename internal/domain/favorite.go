package domain

import (
	"context"
	"time"
)

// Favorite 复合主键保证 (user, blog) 不会重复收藏
type Favorite struct {
	UserID    string    `gorm:"primaryKey;size:32" json:"userId"`
	BlogID    string    `gorm:"primaryKey;size:32" json:"blogId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Favorite) TableName() string { return "favorites" }

type FavoriteRepository interface {
	Add(ctx context.Context, userID, blogID string) error
	Remove(ctx context.Context, userID, blogID string) error
	IsFavorited(ctx context.Context, userID, blogID string) (bool, error)
	ListForUser(ctx context.Context, userID string) ([]BlogSummary, error)
}

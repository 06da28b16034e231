package domain

import (
	"context"
	"time"
)

type Blog struct {
	ID        string      `gorm:"primaryKey;size:32" json:"id"`
	Title     string      `gorm:"size:255;not null" json:"title"`
	Content   string      `gorm:"type:text;not null" json:"content"`
	Category  string      `gorm:"size:64;index" json:"category"`
	AuthorID  string      `gorm:"size:32;index;not null" json:"authorId"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	Images    []BlogImage `gorm:"foreignKey:BlogID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Blog) TableName() string { return "blogs" }

// BlogImage 内嵌编码的图片，position 决定展示顺序（每篇博客内唯一）
type BlogImage struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	BlogID   string `gorm:"size:32;not null;uniqueIndex:uniq_blog_position,priority:1" json:"-"`
	Data     string `gorm:"type:text;not null" json:"data"`
	Position int    `gorm:"not null;uniqueIndex:uniq_blog_position,priority:2" json:"position"`
}

func (BlogImage) TableName() string { return "blog_images" }

// BlogSummary 列表页投影：作者姓名、收藏数、首图缩略图都是反范式字段
type BlogSummary struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	AuthorID      string    `json:"authorId"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	CreatedAt     time.Time `json:"createdAt"`
	FavoriteCount int64     `json:"favoriteCount"`
	Thumbnail     string    `json:"thumbnail,omitempty"`
}

type BlogDetail struct {
	Blog
	FirstName     string   `json:"firstName"`
	LastName      string   `json:"lastName"`
	FavoriteCount int64    `json:"favoriteCount"`
	ImageData     []string `json:"images"`
}

type BlogFilter struct {
	Category string
	Search   string // 大小写不敏感，匹配标题或作者姓名
	AuthorID string
}

// BlogChange carries the replacement state for an update; the image set is
// swapped wholesale, never merged.
type BlogChange struct {
	Title    string
	Content  string
	Category string
	Images   []string
}

type BlogRepository interface {
	List(ctx context.Context, f BlogFilter) ([]BlogSummary, error)
	GetByID(ctx context.Context, id string) (*BlogDetail, error)
	Create(ctx context.Context, b *Blog, images []string) error
	Update(ctx context.Context, blogID, actingUserID string, ch BlogChange) error
	Delete(ctx context.Context, blogID, actingUserID string) error
}

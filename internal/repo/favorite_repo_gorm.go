package repo

import (
	"context"

	"gorm.io/gorm"

	"blogpress/internal/domain"
)

type FavoriteRepo struct{ db *gorm.DB }

func NewFavoriteRepo(db *gorm.DB) *FavoriteRepo { return &FavoriteRepo{db: db} }

// Add 重复收藏是冲突而不是静默成功：唯一键兜底，错误转成领域错误
func (r *FavoriteRepo) Add(ctx context.Context, userID, blogID string) error {
	fav := domain.Favorite{UserID: userID, BlogID: blogID}
	if err := r.db.WithContext(ctx).Create(&fav).Error; err != nil {
		if isDupKey(err) {
			return domain.Conflict("already in favorites")
		}
		return domain.Internal("add favorite failed", err)
	}
	return nil
}

// Remove 幂等删除，行不存在也算成功
func (r *FavoriteRepo) Remove(ctx context.Context, userID, blogID string) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND blog_id = ?", userID, blogID).
		Delete(&domain.Favorite{}).Error
	if err != nil {
		return domain.Internal("remove favorite failed", err)
	}
	return nil
}

func (r *FavoriteRepo) IsFavorited(ctx context.Context, userID, blogID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Favorite{}).
		Where("user_id = ? AND blog_id = ?", userID, blogID).
		Count(&count).Error
	if err != nil {
		return false, domain.Internal("check favorite failed", err)
	}
	return count > 0, nil
}

// ListForUser 按收藏时间倒序返回摘要
func (r *FavoriteRepo) ListForUser(ctx context.Context, userID string) ([]domain.BlogSummary, error) {
	var rows []domain.BlogSummary
	err := r.db.WithContext(ctx).
		Table("favorites fav").
		Select(summaryColumns).
		Joins("JOIN blogs b ON b.id = fav.blog_id").
		Joins("JOIN users u ON u.id = b.author_id").
		Where("fav.user_id = ?", userID).
		Order("fav.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, domain.Internal("list favorites failed", err)
	}
	return rows, nil
}

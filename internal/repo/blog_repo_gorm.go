package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"blogpress/internal/domain"
)

type BlogRepo struct{ db *gorm.DB }

func NewBlogRepo(db *gorm.DB) *BlogRepo { return &BlogRepo{db: db} }

const summaryColumns = `b.id, b.title, b.category, b.author_id, b.created_at,
	u.first_name, u.last_name,
	(SELECT COUNT(*) FROM favorites f WHERE f.blog_id = b.id) AS favorite_count,
	(SELECT bi.data FROM blog_images bi WHERE bi.blog_id = b.id ORDER BY bi.position LIMIT 1) AS thumbnail`

func (r *BlogRepo) List(ctx context.Context, f domain.BlogFilter) ([]domain.BlogSummary, error) {
	q := r.db.WithContext(ctx).
		Table("blogs b").
		Select(summaryColumns).
		Joins("JOIN users u ON u.id = b.author_id")

	if f.Category != "" {
		q = q.Where("b.category = ?", f.Category)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(b.title) LIKE ? OR LOWER(u.first_name) LIKE ? OR LOWER(u.last_name) LIKE ?",
			like, like, like)
	}
	if f.AuthorID != "" {
		q = q.Where("b.author_id = ?", f.AuthorID)
	}

	var rows []domain.BlogSummary
	if err := q.Order("b.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, domain.Internal("list blogs failed", err)
	}
	return rows, nil
}

func (r *BlogRepo) GetByID(ctx context.Context, id string) (*domain.BlogDetail, error) {
	var b domain.Blog
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NotFound("blog not found")
	}
	if err != nil {
		return nil, domain.Internal("get blog failed", err)
	}

	var author domain.User
	if err := r.db.WithContext(ctx).First(&author, "id = ?", b.AuthorID).Error; err != nil {
		return nil, domain.Internal("get blog author failed", err)
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Favorite{}).
		Where("blog_id = ?", id).Count(&count).Error; err != nil {
		return nil, domain.Internal("count favorites failed", err)
	}

	var images []domain.BlogImage
	if err := r.db.WithContext(ctx).
		Where("blog_id = ?", id).Order("position").Find(&images).Error; err != nil {
		return nil, domain.Internal("load images failed", err)
	}

	d := &domain.BlogDetail{
		Blog:          b,
		FirstName:     author.FirstName,
		LastName:      author.LastName,
		FavoriteCount: count,
		ImageData:     make([]string, 0, len(images)),
	}
	for _, img := range images {
		d.ImageData = append(d.ImageData, img.Data)
	}
	return d, nil
}

// Create 博客行和图片行在同一事务内写入，position = 提交顺序下标
func (r *BlogRepo) Create(ctx context.Context, b *domain.Blog, images []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(b).Error; err != nil {
			return err
		}
		return insertImages(tx, b.ID, images)
	})
	if err != nil {
		return domain.Internal("create blog failed", err)
	}
	return nil
}

// Update 只有作者本人可以改；图片集合整体替换，外部观察不到半新半旧状态
func (r *BlogRepo) Update(ctx context.Context, blogID, actingUserID string, ch domain.BlogChange) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		b, err := loadBlog(tx, blogID)
		if err != nil {
			return err
		}
		if b.AuthorID != actingUserID {
			return domain.Forbidden("not the author of this blog")
		}
		res := tx.Model(&domain.Blog{}).Where("id = ?", blogID).Updates(map[string]any{
			"title":    ch.Title,
			"content":  ch.Content,
			"category": ch.Category,
		})
		if res.Error != nil {
			return domain.Internal("update blog failed", res.Error)
		}
		if err := tx.Where("blog_id = ?", blogID).Delete(&domain.BlogImage{}).Error; err != nil {
			return domain.Internal("clear images failed", err)
		}
		if err := insertImages(tx, blogID, ch.Images); err != nil {
			return domain.Internal("insert images failed", err)
		}
		return nil
	})
}

// Delete 级联清掉图片和收藏（引用不变量）
func (r *BlogRepo) Delete(ctx context.Context, blogID, actingUserID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		b, err := loadBlog(tx, blogID)
		if err != nil {
			return err
		}
		if b.AuthorID != actingUserID {
			return domain.Forbidden("not the author of this blog")
		}
		if err := tx.Where("blog_id = ?", blogID).Delete(&domain.Favorite{}).Error; err != nil {
			return domain.Internal("delete favorites failed", err)
		}
		if err := tx.Where("blog_id = ?", blogID).Delete(&domain.BlogImage{}).Error; err != nil {
			return domain.Internal("delete images failed", err)
		}
		if err := tx.Where("id = ?", blogID).Delete(&domain.Blog{}).Error; err != nil {
			return domain.Internal("delete blog failed", err)
		}
		return nil
	})
}

func loadBlog(tx *gorm.DB, blogID string) (*domain.Blog, error) {
	var b domain.Blog
	err := tx.First(&b, "id = ?", blogID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NotFound("blog not found")
	}
	if err != nil {
		return nil, domain.Internal("load blog failed", err)
	}
	return &b, nil
}

func insertImages(tx *gorm.DB, blogID string, images []string) error {
	for i, data := range images {
		img := domain.BlogImage{BlogID: blogID, Data: data, Position: i}
		if err := tx.Create(&img).Error; err != nil {
			return err
		}
	}
	return nil
}

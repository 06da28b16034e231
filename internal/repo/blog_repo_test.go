package repo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogpress/internal/domain"
	"blogpress/pkg/utils"
)

func seedBlog(t *testing.T, r *BlogRepo, authorID, title, category string, createdAt time.Time, images ...string) string {
	t.Helper()
	b := &domain.Blog{
		ID:        utils.NewID(),
		Title:     title,
		Content:   "content of " + title,
		Category:  category,
		AuthorID:  authorID,
		CreatedAt: createdAt,
	}
	require.NoError(t, r.Create(context.Background(), b, images))
	return b.ID
}

func TestBlogCreateGetImageOrder(t *testing.T) {
	db := newTestDB(t)
	r := NewBlogRepo(db)
	creator := seedUser(t, db, domain.RoleCreator, "Ada", "Lovelace")

	id := seedBlog(t, r, creator.ID, "ordered", "Tech", time.Now(), "img0", "img1", "img2")

	d, err := r.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, []string{"img0", "img1", "img2"}, d.ImageData)
	assert.Equal(t, "Ada", d.FirstName)
	assert.Equal(t, "Lovelace", d.LastName)
	assert.EqualValues(t, 0, d.FavoriteCount)
}

func TestBlogGetNotFound(t *testing.T) {
	db := newTestDB(t)
	r := NewBlogRepo(db)

	_, err := r.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestBlogListFilters(t *testing.T) {
	db := newTestDB(t)
	r := NewBlogRepo(db)
	ada := seedUser(t, db, domain.RoleCreator, "Ada", "Lovelace")
	grace := seedUser(t, db, domain.RoleCreator, "Grace", "Hopper")

	now := time.Now()
	older := seedBlog(t, r, ada.ID, "Go patterns", "Tech", now.Add(-2*time.Hour), "thumb")
	newer := seedBlog(t, r, ada.ID, "More Go", "Tech", now.Add(-time.Hour))
	seedBlog(t, r, grace.ID, "Sourdough", "Food", now)

	// category 精确匹配 + 新的在前
	tech, err := r.List(context.Background(), domain.BlogFilter{Category: "Tech"})
	require.NoError(t, err)
	require.Len(t, tech, 2)
	assert.Equal(t, newer, tech[0].ID)
	assert.Equal(t, older, tech[1].ID)
	assert.Equal(t, "thumb", tech[1].Thumbnail)
	assert.Empty(t, tech[0].Thumbnail)

	// search 对标题大小写不敏感
	byTitle, err := r.List(context.Background(), domain.BlogFilter{Search: "go pat"})
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, older, byTitle[0].ID)

	// search 也命中作者姓名
	byAuthor, err := r.List(context.Background(), domain.BlogFilter{Search: "hopper"})
	require.NoError(t, err)
	require.Len(t, byAuthor, 1)
	assert.Equal(t, "Grace", byAuthor[0].FirstName)

	// authorId 限定单个作者
	mine, err := r.List(context.Background(), domain.BlogFilter{AuthorID: ada.ID})
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestBlogUpdateReplacesImages(t *testing.T) {
	db := newTestDB(t)
	r := NewBlogRepo(db)
	creator := seedUser(t, db, domain.RoleCreator, "Ada", "Lovelace")
	id := seedBlog(t, r, creator.ID, "before", "Tech", time.Now(), "old0", "old1")

	err := r.Update(context.Background(), id, creator.ID, domain.BlogChange{
		Title: "after", Content: "new content", Category: "Life",
		Images: []string{"new0"},
	})
	require.NoError(t, err)

	d, err := r.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "after", d.Title)
	assert.Equal(t, "Life", d.Category)
	assert.Equal(t, []string{"new0"}, d.ImageData)
}

func TestBlogUpdateByNonOwnerForbidden(t *testing.T) {
	db := newTestDB(t)
	r := NewBlogRepo(db)
	owner := seedUser(t, db, domain.RoleCreator, "Ada", "Lovelace")
	other := seedUser(t, db, domain.RoleCreator, "Grace", "Hopper")
	id := seedBlog(t, r, owner.ID, "mine", "Tech", time.Now(), "img")

	err := r.Update(context.Background(), id, other.ID, domain.BlogChange{
		Title: "stolen", Content: "x", Category: "Tech",
	})
	require.Error(t, err)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))

	// 状态保持不变
	d, err := r.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "mine", d.Title)
	assert.Equal(t, []string{"img"}, d.ImageData)
}

func TestBlogUpdateNotFound(t *testing.T) {
	db := newTestDB(t)
	r := NewBlogRepo(db)

	err := r.Update(context.Background(), "missing", "anyone", domain.BlogChange{Title: "t"})
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestBlogDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	r := NewBlogRepo(db)
	fav := NewFavoriteRepo(db)
	creator := seedUser(t, db, domain.RoleCreator, "Ada", "Lovelace")
	reader := seedUser(t, db, domain.RoleReader, "Rita", "Reader")
	id := seedBlog(t, r, creator.ID, "doomed", "Tech", time.Now(), "img0", "img1")
	require.NoError(t, fav.Add(context.Background(), reader.ID, id))

	// 非作者删除被拒
	err := r.Delete(context.Background(), id, reader.ID)
	require.Error(t, err)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))

	require.NoError(t, r.Delete(context.Background(), id, creator.ID))

	_, err = r.GetByID(context.Background(), id)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	var imgCount, favCount int64
	require.NoError(t, db.Model(&domain.BlogImage{}).Where("blog_id = ?", id).Count(&imgCount).Error)
	require.NoError(t, db.Model(&domain.Favorite{}).Where("blog_id = ?", id).Count(&favCount).Error)
	assert.Zero(t, imgCount)
	assert.Zero(t, favCount)
}

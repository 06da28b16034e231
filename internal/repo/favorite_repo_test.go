package repo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogpress/internal/domain"
)

func TestFavoriteAddDuplicateConflict(t *testing.T) {
	db := newTestDB(t)
	blogs := NewBlogRepo(db)
	favs := NewFavoriteRepo(db)
	creator := seedUser(t, db, domain.RoleCreator, "Ada", "Lovelace")
	reader := seedUser(t, db, domain.RoleReader, "Rita", "Reader")
	id := seedBlog(t, blogs, creator.ID, "post", "Tech", time.Now())

	require.NoError(t, favs.Add(context.Background(), reader.ID, id))

	err := favs.Add(context.Background(), reader.ID, id)
	require.Error(t, err)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))

	// 冲突之后仍然只有一行
	var count int64
	require.NoError(t, db.Model(&domain.Favorite{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestFavoriteRemoveIdempotent(t *testing.T) {
	db := newTestDB(t)
	favs := NewFavoriteRepo(db)
	reader := seedUser(t, db, domain.RoleReader, "Rita", "Reader")

	// 不存在的行删着玩也是成功
	require.NoError(t, favs.Remove(context.Background(), reader.ID, "no-such-blog"))
}

func TestFavoriteCheckAndList(t *testing.T) {
	db := newTestDB(t)
	blogs := NewBlogRepo(db)
	favs := NewFavoriteRepo(db)
	creator := seedUser(t, db, domain.RoleCreator, "Ada", "Lovelace")
	reader := seedUser(t, db, domain.RoleReader, "Rita", "Reader")

	now := time.Now()
	first := seedBlog(t, blogs, creator.ID, "first", "Tech", now.Add(-time.Hour), "thumb0")
	second := seedBlog(t, blogs, creator.ID, "second", "Tech", now)

	ok, err := favs.IsFavorited(context.Background(), reader.ID, first)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, favs.Add(context.Background(), reader.ID, second))
	// 让收藏时间拉开距离，保证排序可断言
	require.NoError(t, db.Model(&domain.Favorite{}).
		Where("user_id = ? AND blog_id = ?", reader.ID, second).
		Update("created_at", now.Add(-time.Minute)).Error)
	require.NoError(t, favs.Add(context.Background(), reader.ID, first))

	ok, err = favs.IsFavorited(context.Background(), reader.ID, first)
	require.NoError(t, err)
	assert.True(t, ok)

	// 最近收藏的在前（不是博客创建时间序）
	list, err := favs.ListForUser(context.Background(), reader.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first, list[0].ID)
	assert.Equal(t, second, list[1].ID)
	assert.Equal(t, "thumb0", list[0].Thumbnail)
	assert.EqualValues(t, 1, list[0].FavoriteCount)

	require.NoError(t, favs.Remove(context.Background(), reader.ID, first))
	list, err = favs.ListForUser(context.Background(), reader.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

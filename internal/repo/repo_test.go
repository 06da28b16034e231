package repo

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"blogpress/internal/domain"
	"blogpress/pkg/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.User{}, &domain.Blog{}, &domain.BlogImage{}, &domain.Favorite{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, role, first, last string) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:           utils.NewID(),
		FirstName:    first,
		LastName:     last,
		Email:        utils.NewID() + "@test.local",
		PasswordHash: "x",
		Role:         role,
	}
	if role == domain.RoleCreator {
		u.Category = "Tech"
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

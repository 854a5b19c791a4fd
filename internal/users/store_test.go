package users_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Ponloe/postmesh-core/internal/database"
	"github.com/Ponloe/postmesh-core/internal/posts"
	"github.com/Ponloe/postmesh-core/internal/users"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection, or each statement may land on a fresh :memory: database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, database.Migrate(db, &users.User{}, &posts.Post{}))
	return db
}

func TestCreateHashesPassword(t *testing.T) {
	store := users.NewStore(setupTestDB(t))
	ctx := context.Background()

	created, err := store.Create(ctx, "Ann", "a@x.com", "secret")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Name)
	assert.Equal(t, "a@x.com", got.Email)
	assert.NotEqual(t, "secret", got.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.Password), []byte("secret")))
}

func TestCreateDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	store := users.NewStore(db)
	ctx := context.Background()

	_, err := store.Create(ctx, "Ann", "a@x.com", "secret")
	require.NoError(t, err)

	_, err = store.Create(ctx, "Other Ann", "a@x.com", "hunter2")
	assert.ErrorIs(t, err, database.ErrDuplicate)

	var count int64
	require.NoError(t, db.Model(&users.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGetMissing(t *testing.T) {
	store := users.NewStore(setupTestDB(t))

	got, err := store.Get(context.Background(), 42)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestListSkipLimit(t *testing.T) {
	store := users.NewStore(setupTestDB(t))
	ctx := context.Background()

	empty, err := store.List(ctx, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		_, err := store.Create(ctx, "u", email, "pw")
		require.NoError(t, err)
	}

	page, err := store.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "b@x.com", page[0].Email)
}

func TestDeleteThenGet(t *testing.T) {
	store := users.NewStore(setupTestDB(t))
	ctx := context.Background()

	created, err := store.Create(ctx, "Ann", "a@x.com", "secret")
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, created.ID))

	_, err = store.Get(ctx, created.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)

	// deleting again must surface NotFound, not silently succeed
	assert.ErrorIs(t, store.Delete(ctx, created.ID), database.ErrNotFound)
}

func TestDeleteMissing(t *testing.T) {
	store := users.NewStore(setupTestDB(t))
	assert.ErrorIs(t, store.Delete(context.Background(), 42), database.ErrNotFound)
}

func TestDeleteRefusedWhileOwningPosts(t *testing.T) {
	db := setupTestDB(t)
	store := users.NewStore(db)
	ctx := context.Background()

	created, err := store.Create(ctx, "Ann", "a@x.com", "secret")
	require.NoError(t, err)

	post := posts.Post{Title: "t", Content: "c", Published: true, UserID: created.ID}
	require.NoError(t, posts.NewStore(db).Create(ctx, &post))

	assert.ErrorIs(t, store.Delete(ctx, created.ID), database.ErrHasPosts)

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

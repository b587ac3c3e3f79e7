package utils_test

import (
	"context"
	"strings"
	"testing"

	"foodgram/internal/auth"
	"foodgram/internal/cache"
	"foodgram/internal/repository"
	"foodgram/internal/testutil"
	"foodgram/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadIngredients(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewIngredientRepository(db, cache.Noop{}, 0)
	ctx := context.Background()

	fixture := `[
		{"name": "абрикосовое варенье", "measurement_unit": "г"},
		{"name": "salt", "measurement_unit": "g"},
		{"name": "salt", "measurement_unit": "pinch"}
	]`
	added, err := utils.LoadIngredients(ctx, repo, strings.NewReader(fixture))
	require.NoError(t, err)
	assert.EqualValues(t, 3, added)

	added, err = utils.LoadIngredients(ctx, repo, strings.NewReader(fixture))
	require.NoError(t, err)
	assert.EqualValues(t, 0, added)

	_, err = utils.LoadIngredients(ctx, repo, strings.NewReader(`[{"name": "", "measurement_unit": "g"}]`))
	assert.Error(t, err)

	_, err = utils.LoadIngredients(ctx, repo, strings.NewReader(`{"name": "x"}`))
	assert.Error(t, err)
}

func TestLoadTags(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewTagRepository(db, cache.Noop{}, 0)
	ctx := context.Background()

	fixture := `[
		{"name": "Breakfast", "color": "#E26C2D", "slug": "breakfast"},
		{"name": "Dinner", "color": "#8775D2", "slug": "dinner"}
	]`
	created, err := utils.LoadTags(ctx, repo, strings.NewReader(fixture))
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	created, err = utils.LoadTags(ctx, repo, strings.NewReader(fixture))
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	_, err = utils.LoadTags(ctx, repo, strings.NewReader(`[{"name": "Bad", "color": "blue", "slug": "bad"}]`))
	assert.Error(t, err)
}

func TestCreateAdmin(t *testing.T) {
	db := testutil.NewTestDB(t)
	users := repository.NewUserRepository(db)
	ctx := context.Background()

	admin, err := utils.CreateAdmin(ctx, users, utils.AdminParams{
		Email:    "Admin@Example.com",
		Username: "admin",
		Password: "super-secret",
	})
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
	assert.Equal(t, "admin@example.com", admin.Email)
	assert.NoError(t, auth.CheckPassword(admin.PasswordHash, "super-secret"))

	_, err = utils.CreateAdmin(ctx, users, utils.AdminParams{Email: "admin@example.com", Username: "admin", Password: "super-secret"})
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)

	_, err = utils.CreateAdmin(ctx, users, utils.AdminParams{Email: "x@example.com", Username: "x", Password: "short"})
	assert.Error(t, err)
}

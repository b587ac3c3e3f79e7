package authz

import (
	"testing"

	"foodgram/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowed(t *testing.T) {
	e, err := NewEnforcer()
	require.NoError(t, err)

	tests := []struct {
		role, obj, act string
		want           bool
	}{
		{models.RoleAnonymous, ObjRecipe, ActRead, true},
		{models.RoleAnonymous, ObjRecipe, ActCreate, false},
		{models.RoleAnonymous, ObjUser, ActCreate, true},
		{models.RoleAnonymous, ObjUser, ActMe, false},
		{models.RoleUser, ObjRecipe, ActRead, true},
		{models.RoleUser, ObjRecipe, ActCreate, true},
		{models.RoleUser, ObjRecipe, ActModerate, false},
		{models.RoleUser, ObjTag, ActCreate, false},
		{models.RoleAdmin, ObjRecipe, ActModerate, true},
		{models.RoleAdmin, ObjRecipe, ActFavorite, true},
		{models.RoleAdmin, ObjIngredient, ActDelete, true},
		{"stranger", ObjRecipe, ActRead, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, e.Allowed(tt.role, tt.obj, tt.act), "%s %s %s", tt.role, tt.obj, tt.act)
	}
}

func TestCanModify(t *testing.T) {
	e, err := NewEnforcer()
	require.NoError(t, err)

	author := &models.User{ID: 1}
	other := &models.User{ID: 2}
	admin := &models.User{ID: 3, IsAdmin: true}

	assert.True(t, e.CanModify(author, ObjRecipe, 1))
	assert.False(t, e.CanModify(other, ObjRecipe, 1))
	assert.True(t, e.CanModify(admin, ObjRecipe, 1))
	assert.False(t, e.CanModify(nil, ObjRecipe, 1))
}

func TestNewEnforcerFromStringsRejectsBadModel(t *testing.T) {
	_, err := NewEnforcerFromStrings("not a model", "")
	assert.Error(t, err)
}

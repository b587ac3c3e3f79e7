// Package authz decides which role may perform which action, using a
// casbin RBAC model with an embedded policy.
package authz

import (
	_ "embed"
	"fmt"

	"foodgram/internal/logging"
	"foodgram/internal/models"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	stringadapter "github.com/casbin/casbin/v2/persist/string-adapter"
)

//go:embed model.conf
var embeddedModel string

//go:embed policy.csv
var embeddedPolicy string

const (
	ObjRecipe     = "recipe"
	ObjTag        = "tag"
	ObjIngredient = "ingredient"
	ObjUser       = "user"
	ObjAuth       = "auth"

	ActRead      = "read"
	ActCreate    = "create"
	ActModerate  = "moderate"
	ActDelete    = "delete"
	ActFavorite  = "favorite"
	ActCart      = "cart"
	ActMe        = "me"
	ActSubscribe = "subscribe"
	ActLogin     = "login"
	ActLogout    = "logout"
)

type Enforcer struct {
	enforcer *casbin.SyncedEnforcer
}

// NewEnforcer builds an enforcer from the embedded model and policy.
func NewEnforcer() (*Enforcer, error) {
	return NewEnforcerFromStrings(embeddedModel, embeddedPolicy)
}

func NewEnforcerFromStrings(modelText, policy string) (*Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("failed to load casbin model: %w", err)
	}
	e, err := casbin.NewSyncedEnforcer(m, stringadapter.NewAdapter(policy))
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}
	return &Enforcer{enforcer: e}, nil
}

// Allowed reports whether role may perform act on obj. Enforcement errors
// deny.
func (e *Enforcer) Allowed(role, obj, act string) bool {
	ok, err := e.enforcer.Enforce(role, obj, act)
	if err != nil {
		logging.Error().Err(err).Str("role", role).Str("object", obj).Str("action", act).Msg("Authorization check failed")
		return false
	}
	return ok
}

// CanModify reports whether user may change or delete a resource owned by
// ownerID: owners always can, others need the moderate permission.
func (e *Enforcer) CanModify(user *models.User, obj string, ownerID uint) bool {
	if user == nil {
		return false
	}
	if user.ID == ownerID {
		return true
	}
	return e.Allowed(user.Role(), obj, ActModerate)
}

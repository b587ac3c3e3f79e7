package utils

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"foodgram/internal/auth"
	"foodgram/internal/models"
	"foodgram/internal/repository"
	"foodgram/internal/validation"

	"github.com/goccy/go-json"
)

// LoadIngredients reads a JSON array of {name, measurement_unit} and inserts
// the pairs that are not in the catalogue yet.
func LoadIngredients(ctx context.Context, repo repository.IngredientRepository, r io.Reader) (int64, error) {
	var rows []models.Ingredient
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return 0, fmt.Errorf("failed to decode ingredients: %w", err)
	}
	v, err := validation.Validator()
	if err != nil {
		return 0, err
	}
	for i := range rows {
		rows[i].ID = 0
		rows[i].Name = strings.TrimSpace(rows[i].Name)
		rows[i].MeasurementUnit = strings.TrimSpace(rows[i].MeasurementUnit)
		if err := v.Struct(rows[i]); err != nil {
			return 0, fmt.Errorf("ingredient #%d: %w", i+1, err)
		}
	}
	return repo.BulkCreate(ctx, rows)
}

// LoadTags reads a JSON array of tags and creates the ones whose slug is
// not taken.
func LoadTags(ctx context.Context, repo repository.TagRepository, r io.Reader) (int, error) {
	var rows []models.Tag
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return 0, fmt.Errorf("failed to decode tags: %w", err)
	}
	v, err := validation.Validator()
	if err != nil {
		return 0, err
	}

	created := 0
	for i := range rows {
		tag := rows[i]
		tag.ID = 0
		if err := v.Struct(tag); err != nil {
			return created, fmt.Errorf("tag #%d: %w", i+1, err)
		}
		if err := repo.Create(ctx, &tag); err != nil {
			if errors.Is(err, repository.ErrAlreadyExists) {
				continue
			}
			return created, fmt.Errorf("failed to create tag %q: %w", tag.Slug, err)
		}
		created++
	}
	return created, nil
}

type AdminParams struct {
	Email     string `binding:"required,email,max=254"`
	Username  string `binding:"required,max=150,username"`
	Password  string `binding:"required,min=8,max=128"`
	FirstName string `binding:"max=150"`
	LastName  string `binding:"max=150"`
}

// CreateAdmin registers a user with the admin role.
func CreateAdmin(ctx context.Context, users repository.UserRepository, params AdminParams) (*models.User, error) {
	v, err := validation.Validator()
	if err != nil {
		return nil, err
	}
	if err := v.Struct(params); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Email:        strings.ToLower(params.Email),
		Username:     params.Username,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		PasswordHash: hash,
		IsAdmin:      true,
	}
	if err := users.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create admin %q: %w", params.Username, err)
	}
	return user, nil
}
